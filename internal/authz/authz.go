// Package authz is the single decision layer for ownership and role checks.
// Every predicate is a pure function over the acting identity and the bare
// facts of the target resource; services consult these before any mutation
// instead of branching on roles inline.
package authz

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

const (
	PostTypeNotice = "NOTICE"
	PostTypeFree   = "FREE"
)

// Actor is the authenticated identity attached to a request by the auth
// middleware and threaded explicitly into every service call.
type Actor struct {
	UserID string
	Email  string
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// PostRef carries the authorization-relevant facts of a board post.
type PostRef struct {
	AuthorID string
	Type     string
}

// CanDeleteUser: admins may delete any user except themselves.
func CanDeleteUser(actor Actor, targetID string) bool {
	if actor.UserID == targetID {
		return false
	}
	return actor.IsAdmin()
}

// CanChangeRole: admins may change roles, but not strip their own admin role.
func CanChangeRole(actor Actor, targetID, nextRole string) bool {
	if actor.UserID == targetID && nextRole == RoleUser {
		return false
	}
	return actor.IsAdmin()
}

// CanWriteSchedule: schedules are writable by their owner only. Admins get
// no implicit edit right on the owner-scoped surface.
func CanWriteSchedule(actor Actor, ownerID string) bool {
	return actor.UserID == ownerID
}

// CanAdminDeleteSchedule: the admin surface may delete any schedule.
func CanAdminDeleteSchedule(actor Actor) bool {
	return actor.IsAdmin()
}

// CanCreatePost: anyone may open a FREE post; NOTICE is admin-only.
func CanCreatePost(actor Actor, postType string) bool {
	switch postType {
	case PostTypeFree:
		return true
	case PostTypeNotice:
		return actor.IsAdmin()
	default:
		return false
	}
}

// CanWritePost: admins may edit anything; authors may edit their own FREE
// posts. NOTICE posts are never editable by non-admins, author or not.
func CanWritePost(actor Actor, post PostRef) bool {
	if actor.IsAdmin() {
		return true
	}
	return post.Type == PostTypeFree && post.AuthorID == actor.UserID
}

// CanDeletePost follows the same rule as CanWritePost.
func CanDeletePost(actor Actor, post PostRef) bool {
	return CanWritePost(actor, post)
}
