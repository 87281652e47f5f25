package admin

import (
	"errors"

	"github.com/scheduleboard/backend/internal/apperr"
	"github.com/scheduleboard/backend/internal/app/user"
	"github.com/scheduleboard/backend/internal/authz"

	"gorm.io/gorm"
)

const (
	msgUserMissing     = "사용자를 찾을 수 없습니다."
	msgScheduleMissing = "일정을 찾을 수 없습니다."
	msgPostMissing     = "게시글을 찾을 수 없습니다."
	msgSelfDemote      = "자기 자신의 ADMIN 권한은 해제할 수 없습니다."
	msgSelfDelete      = "자기 자신은 삭제할 수 없습니다."
	msgNoPermission    = "권한이 없습니다."
)

const overviewLimit = 5

type Service interface {
	Overview() (*OverviewResponse, error)
	ListUsers() ([]UserRow, error)
	UpdateUser(actor authz.Actor, targetID string, req UpdateUserRequest) (*user.Public, error)
	DeleteUser(actor authz.Actor, targetID string) error
	ListSchedules() ([]ScheduleRow, error)
	DeleteSchedule(actor authz.Actor, scheduleID string) error
	ListPosts() ([]PostRow, error)
	DeletePost(actor authz.Actor, postID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Overview() (*OverviewResponse, error) {
	userCount, err := s.repo.CountUsers()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	adminCount, err := s.repo.CountUsersByRole(authz.RoleAdmin)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	scheduleCount, err := s.repo.CountSchedules()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	latestUsers, err := s.repo.LatestUsers(overviewLimit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	latestSchedules, err := s.repo.LatestSchedules(overviewLimit)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	users := make([]user.Public, 0, len(latestUsers))
	for _, u := range latestUsers {
		users = append(users, u.Public())
	}
	schedules := make([]ScheduleSummary, 0, len(latestSchedules))
	for _, sched := range latestSchedules {
		schedules = append(schedules, toScheduleSummary(sched))
	}

	return &OverviewResponse{
		UserCount:       userCount,
		AdminCount:      adminCount,
		ScheduleCount:   scheduleCount,
		LatestUsers:     users,
		LatestSchedules: schedules,
	}, nil
}

func (s *service) ListUsers() ([]UserRow, error) {
	rows, err := s.repo.ListUsersWithScheduleCount()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}

func (s *service) UpdateUser(actor authz.Actor, targetID string, req UpdateUserRequest) (*user.Public, error) {
	if _, err := s.repo.GetUser(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(msgUserMissing)
		}
		return nil, apperr.Internal(err)
	}

	if req.Role != nil && !authz.CanChangeRole(actor, targetID, *req.Role) {
		return nil, apperr.Validation(msgSelfDemote)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateUser(targetID, updates); err != nil {
			return nil, apperr.Internal(err)
		}
	}

	updated, err := s.repo.GetUser(targetID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	public := updated.Public()
	return &public, nil
}

func (s *service) DeleteUser(actor authz.Actor, targetID string) error {
	if !authz.CanDeleteUser(actor, targetID) {
		return apperr.Validation(msgSelfDelete)
	}

	if _, err := s.repo.GetUser(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(msgUserMissing)
		}
		return apperr.Internal(err)
	}

	if err := s.repo.DeleteUser(targetID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *service) ListSchedules() ([]ScheduleRow, error) {
	schedules, err := s.repo.ListSchedules()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	rows := make([]ScheduleRow, 0, len(schedules))
	for _, sched := range schedules {
		rows = append(rows, toScheduleRow(sched))
	}
	return rows, nil
}

func (s *service) DeleteSchedule(actor authz.Actor, scheduleID string) error {
	if !authz.CanAdminDeleteSchedule(actor) {
		return apperr.Forbidden(msgNoPermission)
	}

	if _, err := s.repo.GetSchedule(scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(msgScheduleMissing)
		}
		return apperr.Internal(err)
	}

	if err := s.repo.DeleteSchedule(scheduleID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *service) ListPosts() ([]PostRow, error) {
	posts, err := s.repo.ListPosts()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	rows := make([]PostRow, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, toPostRow(post))
	}
	return rows, nil
}

func (s *service) DeletePost(actor authz.Actor, postID string) error {
	post, err := s.repo.GetPost(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(msgPostMissing)
		}
		return apperr.Internal(err)
	}

	if !authz.CanDeletePost(actor, authz.PostRef{AuthorID: post.UserID, Type: post.Type}) {
		return apperr.Forbidden(msgNoPermission)
	}

	if err := s.repo.DeletePost(postID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
