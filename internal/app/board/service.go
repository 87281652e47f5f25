package board

import (
	"errors"

	"github.com/scheduleboard/backend/internal/apperr"
	"github.com/scheduleboard/backend/internal/authz"
	"github.com/scheduleboard/backend/internal/sanitize"

	"gorm.io/gorm"
)

const (
	msgInvalidBoardType = "유효한 게시판 타입이 아닙니다."
	msgPostMissing      = "게시글을 찾을 수 없습니다."
	msgNoticeCreateDeny = "공지사항은 관리자만 작성할 수 있습니다."
	msgNoticeUpdateDeny = "공지사항 수정 권한이 없습니다."
	msgPostUpdateDeny   = "게시글 수정 권한이 없습니다."
	msgNoticeDeleteDeny = "공지사항 삭제 권한이 없습니다."
	msgPostDeleteDeny   = "게시글 삭제 권한이 없습니다."
)

type Service interface {
	List(postType string) ([]PostResponse, error)
	Get(postID string) (*PostResponse, error)
	Create(actor authz.Actor, req CreatePostRequest) (*PostResponse, error)
	Update(actor authz.Actor, postID string, req UpdatePostRequest) (*PostResponse, error)
	Delete(actor authz.Actor, postID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(postType string) ([]PostResponse, error) {
	if postType == "" {
		postType = authz.PostTypeFree
	}
	if postType != authz.PostTypeFree && postType != authz.PostTypeNotice {
		return nil, apperr.Validation(msgInvalidBoardType)
	}

	posts, err := s.repo.ListByType(postType)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	responses := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, toPostResponse(post, true))
	}
	return responses, nil
}

func (s *service) Get(postID string) (*PostResponse, error) {
	post, err := s.repo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(msgPostMissing)
		}
		return nil, apperr.Internal(err)
	}
	resp := toPostResponse(post, true)
	return &resp, nil
}

func (s *service) Create(actor authz.Actor, req CreatePostRequest) (*PostResponse, error) {
	if !authz.CanCreatePost(actor, req.Type) {
		return nil, apperr.Forbidden(msgNoticeCreateDeny)
	}

	post := &Post{
		Title:   req.Title,
		Content: sanitize.HTML(req.Content),
		Type:    req.Type,
		UserID:  actor.UserID,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, apperr.Internal(err)
	}

	resp := toPostResponse(post, false)
	return &resp, nil
}

func (s *service) Update(actor authz.Actor, postID string, req UpdatePostRequest) (*PostResponse, error) {
	post, err := s.repo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(msgPostMissing)
		}
		return nil, apperr.Internal(err)
	}

	if !authz.CanWritePost(actor, authz.PostRef{AuthorID: post.UserID, Type: post.Type}) {
		if post.Type == authz.PostTypeNotice {
			return nil, apperr.Forbidden(msgNoticeUpdateDeny)
		}
		return nil, apperr.Forbidden(msgPostUpdateDeny)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = sanitize.HTML(*req.Content)
	}

	if len(updates) > 0 {
		if err := s.repo.Update(postID, updates); err != nil {
			return nil, apperr.Internal(err)
		}
	}

	updated, err := s.repo.GetByID(postID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	resp := toPostResponse(updated, false)
	return &resp, nil
}

func (s *service) Delete(actor authz.Actor, postID string) error {
	post, err := s.repo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(msgPostMissing)
		}
		return apperr.Internal(err)
	}

	if !authz.CanDeletePost(actor, authz.PostRef{AuthorID: post.UserID, Type: post.Type}) {
		if post.Type == authz.PostTypeNotice {
			return apperr.Forbidden(msgNoticeDeleteDeny)
		}
		return apperr.Forbidden(msgPostDeleteDeny)
	}

	if err := s.repo.Delete(postID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
