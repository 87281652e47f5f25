package schedule

import (
	"errors"
	"time"

	"github.com/scheduleboard/backend/internal/apperr"

	"gorm.io/gorm"
)

const (
	msgInvalidInput    = "입력값이 올바르지 않습니다."
	msgEndBeforeStart  = "종료 시간이 시작 시간보다 빠를 수 없습니다."
	msgScheduleMissing = "일정을 찾을 수 없습니다."
)

type Service interface {
	List(actorID string) ([]*Schedule, error)
	Create(actorID string, req CreateScheduleRequest) (*Schedule, error)
	Update(actorID, scheduleID string, req UpdateScheduleRequest) (*Schedule, error)
	Delete(actorID, scheduleID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(actorID string) ([]*Schedule, error) {
	schedules, err := s.repo.ListByOwner(actorID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return schedules, nil
}

func (s *service) Create(actorID string, req CreateScheduleRequest) (*Schedule, error) {
	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		return nil, apperr.Validation(msgInvalidInput)
	}
	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		return nil, apperr.Validation(msgInvalidInput)
	}
	if startAt.After(endAt) {
		return nil, apperr.Validation(msgEndBeforeStart)
	}

	schedule := &Schedule{
		Title:       req.Title,
		Description: req.Description,
		StartAt:     startAt,
		EndAt:       endAt,
		IsAllDay:    req.IsAllDay,
		UserID:      actorID,
	}
	if err := s.repo.Create(schedule); err != nil {
		return nil, apperr.Internal(err)
	}
	return schedule, nil
}

func (s *service) Update(actorID, scheduleID string, req UpdateScheduleRequest) (*Schedule, error) {
	target, err := s.repo.GetOwned(scheduleID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(msgScheduleMissing)
		}
		return nil, apperr.Internal(err)
	}

	updates := map[string]interface{}{}

	// The interval invariant is checked over the merged values, so a
	// partial update cannot smuggle in an inverted range.
	nextStart := target.StartAt
	nextEnd := target.EndAt

	if req.StartAt != nil {
		parsed, err := time.Parse(time.RFC3339, *req.StartAt)
		if err != nil {
			return nil, apperr.Validation(msgInvalidInput)
		}
		nextStart = parsed
		updates["start_at"] = parsed
	}
	if req.EndAt != nil {
		parsed, err := time.Parse(time.RFC3339, *req.EndAt)
		if err != nil {
			return nil, apperr.Validation(msgInvalidInput)
		}
		nextEnd = parsed
		updates["end_at"] = parsed
	}
	if nextStart.After(nextEnd) {
		return nil, apperr.Validation(msgEndBeforeStart)
	}

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsAllDay != nil {
		updates["is_all_day"] = *req.IsAllDay
	}

	if len(updates) > 0 {
		if err := s.repo.Update(scheduleID, updates); err != nil {
			return nil, apperr.Internal(err)
		}
	}

	updated, err := s.repo.GetOwned(scheduleID, actorID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return updated, nil
}

func (s *service) Delete(actorID, scheduleID string) error {
	if _, err := s.repo.GetOwned(scheduleID, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(msgScheduleMissing)
		}
		return apperr.Internal(err)
	}

	if err := s.repo.Delete(scheduleID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
