package admin

import (
	"time"

	"github.com/scheduleboard/backend/internal/app/board"
	"github.com/scheduleboard/backend/internal/app/schedule"
	"github.com/scheduleboard/backend/internal/app/user"
)

type UpdateUserRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=40"`
	Role *string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

// UserRow is a user plus its schedule-count aggregate.
type UserRow struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	ScheduleCount int64     `json:"scheduleCount"`
}

type ScheduleSummary struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	StartAt   time.Time    `json:"startAt"`
	EndAt     time.Time    `json:"endAt"`
	CreatedAt time.Time    `json:"createdAt"`
	User      user.Summary `json:"user"`
}

type OverviewResponse struct {
	UserCount       int64             `json:"userCount"`
	AdminCount      int64             `json:"adminCount"`
	ScheduleCount   int64             `json:"scheduleCount"`
	LatestUsers     []user.Public     `json:"latestUsers"`
	LatestSchedules []ScheduleSummary `json:"latestSchedules"`
}

// ScheduleRow is the admin-surface schedule shape: the full record with the
// owner attached.
type ScheduleRow struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	StartAt     time.Time    `json:"startAt"`
	EndAt       time.Time    `json:"endAt"`
	IsAllDay    bool         `json:"isAllDay"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	User        user.Summary `json:"user"`
}

type PostRow struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Type      string       `json:"type"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	User      user.Summary `json:"user"`
}

func toScheduleSummary(s *schedule.Schedule) ScheduleSummary {
	return ScheduleSummary{
		ID:        s.ID,
		Title:     s.Title,
		StartAt:   s.StartAt,
		EndAt:     s.EndAt,
		CreatedAt: s.CreatedAt,
		User:      s.User.Summary(),
	}
}

func toScheduleRow(s *schedule.Schedule) ScheduleRow {
	return ScheduleRow{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		StartAt:     s.StartAt,
		EndAt:       s.EndAt,
		IsAllDay:    s.IsAllDay,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		User:        s.User.Summary(),
	}
}

func toPostRow(p *board.Post) PostRow {
	return PostRow{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Type:      p.Type,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		User:      p.User.Summary(),
	}
}
