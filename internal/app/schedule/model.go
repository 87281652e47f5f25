package schedule

import (
	"time"

	"github.com/scheduleboard/backend/internal/app/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Schedule struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description,omitempty"`
	StartAt     time.Time `json:"startAt" gorm:"not null;index"`
	EndAt       time.Time `json:"endAt" gorm:"not null"`
	IsAllDay    bool      `json:"isAllDay" gorm:"not null;default:false"`
	UserID      string    `json:"userId" gorm:"size:36;not null;index"`
	User        user.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type CreateScheduleRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=120"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	StartAt     string  `json:"startAt" binding:"required"`
	EndAt       string  `json:"endAt" binding:"required"`
	IsAllDay    bool    `json:"isAllDay"`
}

type UpdateScheduleRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=120"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	StartAt     *string `json:"startAt"`
	EndAt       *string `json:"endAt"`
	IsAllDay    *bool   `json:"isAllDay"`
}
