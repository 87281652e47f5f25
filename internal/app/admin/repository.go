package admin

import (
	"github.com/scheduleboard/backend/internal/app/board"
	"github.com/scheduleboard/backend/internal/app/schedule"
	"github.com/scheduleboard/backend/internal/app/user"

	"gorm.io/gorm"
)

type Repository interface {
	CountUsers() (int64, error)
	CountUsersByRole(role string) (int64, error)
	CountSchedules() (int64, error)
	LatestUsers(limit int) ([]*user.User, error)
	LatestSchedules(limit int) ([]*schedule.Schedule, error)

	ListUsersWithScheduleCount() ([]UserRow, error)
	GetUser(id string) (*user.User, error)
	UpdateUser(id string, updates map[string]interface{}) error
	DeleteUser(id string) error

	ListSchedules() ([]*schedule.Schedule, error)
	GetSchedule(id string) (*schedule.Schedule, error)
	DeleteSchedule(id string) error

	ListPosts() ([]*board.Post, error)
	GetPost(id string) (*board.Post, error)
	DeletePost(id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&user.User{}).Count(&count).Error
	return count, err
}

func (r *repository) CountUsersByRole(role string) (int64, error) {
	var count int64
	err := r.db.Model(&user.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *repository) CountSchedules() (int64, error) {
	var count int64
	err := r.db.Model(&schedule.Schedule{}).Count(&count).Error
	return count, err
}

func (r *repository) LatestUsers(limit int) ([]*user.User, error) {
	var users []*user.User
	err := r.db.Order("created_at DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *repository) LatestSchedules(limit int) ([]*schedule.Schedule, error) {
	var schedules []*schedule.Schedule
	err := r.db.
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&schedules).Error
	return schedules, err
}

func (r *repository) ListUsersWithScheduleCount() ([]UserRow, error) {
	var rows []UserRow
	err := r.db.Model(&user.User{}).
		Select("users.id, users.email, users.name, users.role, users.created_at, COUNT(schedules.id) AS schedule_count").
		Joins("LEFT JOIN schedules ON schedules.user_id = users.id").
		Group("users.id").
		Order("users.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetUser(id string) (*user.User, error) {
	var target user.User
	if err := r.db.Where("id = ?", id).First(&target).Error; err != nil {
		return nil, err
	}
	return &target, nil
}

func (r *repository) UpdateUser(id string, updates map[string]interface{}) error {
	return r.db.Model(&user.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteUser(id string) error {
	return r.db.Where("id = ?", id).Delete(&user.User{}).Error
}

func (r *repository) ListSchedules() ([]*schedule.Schedule, error) {
	var schedules []*schedule.Schedule
	err := r.db.
		Preload("User").
		Order("start_at ASC").
		Find(&schedules).Error
	return schedules, err
}

func (r *repository) GetSchedule(id string) (*schedule.Schedule, error) {
	var target schedule.Schedule
	if err := r.db.Where("id = ?", id).First(&target).Error; err != nil {
		return nil, err
	}
	return &target, nil
}

func (r *repository) DeleteSchedule(id string) error {
	return r.db.Where("id = ?", id).Delete(&schedule.Schedule{}).Error
}

func (r *repository) ListPosts() ([]*board.Post, error) {
	var posts []*board.Post
	err := r.db.
		Preload("User").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *repository) GetPost(id string) (*board.Post, error) {
	var target board.Post
	if err := r.db.Where("id = ?", id).First(&target).Error; err != nil {
		return nil, err
	}
	return &target, nil
}

func (r *repository) DeletePost(id string) error {
	return r.db.Where("id = ?", id).Delete(&board.Post{}).Error
}
