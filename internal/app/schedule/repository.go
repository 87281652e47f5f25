package schedule

import "gorm.io/gorm"

type Repository interface {
	ListByOwner(ownerID string) ([]*Schedule, error)
	GetOwned(id, ownerID string) (*Schedule, error)
	Create(schedule *Schedule) error
	Update(id string, updates map[string]interface{}) error
	Delete(id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByOwner(ownerID string) ([]*Schedule, error) {
	var schedules []*Schedule
	err := r.db.
		Where("user_id = ?", ownerID).
		Order("start_at ASC").
		Find(&schedules).Error
	return schedules, err
}

// GetOwned scopes the lookup to the owner so foreign schedules surface as
// not found rather than forbidden.
func (r *repository) GetOwned(id, ownerID string) (*Schedule, error) {
	var schedule Schedule
	err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *repository) Create(schedule *Schedule) error {
	return r.db.Create(schedule).Error
}

func (r *repository) Update(id string, updates map[string]interface{}) error {
	return r.db.Model(&Schedule{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&Schedule{}).Error
}
