package board

import "gorm.io/gorm"

type Repository interface {
	ListByType(postType string) ([]*Post, error)
	GetByID(id string) (*Post, error)
	Create(post *Post) error
	Update(id string, updates map[string]interface{}) error
	Delete(id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByType(postType string) ([]*Post, error) {
	var posts []*Post
	err := r.db.
		Preload("User").
		Where("type = ?", postType).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *repository) GetByID(id string) (*Post, error) {
	var post Post
	err := r.db.Preload("User").Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *repository) Create(post *Post) error {
	return r.db.Create(post).Error
}

func (r *repository) Update(id string, updates map[string]interface{}) error {
	return r.db.Model(&Post{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&Post{}).Error
}
