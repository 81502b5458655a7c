package repository

import (
	"errors"

	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"gorm.io/gorm"
)

// ForumRepository is the forum registry consumed by the conversation core
type ForumRepository interface {
	FindByID(id uint64) (*domain.Forum, error)
	List(offset, limit int) ([]*domain.Forum, int64, error)
	Create(forum *domain.Forum) error
	Update(forum *domain.Forum) error
}

type forumRepository struct {
	db *gorm.DB
}

// NewForumRepository creates a new ForumRepository
func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

func (r *forumRepository) FindByID(id uint64) (*domain.Forum, error) {
	var forum domain.Forum
	err := r.db.Where("id = ?", id).First(&forum).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrForumNotFound
	}
	if err != nil {
		return nil, err
	}
	return &forum, nil
}

func (r *forumRepository) List(offset, limit int) ([]*domain.Forum, int64, error) {
	var forums []*domain.Forum
	var total int64

	query := r.db.Model(&domain.Forum{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&forums).Error; err != nil {
		return nil, 0, err
	}
	return forums, total, nil
}

func (r *forumRepository) Create(forum *domain.Forum) error {
	return r.db.Create(forum).Error
}

func (r *forumRepository) Update(forum *domain.Forum) error {
	return r.db.Save(forum).Error
}
