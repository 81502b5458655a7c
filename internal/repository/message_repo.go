package repository

import (
	"errors"

	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository stores message nodes. Compound mutations (create
// with first version, delete with history and ratings) are transactional.
type MessageRepository interface {
	FindByID(id uint64) (*domain.MessageItem, error)
	FindChildren(parentID uint64) ([]*domain.MessageItem, error)
	FindByTree(treeID uint64) ([]*domain.MessageItem, error)
	HasChildren(id uint64) (bool, error)
	CreateWithHistory(msg *domain.MessageItem, history *domain.HistoryItem) error
	DeleteWithDependents(id uint64) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) FindByID(id uint64) (*domain.MessageItem, error) {
	var msg domain.MessageItem
	err := r.db.Where("id = ?", id).First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// FindChildren returns direct children ordered by creation time, newest first
func (r *messageRepository) FindChildren(parentID uint64) ([]*domain.MessageItem, error) {
	var children []*domain.MessageItem
	err := r.db.Where("parent_id = ?", parentID).
		Order("created_at DESC, id DESC").
		Find(&children).Error
	if err != nil {
		return nil, err
	}
	return children, nil
}

// FindByTree returns every node of a tree, newest first
func (r *messageRepository) FindByTree(treeID uint64) ([]*domain.MessageItem, error) {
	var messages []*domain.MessageItem
	err := r.db.Where("tree_id = ?", treeID).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) HasChildren(id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.MessageItem{}).
		Where("parent_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// CreateWithHistory creates a message together with its first version
func (r *messageRepository) CreateWithHistory(msg *domain.MessageItem, history *domain.HistoryItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		history.MessageID = msg.ID
		return tx.Create(history).Error
	})
}

// DeleteWithDependents removes a single message together with its
// history and ratings. Callers guarantee the node has no children.
func (r *messageRepository) DeleteWithDependents(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", id).Delete(&domain.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("message_id = ?", id).Delete(&domain.HistoryItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.MessageItem{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return common.ErrMessageNotFound
		}
		return nil
	})
}
