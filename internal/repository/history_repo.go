package repository

import (
	"errors"
	"time"

	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"gorm.io/gorm"
)

// ErrHistoryWouldBeEmpty signals an attempt to remove a message's last
// remaining version. History is never empty while the message exists.
var ErrHistoryWouldBeEmpty = errors.New("history would be empty")

// ErrPendingVersionExists signals an attempt to append a second
// unpublished version. A message carries at most one pending version.
var ErrPendingVersionExists = errors.New("pending version already exists")

// HistoryRepository stores the ordered version log of each message.
// All guarded writes are conditional updates checked via RowsAffected,
// so concurrent edits to the same message cannot race past the
// single-pending-version invariant.
type HistoryRepository interface {
	List(messageID uint64) ([]*domain.HistoryItem, error)
	Newest(messageID uint64) (*domain.HistoryItem, error)
	Count(messageID uint64) (int64, error)
	Append(item *domain.HistoryItem) error
	OverwritePending(messageID uint64, body string) error
	Publish(messageID uint64) error
	RevokeNewest(messageID uint64) (*domain.HistoryItem, error)
}

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// List returns all versions of a message, newest first
func (r *historyRepository) List(messageID uint64) ([]*domain.HistoryItem, error) {
	var items []*domain.HistoryItem
	err := r.db.Where("message_id = ?", messageID).
		Order("id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Newest returns the current version of a message
func (r *historyRepository) Newest(messageID uint64) (*domain.HistoryItem, error) {
	var item domain.HistoryItem
	err := r.db.Where("message_id = ?", messageID).
		Order("id DESC").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *historyRepository) Count(messageID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.HistoryItem{}).
		Where("message_id = ?", messageID).
		Count(&count).Error
	return count, err
}

// Append adds a new newest version. An unpublished version is inserted
// conditionally in one statement, so concurrent appends cannot both
// slip past the single-pending-version check.
func (r *historyRepository) Append(item *domain.HistoryItem) error {
	if item.State != domain.StateUnpublished {
		return r.db.Create(item).Error
	}
	result := r.db.Exec(
		`INSERT INTO history_items (message_id, body, state, created_at)
		 SELECT ?, ?, ?, ? FROM (SELECT 1) AS seed
		 WHERE NOT EXISTS (
			SELECT 1 FROM history_items WHERE message_id = ? AND state = ?
		 )`,
		item.MessageID, item.Body, item.State, time.Now(),
		item.MessageID, domain.StateUnpublished)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPendingVersionExists
	}
	return nil
}

// OverwritePending replaces the body of the single pending version in
// place. Fails when no pending version exists.
func (r *historyRepository) OverwritePending(messageID uint64, body string) error {
	result := r.db.Model(&domain.HistoryItem{}).
		Where("message_id = ? AND state = ?", messageID, domain.StateUnpublished).
		Updates(map[string]interface{}{
			"body":       body,
			"created_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNoPendingVersion
	}
	return nil
}

// Publish marks the pending version published. Fails when the newest
// version is already published.
func (r *historyRepository) Publish(messageID uint64) error {
	result := r.db.Model(&domain.HistoryItem{}).
		Where("message_id = ? AND state = ?", messageID, domain.StateUnpublished).
		Update("state", domain.StatePublished)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrMessageAlreadyPublished
	}
	return nil
}

// RevokeNewest removes the newest version, restoring the one before it
// as current. The newest version must still be unpublished when the
// delete lands; a version published in the meantime is not reverted.
// Removing the last remaining version is refused; that case is a
// message deletion, not a revoke.
func (r *historyRepository) RevokeNewest(messageID uint64) (*domain.HistoryItem, error) {
	var restored domain.HistoryItem
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var items []*domain.HistoryItem
		if err := tx.Where("message_id = ?", messageID).
			Order("id DESC").
			Limit(2).
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return common.ErrMessageNotFound
		}
		if len(items) < 2 {
			return ErrHistoryWouldBeEmpty
		}
		result := tx.Where("id = ? AND state = ?", items[0].ID, domain.StateUnpublished).
			Delete(&domain.HistoryItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return common.ErrMessageAlreadyPublished
		}
		restored = *items[1]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &restored, nil
}
