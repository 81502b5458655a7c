package repository

import (
	"github.com/agoraboard/agora-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingRepository stores per-user message ratings. The aggregate is
// always computed from the stored rows, never from a counter that
// could drift.
type RatingRepository interface {
	Upsert(rating *domain.Rating) error
	Remove(messageID, userID uint64) error
	Find(messageID, userID uint64) (*domain.Rating, error)
	Aggregate(messageID uint64) (*domain.RatingAggregate, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the rating or overwrites the user's prior value on
// the same message.
func (r *ratingRepository) Upsert(rating *domain.Rating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "message_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(rating).Error
}

// Remove deletes the rating if present; removing a missing rating is a no-op
func (r *ratingRepository) Remove(messageID, userID uint64) error {
	return r.db.Where("message_id = ? AND user_id = ?", messageID, userID).
		Delete(&domain.Rating{}).Error
}

func (r *ratingRepository) Find(messageID, userID uint64) (*domain.Rating, error) {
	var rating domain.Rating
	err := r.db.Where("message_id = ? AND user_id = ?", messageID, userID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Aggregate computes the average and distinct-rater count from the
// stored ratings. Average is 0 when no ratings exist.
func (r *ratingRepository) Aggregate(messageID uint64) (*domain.RatingAggregate, error) {
	var agg domain.RatingAggregate
	err := r.db.Model(&domain.Rating{}).
		Select("COALESCE(AVG(value), 0) AS average, COUNT(*) AS count").
		Where("message_id = ?", messageID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}
