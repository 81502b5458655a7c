package repository

import (
	"testing"
	"time"

	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRatingUpsert_OverwritesPriorValue(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	msg := seedMessage(t, db, 1, 1, 1, nil, time.Now())

	assert.NoError(t, repo.Upsert(&domain.Rating{MessageID: msg.ID, UserID: 2, Value: 2}))
	assert.NoError(t, repo.Upsert(&domain.Rating{MessageID: msg.ID, UserID: 2, Value: 5}))

	stored, err := repo.Find(msg.ID, 2)
	assert.NoError(t, err)
	assert.Equal(t, 5, stored.Value)

	// Still exactly one row for the pair
	var count int64
	db.Model(&domain.Rating{}).Where("message_id = ? AND user_id = ?", msg.ID, 2).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRatingAggregate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	msg := seedMessage(t, db, 1, 1, 1, nil, time.Now())

	// Three raters: 2, 5, 5
	assert.NoError(t, repo.Upsert(&domain.Rating{MessageID: msg.ID, UserID: 2, Value: 2}))
	assert.NoError(t, repo.Upsert(&domain.Rating{MessageID: msg.ID, UserID: 3, Value: 5}))
	assert.NoError(t, repo.Upsert(&domain.Rating{MessageID: msg.ID, UserID: 4, Value: 5}))

	agg, err := repo.Aggregate(msg.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 4.0, agg.Average, 0.0001)
	assert.Equal(t, int64(3), agg.Count)
}

func TestRatingAggregate_NoRatings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	msg := seedMessage(t, db, 1, 1, 1, nil, time.Now())

	agg, err := repo.Aggregate(msg.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, agg.Average)
	assert.Equal(t, int64(0), agg.Count)
}

func TestRatingRemove(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	msg := seedMessage(t, db, 1, 1, 1, nil, time.Now())

	assert.NoError(t, repo.Upsert(&domain.Rating{MessageID: msg.ID, UserID: 2, Value: 3}))
	assert.NoError(t, repo.Remove(msg.ID, 2))

	agg, _ := repo.Aggregate(msg.ID)
	assert.Equal(t, int64(0), agg.Count)

	// Removing a rating that never existed is a no-op
	assert.NoError(t, repo.Remove(msg.ID, 99))
}
