package domain

import "time"

// Rating is one user's numeric rating of one message. The
// (message_id, user_id) pair is unique; re-rating overwrites.
type Rating struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MessageID uint64    `gorm:"column:message_id;uniqueIndex:idx_ratings_message_user" json:"message_id"`
	UserID    uint64    `gorm:"column:user_id;uniqueIndex:idx_ratings_message_user" json:"user_id"`
	Value     int       `gorm:"column:value" json:"value"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Rating) TableName() string { return "ratings" }

// RatingAggregate is the derived average and rater count of a message.
// Average is 0 when no ratings exist.
type RatingAggregate struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// RateRequest is the request DTO for rating a message
type RateRequest struct {
	Value int `json:"value" binding:"required,min=1,max=5"`
}

// MessageRatingEntry is one row of the per-message rating report
type MessageRatingEntry struct {
	MessageID  uint64  `json:"message_id"`
	IsRoot     bool    `json:"is_root"`
	Rating     float64 `json:"rating"`
	RatedCount int64   `json:"rated_count"`
}

// UserRatingEntry is one row of the per-user rating report.
// Rating is the mean over all individual ratings received across the
// user's messages; RatedCount is the number of such ratings.
type UserRatingEntry struct {
	UserID     uint64  `json:"user_id"`
	Username   string  `json:"username"`
	Rating     float64 `json:"rating"`
	RatedCount int64   `json:"rated_count"`
}
