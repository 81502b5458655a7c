package repository

import (
	"github.com/agoraboard/agora-backend/internal/domain"
	"gorm.io/gorm"
)

// StatsRepository computes the rating reports. Every message and every
// message-owning user in scope appears in its report, zero-rated rows
// included; ordering is rating DESC with ascending id as the
// deterministic tie-break.
type StatsRepository interface {
	// MessagesRatings reports per-message aggregates. forumID 0 means
	// the whole server.
	MessagesRatings(forumID uint64, offset, limit int) ([]*domain.MessageRatingEntry, int64, error)
	// UsersRatings reports per-user aggregates over all ratings the
	// user's messages received. forumID 0 means the whole server.
	UsersRatings(forumID uint64, offset, limit int) ([]*domain.UserRatingEntry, int64, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) MessagesRatings(forumID uint64, offset, limit int) ([]*domain.MessageRatingEntry, int64, error) {
	var total int64
	countQuery := r.db.Model(&domain.MessageItem{})
	if forumID != 0 {
		countQuery = countQuery.Where("forum_id = ?", forumID)
	}
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sql := `
		SELECT m.id AS message_id,
		       CASE WHEN m.parent_id IS NULL THEN 1 ELSE 0 END AS is_root,
		       COALESCE(AVG(r.value), 0) AS rating,
		       COUNT(r.id) AS rated_count
		FROM message_items m
		LEFT JOIN ratings r ON r.message_id = m.id`
	args := []interface{}{}
	if forumID != 0 {
		sql += ` WHERE m.forum_id = ?`
		args = append(args, forumID)
	}
	sql += `
		GROUP BY m.id, m.parent_id
		ORDER BY rating DESC, m.id ASC
		LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var rows []*domain.MessageRatingEntry
	if err := r.db.Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *statsRepository) UsersRatings(forumID uint64, offset, limit int) ([]*domain.UserRatingEntry, int64, error) {
	var total int64
	countQuery := r.db.Model(&domain.MessageItem{}).Distinct("user_id")
	if forumID != 0 {
		countQuery = countQuery.Where("forum_id = ?", forumID)
	}
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sql := `
		SELECT u.id AS user_id,
		       u.username,
		       COALESCE(AVG(r.value), 0) AS rating,
		       COUNT(r.id) AS rated_count
		FROM users u
		JOIN message_items m ON m.user_id = u.id`
	args := []interface{}{}
	if forumID != 0 {
		sql += ` AND m.forum_id = ?`
		args = append(args, forumID)
	}
	sql += `
		LEFT JOIN ratings r ON r.message_id = m.id
		GROUP BY u.id, u.username
		ORDER BY rating DESC, u.id ASC
		LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var rows []*domain.UserRatingEntry
	if err := r.db.Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
