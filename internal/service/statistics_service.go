package service

import (
	"context"

	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/agoraboard/agora-backend/internal/repository"
	"github.com/agoraboard/agora-backend/pkg/cache"
)

const (
	statsDefaultLimit = 20
	statsMaxLimit     = 100
)

// StatisticsService produces the paginated rating reports, server-wide
// or scoped to one forum. Pages are cached briefly in redis; the
// database stays the source of truth.
type StatisticsService interface {
	MessagesRatings(forumID uint64, offset, limit int) ([]*domain.MessageRatingEntry, *common.Meta, error)
	UsersRatings(forumID uint64, offset, limit int) ([]*domain.UserRatingEntry, *common.Meta, error)
}

type statisticsService struct {
	statsRepo repository.StatsRepository
	forumRepo repository.ForumRepository
	cacheSvc  cache.Service
}

// NewStatisticsService creates a new StatisticsService
func NewStatisticsService(statsRepo repository.StatsRepository, forumRepo repository.ForumRepository, cacheSvc cache.Service) StatisticsService {
	return &statisticsService{
		statsRepo: statsRepo,
		forumRepo: forumRepo,
		cacheSvc:  cacheSvc,
	}
}

func (s *statisticsService) MessagesRatings(forumID uint64, offset, limit int) ([]*domain.MessageRatingEntry, *common.Meta, error) {
	offset, limit = clampPage(offset, limit)
	if err := s.checkScope(forumID); err != nil {
		return nil, nil, err
	}

	key := cache.StatsMessagesKey(forumID, offset, limit)
	var cached statsPage[domain.MessageRatingEntry]
	if s.cacheSvc != nil && s.cacheSvc.GetStats(context.Background(), key, &cached) == nil {
		return cached.Rows, &common.Meta{ForumID: forumID, Offset: offset, Limit: limit, Total: cached.Total}, nil
	}

	rows, total, err := s.statsRepo.MessagesRatings(forumID, offset, limit)
	if err != nil {
		return nil, nil, err
	}

	if s.cacheSvc != nil {
		_ = s.cacheSvc.SetStats(context.Background(), key, statsPage[domain.MessageRatingEntry]{Rows: rows, Total: total})
	}

	return rows, &common.Meta{ForumID: forumID, Offset: offset, Limit: limit, Total: total}, nil
}

func (s *statisticsService) UsersRatings(forumID uint64, offset, limit int) ([]*domain.UserRatingEntry, *common.Meta, error) {
	offset, limit = clampPage(offset, limit)
	if err := s.checkScope(forumID); err != nil {
		return nil, nil, err
	}

	key := cache.StatsUsersKey(forumID, offset, limit)
	var cached statsPage[domain.UserRatingEntry]
	if s.cacheSvc != nil && s.cacheSvc.GetStats(context.Background(), key, &cached) == nil {
		return cached.Rows, &common.Meta{ForumID: forumID, Offset: offset, Limit: limit, Total: cached.Total}, nil
	}

	rows, total, err := s.statsRepo.UsersRatings(forumID, offset, limit)
	if err != nil {
		return nil, nil, err
	}

	if s.cacheSvc != nil {
		_ = s.cacheSvc.SetStats(context.Background(), key, statsPage[domain.UserRatingEntry]{Rows: rows, Total: total})
	}

	return rows, &common.Meta{ForumID: forumID, Offset: offset, Limit: limit, Total: total}, nil
}

// statsPage is the cached form of one report page
type statsPage[T any] struct {
	Rows  []*T  `json:"rows"`
	Total int64 `json:"total"`
}

// checkScope validates the forum scope; forum id 0 means whole server
func (s *statisticsService) checkScope(forumID uint64) error {
	if forumID == 0 {
		return nil
	}
	_, err := s.forumRepo.FindByID(forumID)
	return err
}

func clampPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || limit > statsMaxLimit {
		limit = statsDefaultLimit
	}
	return offset, limit
}
