package service

import (
	"context"

	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/agoraboard/agora-backend/internal/repository"
	"github.com/agoraboard/agora-backend/pkg/cache"
)

// RatingService handles per-message rating upserts, removals and
// aggregate reads. Rating is idempotent per (message, user): re-rating
// overwrites the prior value, leaving exactly one active rating.
type RatingService interface {
	Rate(messageID, actorID uint64, value int) (*domain.RatingAggregate, error)
	Unrate(messageID, actorID uint64) (*domain.RatingAggregate, error)
	Aggregate(messageID uint64) (*domain.RatingAggregate, error)
}

type ratingService struct {
	ratingRepo  repository.RatingRepository
	messageRepo repository.MessageRepository
	cacheSvc    cache.Service
}

// NewRatingService creates a new RatingService
func NewRatingService(ratingRepo repository.RatingRepository, messageRepo repository.MessageRepository, cacheSvc cache.Service) RatingService {
	return &ratingService{
		ratingRepo:  ratingRepo,
		messageRepo: messageRepo,
		cacheSvc:    cacheSvc,
	}
}

func (s *ratingService) Rate(messageID, actorID uint64, value int) (*domain.RatingAggregate, error) {
	if value < 1 || value > 5 {
		return nil, common.ErrInvalidRating
	}

	if _, err := s.messageRepo.FindByID(messageID); err != nil {
		return nil, err
	}

	rating := &domain.Rating{
		MessageID: messageID,
		UserID:    actorID,
		Value:     value,
	}
	if err := s.ratingRepo.Upsert(rating); err != nil {
		return nil, err
	}
	s.invalidateStats()

	return s.ratingRepo.Aggregate(messageID)
}

func (s *ratingService) Unrate(messageID, actorID uint64) (*domain.RatingAggregate, error) {
	if _, err := s.messageRepo.FindByID(messageID); err != nil {
		return nil, err
	}

	if err := s.ratingRepo.Remove(messageID, actorID); err != nil {
		return nil, err
	}
	s.invalidateStats()

	return s.ratingRepo.Aggregate(messageID)
}

func (s *ratingService) Aggregate(messageID uint64) (*domain.RatingAggregate, error) {
	if _, err := s.messageRepo.FindByID(messageID); err != nil {
		return nil, err
	}
	return s.ratingRepo.Aggregate(messageID)
}

func (s *ratingService) invalidateStats() {
	if s.cacheSvc == nil {
		return
	}
	_ = s.cacheSvc.InvalidateStats(context.Background())
}
