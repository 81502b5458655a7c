package service

import (
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/agoraboard/agora-backend/internal/repository"
)

// HistoryService maintains each message's ordered version log.
// Two invariants hold across every mutation: a message's history is
// never empty while the message exists, and it carries at most one
// unpublished version at any time.
type HistoryService interface {
	// Append adds a new newest version, starting a fresh moderation
	// cycle when state is unpublished.
	Append(messageID uint64, body string, state domain.PublicationState) error
	// OverwritePending replaces the single pending version's body in
	// place; fails if no pending version exists.
	OverwritePending(messageID uint64, body string) error
	// Publish marks the pending version published; fails if the newest
	// version already is.
	Publish(messageID uint64) error
	// RevokeNewest removes exactly the newest version and returns the
	// version restored as current.
	RevokeNewest(messageID uint64) (*domain.HistoryItem, error)
	// Current returns the newest version of a message.
	Current(messageID uint64) (*domain.HistoryItem, error)
	// Versions returns the whole log, newest first.
	Versions(messageID uint64) ([]*domain.HistoryResponse, error)
	// Count returns the number of versions a message has.
	Count(messageID uint64) (int64, error)
}

type historyService struct {
	historyRepo repository.HistoryRepository
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(historyRepo repository.HistoryRepository) HistoryService {
	return &historyService{historyRepo: historyRepo}
}

func (s *historyService) Append(messageID uint64, body string, state domain.PublicationState) error {
	return s.historyRepo.Append(&domain.HistoryItem{
		MessageID: messageID,
		Body:      body,
		State:     state,
	})
}

func (s *historyService) OverwritePending(messageID uint64, body string) error {
	return s.historyRepo.OverwritePending(messageID, body)
}

func (s *historyService) Publish(messageID uint64) error {
	return s.historyRepo.Publish(messageID)
}

func (s *historyService) RevokeNewest(messageID uint64) (*domain.HistoryItem, error) {
	return s.historyRepo.RevokeNewest(messageID)
}

func (s *historyService) Current(messageID uint64) (*domain.HistoryItem, error) {
	return s.historyRepo.Newest(messageID)
}

func (s *historyService) Count(messageID uint64) (int64, error) {
	return s.historyRepo.Count(messageID)
}

func (s *historyService) Versions(messageID uint64) ([]*domain.HistoryResponse, error) {
	items, err := s.historyRepo.List(messageID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.HistoryResponse, len(items))
	for i, item := range items {
		responses[i] = &domain.HistoryResponse{
			ID:        item.ID,
			Body:      item.Body,
			State:     item.State,
			CreatedAt: item.CreatedAt,
		}
	}
	return responses, nil
}
