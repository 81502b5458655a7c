package service

import (
	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/agoraboard/agora-backend/internal/repository"
)

// ModerationService owns the publication state machine: which state a
// fresh version starts in, how edits re-enter moderation, and how the
// forum owner's verdict resolves a pending version.
type ModerationService interface {
	// DecideInitialState returns published for unmoderated forums and
	// for content written by the forum's own owner, unpublished
	// otherwise.
	DecideInitialState(forum *domain.Forum, authorID uint64) domain.PublicationState
	// EditMessage replaces a message's content. A published current
	// version gets a new pending version; an already-pending version is
	// overwritten in place.
	EditMessage(messageID uint64, newBody string, actorID uint64) (*domain.MessageResponse, error)
	// Decide resolves the pending version of a message. Rejecting a
	// never-published message deletes it (cascading for roots).
	Decide(messageID uint64, approve bool, actorID uint64) error
}

type moderationService struct {
	messageRepo repository.MessageRepository
	treeRepo    repository.TreeRepository
	forumRepo   repository.ForumRepository
	userRepo    repository.UserRepository
	ratingRepo  repository.RatingRepository
	history     HistoryService
	maxBanCount int
}

// NewModerationService creates a new ModerationService
func NewModerationService(
	messageRepo repository.MessageRepository,
	treeRepo repository.TreeRepository,
	forumRepo repository.ForumRepository,
	userRepo repository.UserRepository,
	ratingRepo repository.RatingRepository,
	history HistoryService,
	maxBanCount int,
) ModerationService {
	return &moderationService{
		messageRepo: messageRepo,
		treeRepo:    treeRepo,
		forumRepo:   forumRepo,
		userRepo:    userRepo,
		ratingRepo:  ratingRepo,
		history:     history,
		maxBanCount: maxBanCount,
	}
}

func (s *moderationService) DecideInitialState(forum *domain.Forum, authorID uint64) domain.PublicationState {
	if !forum.IsModerated() || authorID == forum.OwnerID {
		return domain.StatePublished
	}
	return domain.StateUnpublished
}

func (s *moderationService) EditMessage(messageID uint64, newBody string, actorID uint64) (*domain.MessageResponse, error) {
	msg, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		return nil, err
	}

	// Only the owner edits; there is no superuser exception here
	if msg.UserID != actorID {
		return nil, common.ErrForbiddenOperation
	}

	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return nil, err
	}
	if err := checkBan(actor, s.maxBanCount); err != nil {
		return nil, err
	}

	forum, err := s.forumRepo.FindByID(msg.ForumID)
	if err != nil {
		return nil, err
	}
	if forum.ReadOnly {
		return nil, common.ErrForumReadOnly
	}

	current, err := s.history.Current(messageID)
	if err != nil {
		return nil, err
	}

	if current.State == domain.StatePublished {
		// A published message re-enters moderation with a new version
		state := s.DecideInitialState(forum, msg.UserID)
		if err := s.history.Append(messageID, newBody, state); err != nil {
			return nil, err
		}
	} else {
		// A second pending edit replaces the first, no new version
		if err := s.history.OverwritePending(messageID, newBody); err != nil {
			return nil, err
		}
	}

	return s.messageResponse(msg)
}

func (s *moderationService) Decide(messageID uint64, approve bool, actorID uint64) error {
	msg, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		return err
	}

	forum, err := s.forumRepo.FindByID(msg.ForumID)
	if err != nil {
		return err
	}
	if forum.OwnerID != actorID {
		return common.ErrForbiddenOperation
	}

	current, err := s.history.Current(messageID)
	if err != nil {
		return err
	}
	if current.State == domain.StatePublished {
		return common.ErrMessageAlreadyPublished
	}

	if approve {
		return s.history.Publish(messageID)
	}

	count, err := s.history.Count(messageID)
	if err != nil {
		return err
	}

	if count > 1 {
		// Revert to the previously published content
		_, err := s.history.RevokeNewest(messageID)
		return err
	}

	// First version rejected: the message never existed publicly,
	// remove it entirely
	if msg.IsRoot() {
		return s.treeRepo.DeleteTree(msg.TreeID)
	}

	// A pending first-version comment cannot have children (comments
	// require a published parent), but guard anyway
	hasChildren, err := s.messageRepo.HasChildren(messageID)
	if err != nil {
		return err
	}
	if hasChildren {
		return common.ErrMessageHasComments
	}

	return s.messageRepo.DeleteWithDependents(messageID)
}

func (s *moderationService) messageResponse(msg *domain.MessageItem) (*domain.MessageResponse, error) {
	current, err := s.history.Current(msg.ID)
	if err != nil {
		return nil, err
	}
	agg, err := s.ratingRepo.Aggregate(msg.ID)
	if err != nil {
		return nil, err
	}
	return &domain.MessageResponse{
		ID:        msg.ID,
		TreeID:    msg.TreeID,
		ParentID:  msg.ParentID,
		UserID:    msg.UserID,
		Body:      current.Body,
		State:     current.State,
		Rating:    *agg,
		CreatedAt: msg.CreatedAt,
		UpdatedAt: msg.UpdatedAt,
	}, nil
}
