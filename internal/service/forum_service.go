package service

import (
	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/agoraboard/agora-backend/internal/repository"
)

// ForumService is a thin registry wrapper around forum records
type ForumService interface {
	Create(req *domain.CreateForumRequest, ownerID uint64) (*domain.Forum, error)
	Get(id uint64) (*domain.Forum, error)
	List(offset, limit int) ([]*domain.Forum, *common.Meta, error)
	Update(id uint64, req *domain.UpdateForumRequest, actorID uint64) (*domain.Forum, error)
}

type forumService struct {
	forumRepo repository.ForumRepository
	userRepo  repository.UserRepository
}

// NewForumService creates a new ForumService
func NewForumService(forumRepo repository.ForumRepository, userRepo repository.UserRepository) ForumService {
	return &forumService{forumRepo: forumRepo, userRepo: userRepo}
}

func (s *forumService) Create(req *domain.CreateForumRequest, ownerID uint64) (*domain.Forum, error) {
	forum := &domain.Forum{
		Name:     req.Name,
		Type:     req.Type,
		OwnerID:  ownerID,
		ReadOnly: req.ReadOnly,
	}
	if err := s.forumRepo.Create(forum); err != nil {
		return nil, err
	}
	return forum, nil
}

func (s *forumService) Get(id uint64) (*domain.Forum, error) {
	return s.forumRepo.FindByID(id)
}

func (s *forumService) List(offset, limit int) ([]*domain.Forum, *common.Meta, error) {
	offset, limit = clampPage(offset, limit)
	forums, total, err := s.forumRepo.List(offset, limit)
	if err != nil {
		return nil, nil, err
	}
	return forums, &common.Meta{Offset: offset, Limit: limit, Total: total}, nil
}

// Update lets the forum owner or a superuser change name and readonly flag
func (s *forumService) Update(id uint64, req *domain.UpdateForumRequest, actorID uint64) (*domain.Forum, error) {
	forum, err := s.forumRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return nil, err
	}
	if forum.OwnerID != actorID && !actor.IsSuperuser() {
		return nil, common.ErrForbiddenOperation
	}

	if req.Name != nil {
		forum.Name = *req.Name
	}
	if req.ReadOnly != nil {
		forum.ReadOnly = *req.ReadOnly
	}
	if err := s.forumRepo.Update(forum); err != nil {
		return nil, err
	}
	return forum, nil
}
