package service

import (
	"time"

	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/config"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/agoraboard/agora-backend/internal/repository"
	"github.com/agoraboard/agora-backend/pkg/logger"
)

// UserService is the user directory plus the ban-issuing wrapper the
// conversation core treats as external. The core itself only consumes
// the resulting ban classification.
type UserService interface {
	Get(id uint64) (*domain.UserResponse, error)
	// Ban applies one temporary ban of the configured duration and
	// bumps the ban count. Reaching the configured maximum makes the
	// classification permanent.
	Ban(targetID, actorID uint64, reason string) error
}

type userService struct {
	userRepo repository.UserRepository
	banCfg   config.BanConfig
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, banCfg config.BanConfig) UserService {
	return &userService{userRepo: userRepo, banCfg: banCfg}
}

func (s *userService) Get(id uint64) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *userService) Ban(targetID, actorID uint64, reason string) error {
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return err
	}
	if !actor.IsSuperuser() {
		return common.ErrForbiddenOperation
	}

	if _, err := s.userRepo.FindByID(targetID); err != nil {
		return err
	}

	until := time.Now().Add(s.banCfg.Duration)
	if err := s.userRepo.ApplyBan(targetID, until); err != nil {
		return err
	}

	logger.GetLogger().Info().
		Uint64("target_id", targetID).
		Uint64("actor_id", actorID).
		Str("reason", reason).
		Time("banned_until", until).
		Msg("user banned")
	return nil
}
