package service

import (
	"testing"
	"time"

	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/agoraboard/agora-backend/pkg/auth"
	"github.com/agoraboard/agora-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthFixture() (*mockUserRepo, AuthService) {
	userRepo := new(mockUserRepo)
	jwtManager := jwt.NewManager("test-secret", 30*time.Minute, 24*time.Hour)
	svc := NewAuthService(userRepo, jwtManager)
	return userRepo, svc
}

func TestRegister_Success(t *testing.T) {
	userRepo, svc := newAuthFixture()

	userRepo.On("FindByUsername", "alice").Return(nil, common.ErrUserNotFound)
	userRepo.On("Create", mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.User).ID = 1
	}).Return(nil)

	resp, err := svc.Register(&domain.RegisterRequest{Username: "alice", Password: "secret123"})

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), resp.ID)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, domain.RoleUser, resp.Role)
	userRepo.AssertExpectations(t)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	userRepo, svc := newAuthFixture()

	userRepo.On("FindByUsername", "alice").Return(plainUser(1), nil)

	_, err := svc.Register(&domain.RegisterRequest{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "Create")
}

func TestLogin_Success(t *testing.T) {
	userRepo, svc := newAuthFixture()

	hash, err := auth.HashPassword("secret123")
	assert.NoError(t, err)
	user := &domain.User{ID: 1, Username: "alice", PasswordHash: hash, Role: domain.RoleUser}
	userRepo.On("FindByUsername", "alice").Return(user, nil)

	tokens, err := svc.Login("alice", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo, svc := newAuthFixture()

	hash, _ := auth.HashPassword("secret123")
	user := &domain.User{ID: 1, Username: "alice", PasswordHash: hash}
	userRepo.On("FindByUsername", "alice").Return(user, nil)

	_, err := svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo, svc := newAuthFixture()

	userRepo.On("FindByUsername", "ghost").Return(nil, common.ErrUserNotFound)

	_, err := svc.Login("ghost", "whatever")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRefresh_Success(t *testing.T) {
	userRepo, svc := newAuthFixture()

	jwtManager := jwt.NewManager("test-secret", 30*time.Minute, 24*time.Hour)
	refresh, err := jwtManager.GenerateRefreshToken(1, "alice", "user")
	assert.NoError(t, err)

	userRepo.On("FindByID", uint64(1)).Return(plainUser(1), nil)

	tokens, err := svc.Refresh(refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestRefresh_GarbageToken(t *testing.T) {
	_, svc := newAuthFixture()

	_, err := svc.Refresh("not-a-token")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
