package service

import (
	"testing"

	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newForumFixture() (*mockForumRepo, *mockUserRepo, ForumService) {
	forumRepo := new(mockForumRepo)
	userRepo := new(mockUserRepo)
	svc := NewForumService(forumRepo, userRepo)
	return forumRepo, userRepo, svc
}

func TestCreateForum_Success(t *testing.T) {
	forumRepo, _, svc := newForumFixture()

	forumRepo.On("Create", mock.AnythingOfType("*domain.Forum")).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Forum).ID = 10
	}).Return(nil)

	forum, err := svc.Create(&domain.CreateForumRequest{Name: "reviews", Type: domain.ForumModerated}, 1)

	assert.NoError(t, err)
	assert.Equal(t, uint64(10), forum.ID)
	assert.Equal(t, uint64(1), forum.OwnerID)
	assert.True(t, forum.IsModerated())
}

func TestUpdateForum_OwnerMayUpdate(t *testing.T) {
	forumRepo, userRepo, svc := newForumFixture()

	forum := unmoderatedForum(1)
	forumRepo.On("FindByID", forum.ID).Return(forum, nil)
	userRepo.On("FindByID", uint64(1)).Return(plainUser(1), nil)
	forumRepo.On("Update", forum).Return(nil)

	readOnly := true
	updated, err := svc.Update(forum.ID, &domain.UpdateForumRequest{ReadOnly: &readOnly}, 1)

	assert.NoError(t, err)
	assert.True(t, updated.ReadOnly)
}

func TestUpdateForum_StrangerForbidden(t *testing.T) {
	forumRepo, userRepo, svc := newForumFixture()

	forum := unmoderatedForum(1)
	forumRepo.On("FindByID", forum.ID).Return(forum, nil)
	userRepo.On("FindByID", uint64(2)).Return(plainUser(2), nil)

	_, err := svc.Update(forum.ID, &domain.UpdateForumRequest{}, 2)
	assert.ErrorIs(t, err, common.ErrForbiddenOperation)
	forumRepo.AssertNotCalled(t, "Update")
}

func TestListForums(t *testing.T) {
	forumRepo, _, svc := newForumFixture()

	forums := []*domain.Forum{unmoderatedForum(1), moderatedForum(1)}
	forumRepo.On("List", 0, 20).Return(forums, int64(2), nil)

	result, meta, err := svc.List(0, 20)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, int64(2), meta.Total)
}
