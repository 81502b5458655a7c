package service

import (
	"testing"
	"time"

	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func newModerationFixture() (*mockMessageRepo, *mockTreeRepo, *mockForumRepo, *mockUserRepo, *mockRatingRepo, *mockHistorySvc, ModerationService) {
	messageRepo := new(mockMessageRepo)
	treeRepo := new(mockTreeRepo)
	forumRepo := new(mockForumRepo)
	userRepo := new(mockUserRepo)
	ratingRepo := new(mockRatingRepo)
	history := new(mockHistorySvc)
	svc := NewModerationService(messageRepo, treeRepo, forumRepo, userRepo, ratingRepo, history, 3)
	return messageRepo, treeRepo, forumRepo, userRepo, ratingRepo, history, svc
}

func TestDecideInitialState(t *testing.T) {
	_, _, _, _, _, _, svc := newModerationFixture()

	owner := uint64(1)
	moderated := moderatedForum(owner)
	unmoderated := unmoderatedForum(owner)

	// Unmoderated forums publish immediately
	assert.Equal(t, domain.StatePublished, svc.DecideInitialState(unmoderated, 2))

	// The forum owner's own content skips moderation
	assert.Equal(t, domain.StatePublished, svc.DecideInitialState(moderated, owner))

	// Everyone else waits for approval in a moderated forum
	assert.Equal(t, domain.StateUnpublished, svc.DecideInitialState(moderated, 2))
}

func TestEditMessage_PublishedAppendsNewVersion(t *testing.T) {
	messageRepo, _, forumRepo, userRepo, ratingRepo, history, svc := newModerationFixture()

	author := uint64(2)
	forum := moderatedForum(1)
	msg := &domain.MessageItem{ID: 100, TreeID: 5, ForumID: forum.ID, UserID: author, ParentID: uint64Ptr(99)}

	messageRepo.On("FindByID", uint64(100)).Return(msg, nil)
	userRepo.On("FindByID", author).Return(plainUser(author), nil)
	forumRepo.On("FindByID", forum.ID).Return(forum, nil)
	history.On("Current", uint64(100)).Return(
		&domain.HistoryItem{MessageID: 100, Body: "old", State: domain.StatePublished}, nil).Once()
	// Moderated forum, non-owner author: the new version goes back to pending
	history.On("Append", uint64(100), "new body", domain.StateUnpublished).Return(nil)
	history.On("Current", uint64(100)).Return(
		&domain.HistoryItem{MessageID: 100, Body: "new body", State: domain.StateUnpublished}, nil)
	ratingRepo.On("Aggregate", uint64(100)).Return(&domain.RatingAggregate{}, nil)

	resp, err := svc.EditMessage(100, "new body", author)

	assert.NoError(t, err)
	assert.Equal(t, "new body", resp.Body)
	assert.Equal(t, domain.StateUnpublished, resp.State)
	history.AssertExpectations(t)
}

func TestEditMessage_PendingOverwritesInPlace(t *testing.T) {
	messageRepo, _, forumRepo, userRepo, ratingRepo, history, svc := newModerationFixture()

	author := uint64(2)
	forum := moderatedForum(1)
	msg := &domain.MessageItem{ID: 100, TreeID: 5, ForumID: forum.ID, UserID: author, ParentID: uint64Ptr(99)}

	messageRepo.On("FindByID", uint64(100)).Return(msg, nil)
	userRepo.On("FindByID", author).Return(plainUser(author), nil)
	forumRepo.On("FindByID", forum.ID).Return(forum, nil)
	history.On("Current", uint64(100)).Return(
		&domain.HistoryItem{MessageID: 100, Body: "first draft", State: domain.StateUnpublished}, nil).Once()
	history.On("OverwritePending", uint64(100), "second draft").Return(nil)
	history.On("Current", uint64(100)).Return(
		&domain.HistoryItem{MessageID: 100, Body: "second draft", State: domain.StateUnpublished}, nil)
	ratingRepo.On("Aggregate", uint64(100)).Return(&domain.RatingAggregate{}, nil)

	resp, err := svc.EditMessage(100, "second draft", author)

	assert.NoError(t, err)
	assert.Equal(t, "second draft", resp.Body)
	history.AssertNotCalled(t, "Append")
	history.AssertExpectations(t)
}

func TestEditMessage_NotOwner(t *testing.T) {
	messageRepo, _, _, _, _, _, svc := newModerationFixture()

	msg := &domain.MessageItem{ID: 100, TreeID: 5, ForumID: 10, UserID: 2}
	messageRepo.On("FindByID", uint64(100)).Return(msg, nil)

	_, err := svc.EditMessage(100, "body", 3)
	assert.ErrorIs(t, err, common.ErrForbiddenOperation)
}

func TestEditMessage_BannedAuthor(t *testing.T) {
	messageRepo, _, _, userRepo, _, _, svc := newModerationFixture()

	author := uint64(2)
	msg := &domain.MessageItem{ID: 100, TreeID: 5, ForumID: 10, UserID: author}
	until := time.Now().Add(time.Hour)
	banned := &domain.User{ID: author, Role: domain.RoleUser, BannedUntil: &until, BanCount: 1}

	messageRepo.On("FindByID", uint64(100)).Return(msg, nil)
	userRepo.On("FindByID", author).Return(banned, nil)

	_, err := svc.EditMessage(100, "body", author)
	assert.ErrorIs(t, err, common.ErrUserBanned)
}

func TestEditMessage_ReadOnlyForum(t *testing.T) {
	messageRepo, _, forumRepo, userRepo, _, _, svc := newModerationFixture()

	author := uint64(2)
	forum := unmoderatedForum(1)
	forum.ReadOnly = true
	msg := &domain.MessageItem{ID: 100, TreeID: 5, ForumID: forum.ID, UserID: author}

	messageRepo.On("FindByID", uint64(100)).Return(msg, nil)
	userRepo.On("FindByID", author).Return(plainUser(author), nil)
	forumRepo.On("FindByID", forum.ID).Return(forum, nil)

	_, err := svc.EditMessage(100, "body", author)
	assert.ErrorIs(t, err, common.ErrForumReadOnly)
}

func TestDecide_OnlyForumOwner(t *testing.T) {
	messageRepo, _, forumRepo, _, _, _, svc := newModerationFixture()

	forum := moderatedForum(1)
	msg := &domain.MessageItem{ID: 100, TreeID: 5, ForumID: forum.ID, UserID: 2}

	messageRepo.On("FindByID", uint64(100)).Return(msg, nil)
	forumRepo.On("FindByID", forum.ID).Return(forum, nil)

	err := svc.Decide(100, true, 2)
	assert.ErrorIs(t, err, common.ErrForbiddenOperation)
}

func TestDecide_AlreadyPublished(t *testing.T) {
	messageRepo, _, forumRepo, _, _, history, svc := newModerationFixture()

	forum := moderatedForum(1)
	msg := &domain.MessageItem{ID: 100, TreeID: 5, ForumID: forum.ID, UserID: 2}

	messageRepo.On("FindByID", uint64(100)).Return(msg, nil)
	forumRepo.On("FindByID", forum.ID).Return(forum, nil)
	history.On("Current", uint64(100)).Return(
		&domain.HistoryItem{MessageID: 100, State: domain.StatePublished}, nil)

	err := svc.Decide(100, true, forum.OwnerID)
	assert.ErrorIs(t, err, common.ErrMessageAlreadyPublished)
}

func TestDecide_ApprovePublishesPendingVersion(t *testing.T) {
	messageRepo, _, forumRepo, _, _, history, svc := newModerationFixture()

	forum := moderatedForum(1)
	msg := &domain.MessageItem{ID: 100, TreeID: 5, ForumID: forum.ID, UserID: 2}

	messageRepo.On("FindByID", uint64(100)).Return(msg, nil)
	forumRepo.On("FindByID", forum.ID).Return(forum, nil)
	history.On("Current", uint64(100)).Return(
		&domain.HistoryItem{MessageID: 100, State: domain.StateUnpublished}, nil)
	history.On("Publish", uint64(100)).Return(nil)

	err := svc.Decide(100, true, forum.OwnerID)
	assert.NoError(t, err)
	history.AssertExpectations(t)
}

func TestDecide_RejectEditRevertsToPriorVersion(t *testing.T) {
	messageRepo, _, forumRepo, _, _, history, svc := newModerationFixture()

	forum := moderatedForum(1)
	msg := &domain.MessageItem{ID: 100, TreeID: 5, ForumID: forum.ID, UserID: 2, ParentID: uint64Ptr(99)}

	messageRepo.On("FindByID", uint64(100)).Return(msg, nil)
	forumRepo.On("FindByID", forum.ID).Return(forum, nil)
	history.On("Current", uint64(100)).Return(
		&domain.HistoryItem{MessageID: 100, State: domain.StateUnpublished}, nil)
	history.On("Count", uint64(100)).Return(int64(2), nil)
	history.On("RevokeNewest", uint64(100)).Return(
		&domain.HistoryItem{MessageID: 100, Body: "prior", State: domain.StatePublished}, nil)

	err := svc.Decide(100, false, forum.OwnerID)
	assert.NoError(t, err)
	history.AssertExpectations(t)
	messageRepo.AssertNotCalled(t, "DeleteWithDependents")
}

func TestDecide_RejectFirstVersionRootDeletesTree(t *testing.T) {
	messageRepo, treeRepo, forumRepo, _, _, history, svc := newModerationFixture()

	forum := moderatedForum(1)
	root := &domain.MessageItem{ID: 100, TreeID: 5, ForumID: forum.ID, UserID: 2}

	messageRepo.On("FindByID", uint64(100)).Return(root, nil)
	forumRepo.On("FindByID", forum.ID).Return(forum, nil)
	history.On("Current", uint64(100)).Return(
		&domain.HistoryItem{MessageID: 100, State: domain.StateUnpublished}, nil)
	history.On("Count", uint64(100)).Return(int64(1), nil)
	treeRepo.On("DeleteTree", uint64(5)).Return(nil)

	err := svc.Decide(100, false, forum.OwnerID)
	assert.NoError(t, err)
	treeRepo.AssertExpectations(t)
}

func TestDecide_RejectFirstVersionCommentDeletesMessage(t *testing.T) {
	messageRepo, _, forumRepo, _, _, history, svc := newModerationFixture()

	forum := moderatedForum(1)
	comment := &domain.MessageItem{ID: 100, TreeID: 5, ForumID: forum.ID, UserID: 2, ParentID: uint64Ptr(99)}

	messageRepo.On("FindByID", uint64(100)).Return(comment, nil)
	forumRepo.On("FindByID", forum.ID).Return(forum, nil)
	history.On("Current", uint64(100)).Return(
		&domain.HistoryItem{MessageID: 100, State: domain.StateUnpublished}, nil)
	history.On("Count", uint64(100)).Return(int64(1), nil)
	messageRepo.On("HasChildren", uint64(100)).Return(false, nil)
	messageRepo.On("DeleteWithDependents", uint64(100)).Return(nil)

	err := svc.Decide(100, false, forum.OwnerID)
	assert.NoError(t, err)
	messageRepo.AssertExpectations(t)
}

func TestDecide_RejectFirstVersionCommentWithChildrenRefused(t *testing.T) {
	messageRepo, _, forumRepo, _, _, history, svc := newModerationFixture()

	forum := moderatedForum(1)
	comment := &domain.MessageItem{ID: 100, TreeID: 5, ForumID: forum.ID, UserID: 2, ParentID: uint64Ptr(99)}

	messageRepo.On("FindByID", uint64(100)).Return(comment, nil)
	forumRepo.On("FindByID", forum.ID).Return(forum, nil)
	history.On("Current", uint64(100)).Return(
		&domain.HistoryItem{MessageID: 100, State: domain.StateUnpublished}, nil)
	history.On("Count", uint64(100)).Return(int64(1), nil)
	messageRepo.On("HasChildren", uint64(100)).Return(true, nil)

	err := svc.Decide(100, false, forum.OwnerID)
	assert.ErrorIs(t, err, common.ErrMessageHasComments)
	messageRepo.AssertNotCalled(t, "DeleteWithDependents")
}
