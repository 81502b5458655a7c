package service

import (
	"time"

	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Shared testify mocks for the repository and service interfaces the
// service tests exercise.

// --- Mock ForumRepository ---

type mockForumRepo struct {
	mock.Mock
}

func (m *mockForumRepo) FindByID(id uint64) (*domain.Forum, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Forum), args.Error(1)
}

func (m *mockForumRepo) List(offset, limit int) ([]*domain.Forum, int64, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Forum), args.Get(1).(int64), args.Error(2)
}

func (m *mockForumRepo) Create(forum *domain.Forum) error {
	return m.Called(forum).Error(0)
}

func (m *mockForumRepo) Update(forum *domain.Forum) error {
	return m.Called(forum).Error(0)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(id uint64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) Create(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) ApplyBan(id uint64, until time.Time) error {
	return m.Called(id, until).Error(0)
}

// --- Mock TreeRepository ---

type mockTreeRepo struct {
	mock.Mock
}

func (m *mockTreeRepo) FindByID(id uint64) (*domain.MessageTree, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageTree), args.Error(1)
}

func (m *mockTreeRepo) FindByRootID(rootID uint64) (*domain.MessageTree, error) {
	args := m.Called(rootID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageTree), args.Error(1)
}

func (m *mockTreeRepo) CreateWithRoot(tree *domain.MessageTree, root *domain.MessageItem, history *domain.HistoryItem) error {
	return m.Called(tree, root, history).Error(0)
}

func (m *mockTreeRepo) UpdatePriority(treeID uint64, priority domain.Priority) error {
	return m.Called(treeID, priority).Error(0)
}

func (m *mockTreeRepo) SplitBranch(comment *domain.MessageItem, newTree *domain.MessageTree) error {
	return m.Called(comment, newTree).Error(0)
}

func (m *mockTreeRepo) DeleteTree(treeID uint64) error {
	return m.Called(treeID).Error(0)
}

// --- Mock MessageRepository ---

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) FindByID(id uint64) (*domain.MessageItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageItem), args.Error(1)
}

func (m *mockMessageRepo) FindChildren(parentID uint64) ([]*domain.MessageItem, error) {
	args := m.Called(parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MessageItem), args.Error(1)
}

func (m *mockMessageRepo) FindByTree(treeID uint64) ([]*domain.MessageItem, error) {
	args := m.Called(treeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MessageItem), args.Error(1)
}

func (m *mockMessageRepo) HasChildren(id uint64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockMessageRepo) CreateWithHistory(msg *domain.MessageItem, history *domain.HistoryItem) error {
	return m.Called(msg, history).Error(0)
}

func (m *mockMessageRepo) DeleteWithDependents(id uint64) error {
	return m.Called(id).Error(0)
}

// --- Mock RatingRepository ---

type mockRatingRepo struct {
	mock.Mock
}

func (m *mockRatingRepo) Upsert(rating *domain.Rating) error {
	return m.Called(rating).Error(0)
}

func (m *mockRatingRepo) Remove(messageID, userID uint64) error {
	return m.Called(messageID, userID).Error(0)
}

func (m *mockRatingRepo) Find(messageID, userID uint64) (*domain.Rating, error) {
	args := m.Called(messageID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *mockRatingRepo) Aggregate(messageID uint64) (*domain.RatingAggregate, error) {
	args := m.Called(messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingAggregate), args.Error(1)
}

// --- Mock StatsRepository ---

type mockStatsRepo struct {
	mock.Mock
}

func (m *mockStatsRepo) MessagesRatings(forumID uint64, offset, limit int) ([]*domain.MessageRatingEntry, int64, error) {
	args := m.Called(forumID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.MessageRatingEntry), args.Get(1).(int64), args.Error(2)
}

func (m *mockStatsRepo) UsersRatings(forumID uint64, offset, limit int) ([]*domain.UserRatingEntry, int64, error) {
	args := m.Called(forumID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.UserRatingEntry), args.Get(1).(int64), args.Error(2)
}

// --- Mock HistoryService ---

type mockHistorySvc struct {
	mock.Mock
}

func (m *mockHistorySvc) Append(messageID uint64, body string, state domain.PublicationState) error {
	return m.Called(messageID, body, state).Error(0)
}

func (m *mockHistorySvc) OverwritePending(messageID uint64, body string) error {
	return m.Called(messageID, body).Error(0)
}

func (m *mockHistorySvc) Publish(messageID uint64) error {
	return m.Called(messageID).Error(0)
}

func (m *mockHistorySvc) RevokeNewest(messageID uint64) (*domain.HistoryItem, error) {
	args := m.Called(messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryItem), args.Error(1)
}

func (m *mockHistorySvc) Current(messageID uint64) (*domain.HistoryItem, error) {
	args := m.Called(messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryItem), args.Error(1)
}

func (m *mockHistorySvc) Versions(messageID uint64) ([]*domain.HistoryResponse, error) {
	args := m.Called(messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HistoryResponse), args.Error(1)
}

func (m *mockHistorySvc) Count(messageID uint64) (int64, error) {
	args := m.Called(messageID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Shared fixtures ---

func uint64Ptr(v uint64) *uint64 { return &v }

func moderatedForum(ownerID uint64) *domain.Forum {
	return &domain.Forum{ID: 10, Name: "reviews", Type: domain.ForumModerated, OwnerID: ownerID}
}

func unmoderatedForum(ownerID uint64) *domain.Forum {
	return &domain.Forum{ID: 11, Name: "chat", Type: domain.ForumUnmoderated, OwnerID: ownerID}
}

func plainUser(id uint64) *domain.User {
	return &domain.User{ID: id, Username: "user", Role: domain.RoleUser}
}
