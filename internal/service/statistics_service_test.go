package service

import (
	"testing"

	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newStatsFixture() (*mockStatsRepo, *mockForumRepo, StatisticsService) {
	statsRepo := new(mockStatsRepo)
	forumRepo := new(mockForumRepo)
	svc := NewStatisticsService(statsRepo, forumRepo, nil)
	return statsRepo, forumRepo, svc
}

func TestMessagesRatings_WholeServer(t *testing.T) {
	statsRepo, forumRepo, svc := newStatsFixture()

	rows := []*domain.MessageRatingEntry{
		{MessageID: 1, IsRoot: true, Rating: 4.5, RatedCount: 2},
		{MessageID: 2, IsRoot: false, Rating: 3.0, RatedCount: 1},
	}
	statsRepo.On("MessagesRatings", uint64(0), 0, 20).Return(rows, int64(2), nil)

	result, meta, err := svc.MessagesRatings(0, 0, 20)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, int64(2), meta.Total)
	// forum id 0 never hits the forum registry
	forumRepo.AssertNotCalled(t, "FindByID")
}

func TestMessagesRatings_UnknownForum(t *testing.T) {
	statsRepo, forumRepo, svc := newStatsFixture()

	forumRepo.On("FindByID", uint64(77)).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.MessagesRatings(77, 0, 20)
	assert.Error(t, err)
	statsRepo.AssertNotCalled(t, "MessagesRatings")
}

func TestMessagesRatings_PageClamping(t *testing.T) {
	statsRepo, _, svc := newStatsFixture()

	// negative offset → 0, oversized limit → default
	statsRepo.On("MessagesRatings", uint64(0), 0, 20).Return([]*domain.MessageRatingEntry{}, int64(0), nil)

	_, meta, err := svc.MessagesRatings(0, -5, 500)
	assert.NoError(t, err)
	assert.Equal(t, 0, meta.Offset)
	assert.Equal(t, 20, meta.Limit)
	statsRepo.AssertExpectations(t)
}

func TestUsersRatings_ScopedToForum(t *testing.T) {
	statsRepo, forumRepo, svc := newStatsFixture()

	forum := unmoderatedForum(1)
	rows := []*domain.UserRatingEntry{
		{UserID: 2, Username: "alice", Rating: 4.0, RatedCount: 3},
	}
	forumRepo.On("FindByID", forum.ID).Return(forum, nil)
	statsRepo.On("UsersRatings", forum.ID, 10, 5).Return(rows, int64(21), nil)

	result, meta, err := svc.UsersRatings(forum.ID, 10, 5)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "alice", result[0].Username)
	assert.Equal(t, forum.ID, meta.ForumID)
	assert.Equal(t, int64(21), meta.Total)
}
