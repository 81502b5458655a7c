package repository

import (
	"testing"
	"time"

	"github.com/agoraboard/agora-backend/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Forum{},
		&domain.MessageTree{},
		&domain.MessageItem{},
		&domain.HistoryItem{},
		&domain.Rating{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func uint64Ptr(v uint64) *uint64 { return &v }

// seedMessage inserts a message node with one published version. The
// explicit created_at keeps ordering assertions deterministic.
func seedMessage(t *testing.T, db *gorm.DB, treeID, forumID, userID uint64, parentID *uint64, createdAt time.Time) *domain.MessageItem {
	t.Helper()
	msg := &domain.MessageItem{
		TreeID:    treeID,
		ForumID:   forumID,
		UserID:    userID,
		ParentID:  parentID,
		CreatedAt: createdAt,
	}
	if err := db.Create(msg).Error; err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}
	hist := &domain.HistoryItem{MessageID: msg.ID, Body: "body", State: domain.StatePublished}
	if err := db.Create(hist).Error; err != nil {
		t.Fatalf("failed to seed history: %v", err)
	}
	return msg
}

func seedUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	user := &domain.User{Username: username, Role: domain.RoleUser}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedRating(t *testing.T, db *gorm.DB, messageID, userID uint64, value int) {
	t.Helper()
	if err := db.Create(&domain.Rating{MessageID: messageID, UserID: userID, Value: value}).Error; err != nil {
		t.Fatalf("failed to seed rating: %v", err)
	}
}
