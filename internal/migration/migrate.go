package migration

import (
	"github.com/agoraboard/agora-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for all tables
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Forum{},
		&domain.MessageTree{},
		&domain.MessageItem{},
		&domain.HistoryItem{},
		&domain.Rating{},
	)
}
