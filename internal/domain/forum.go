package domain

import "time"

// ForumType distinguishes moderator-gated forums from freely published ones
type ForumType string

const (
	ForumModerated   ForumType = "moderated"
	ForumUnmoderated ForumType = "unmoderated"
)

// Forum represents a discussion forum. The conversation core only reads
// forums; creation and administration are thin CRUD wrappers.
type Forum struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Type      ForumType `gorm:"column:type;type:varchar(20);default:'unmoderated'" json:"type"`
	OwnerID   uint64    `gorm:"column:owner_id;index" json:"owner_id"`
	ReadOnly  bool      `gorm:"column:read_only;default:false" json:"read_only"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Forum) TableName() string { return "forums" }

// IsModerated reports whether new content requires owner approval
func (f *Forum) IsModerated() bool {
	return f.Type == ForumModerated
}

// CreateForumRequest is the request DTO for forum creation
type CreateForumRequest struct {
	Name     string    `json:"name" binding:"required,max=100"`
	Type     ForumType `json:"type" binding:"required,oneof=moderated unmoderated"`
	ReadOnly bool      `json:"read_only"`
}

// UpdateForumRequest is the request DTO for forum updates
type UpdateForumRequest struct {
	Name     *string `json:"name,omitempty"`
	ReadOnly *bool   `json:"read_only,omitempty"`
}
