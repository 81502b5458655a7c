package domain

import "time"

// Priority orders threads within a forum
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// ValidPriority reports whether p is a known priority value
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}

// PublicationState is the moderation state of one content version
type PublicationState string

const (
	StatePublished   PublicationState = "published"
	StateUnpublished PublicationState = "unpublished"
)

// MessageTree is a thread: one root message plus its comment subtree.
// RootID points at the tree's root MessageItem; exactly one tree owns
// exactly one root.
type MessageTree struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ForumID   uint64    `gorm:"column:forum_id;index" json:"forum_id"`
	Subject   string    `gorm:"column:subject;type:varchar(255)" json:"subject"`
	Priority  Priority  `gorm:"column:priority;type:varchar(10);default:'normal'" json:"priority"`
	Tags      []string  `gorm:"column:tags;serializer:json" json:"tags"`
	RootID    uint64    `gorm:"column:root_id;index" json:"root_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MessageTree) TableName() string { return "message_trees" }

// MessageItem is any node in a thread. A nil ParentID marks the tree's
// root; everything else is a comment. Parent/child links are ids, not
// object references, so the graph stays an arena of records.
type MessageItem struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TreeID    uint64    `gorm:"column:tree_id;index" json:"tree_id"`
	ForumID   uint64    `gorm:"column:forum_id;index" json:"forum_id"`
	UserID    uint64    `gorm:"column:user_id;index" json:"user_id"`
	ParentID  *uint64   `gorm:"column:parent_id;index" json:"parent_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MessageItem) TableName() string { return "message_items" }

// IsRoot reports whether the message is its tree's root
func (m *MessageItem) IsRoot() bool {
	return m.ParentID == nil
}

// HistoryItem is one content version of a message. Versions are read
// newest-first; a message always has at least one version and at most
// one unpublished version.
type HistoryItem struct {
	ID        uint64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MessageID uint64           `gorm:"column:message_id;index" json:"message_id"`
	Body      string           `gorm:"column:body;type:mediumtext" json:"body"`
	State     PublicationState `gorm:"column:state;type:varchar(20)" json:"state"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (HistoryItem) TableName() string { return "history_items" }

// ---- Request DTOs ----

// CreateThreadRequest creates a thread with its root message
type CreateThreadRequest struct {
	Subject  string   `json:"subject" binding:"required,max=255"`
	Body     string   `json:"body" binding:"required"`
	Priority Priority `json:"priority"`
	Tags     []string `json:"tags"`
}

// CreateCommentRequest adds a comment under an existing message
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// EditMessageRequest replaces a message's content
type EditMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// DecisionRequest is a moderation verdict on a pending version
type DecisionRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// SplitBranchRequest promotes a comment into a new thread
type SplitBranchRequest struct {
	Subject  string   `json:"subject" binding:"required,max=255"`
	Priority Priority `json:"priority"`
	Tags     []string `json:"tags"`
}

// ChangePriorityRequest updates a thread's priority
type ChangePriorityRequest struct {
	Priority Priority `json:"priority" binding:"required"`
}

// ---- Response DTOs ----

// MessageResponse is the API view of one message node
type MessageResponse struct {
	ID        uint64           `json:"id"`
	TreeID    uint64           `json:"tree_id"`
	ParentID  *uint64          `json:"parent_id,omitempty"`
	UserID    uint64           `json:"user_id"`
	Body      string           `json:"body"`
	State     PublicationState `json:"state"`
	Rating    RatingAggregate  `json:"rating"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	// Children are ordered by creation time, newest first
	Children []*MessageResponse `json:"children,omitempty"`
}

// HistoryResponse is the API view of one content version
type HistoryResponse struct {
	ID        uint64           `json:"id"`
	Body      string           `json:"body"`
	State     PublicationState `json:"state"`
	CreatedAt time.Time        `json:"created_at"`
}

// ThreadResponse is the API view of a whole thread
type ThreadResponse struct {
	ID        uint64           `json:"id"`
	ForumID   uint64           `json:"forum_id"`
	Subject   string           `json:"subject"`
	Priority  Priority         `json:"priority"`
	Tags      []string         `json:"tags"`
	Root      *MessageResponse `json:"root"`
	CreatedAt time.Time        `json:"created_at"`
}
