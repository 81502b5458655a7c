package service

import (
	"context"

	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/agoraboard/agora-backend/internal/repository"
	"github.com/agoraboard/agora-backend/pkg/cache"
)

// TreeService owns the message/thread lifecycle: thread creation,
// commenting, branch splitting, priority changes and cascading
// deletion. Children are always exposed newest first.
type TreeService interface {
	CreateRoot(forumID, actorID uint64, req *domain.CreateThreadRequest) (*domain.ThreadResponse, error)
	GetThread(treeID uint64) (*domain.ThreadResponse, error)
	AddComment(parentID, actorID uint64, req *domain.CreateCommentRequest) (*domain.MessageResponse, error)
	SplitBranch(commentID, actorID uint64, req *domain.SplitBranchRequest) (*domain.ThreadResponse, error)
	ChangePriority(treeID uint64, priority domain.Priority, actorID uint64) error
	Delete(messageID, actorID uint64) error
}

type treeService struct {
	treeRepo    repository.TreeRepository
	messageRepo repository.MessageRepository
	forumRepo   repository.ForumRepository
	userRepo    repository.UserRepository
	ratingRepo  repository.RatingRepository
	history     HistoryService
	moderation  ModerationService
	cacheSvc    cache.Service
	maxBanCount int
}

// NewTreeService creates a new TreeService
func NewTreeService(
	treeRepo repository.TreeRepository,
	messageRepo repository.MessageRepository,
	forumRepo repository.ForumRepository,
	userRepo repository.UserRepository,
	ratingRepo repository.RatingRepository,
	history HistoryService,
	moderation ModerationService,
	cacheSvc cache.Service,
	maxBanCount int,
) TreeService {
	return &treeService{
		treeRepo:    treeRepo,
		messageRepo: messageRepo,
		forumRepo:   forumRepo,
		userRepo:    userRepo,
		ratingRepo:  ratingRepo,
		history:     history,
		moderation:  moderation,
		cacheSvc:    cacheSvc,
		maxBanCount: maxBanCount,
	}
}

// CreateRoot creates a thread together with its root message
func (s *treeService) CreateRoot(forumID, actorID uint64, req *domain.CreateThreadRequest) (*domain.ThreadResponse, error) {
	forum, err := s.forumRepo.FindByID(forumID)
	if err != nil {
		return nil, err
	}
	if forum.ReadOnly {
		return nil, common.ErrForumReadOnly
	}

	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return nil, err
	}
	if err := checkBan(actor, s.maxBanCount); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}
	if !domain.ValidPriority(priority) {
		return nil, common.ErrInvalidInput
	}

	tree := &domain.MessageTree{
		ForumID:  forumID,
		Subject:  req.Subject,
		Priority: priority,
		Tags:     req.Tags,
	}
	root := &domain.MessageItem{
		ForumID: forumID,
		UserID:  actorID,
	}
	history := &domain.HistoryItem{
		Body:  req.Body,
		State: s.moderation.DecideInitialState(forum, actorID),
	}

	if err := s.treeRepo.CreateWithRoot(tree, root, history); err != nil {
		return nil, err
	}
	s.invalidateStats()

	return &domain.ThreadResponse{
		ID:       tree.ID,
		ForumID:  tree.ForumID,
		Subject:  tree.Subject,
		Priority: tree.Priority,
		Tags:     tree.Tags,
		Root: &domain.MessageResponse{
			ID:        root.ID,
			TreeID:    tree.ID,
			UserID:    actorID,
			Body:      history.Body,
			State:     history.State,
			CreatedAt: root.CreatedAt,
			UpdatedAt: root.UpdatedAt,
		},
		CreatedAt: tree.CreatedAt,
	}, nil
}

// GetThread returns the whole thread with children newest first
func (s *treeService) GetThread(treeID uint64) (*domain.ThreadResponse, error) {
	tree, err := s.treeRepo.FindByID(treeID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByTree(treeID)
	if err != nil {
		return nil, err
	}

	root, err := s.assembleTree(tree.RootID, messages)
	if err != nil {
		return nil, err
	}

	return &domain.ThreadResponse{
		ID:        tree.ID,
		ForumID:   tree.ForumID,
		Subject:   tree.Subject,
		Priority:  tree.Priority,
		Tags:      tree.Tags,
		Root:      root,
		CreatedAt: tree.CreatedAt,
	}, nil
}

// AddComment adds a comment under a published parent message. The new
// comment inherits the parent's tree; its state is decided against the
// tree's forum owner, not the parent author.
func (s *treeService) AddComment(parentID, actorID uint64, req *domain.CreateCommentRequest) (*domain.MessageResponse, error) {
	parent, err := s.messageRepo.FindByID(parentID)
	if err != nil {
		return nil, err
	}

	parentCurrent, err := s.history.Current(parentID)
	if err != nil {
		return nil, err
	}
	if parentCurrent.State != domain.StatePublished {
		return nil, common.ErrMessageNotPublished
	}

	forum, err := s.forumRepo.FindByID(parent.ForumID)
	if err != nil {
		return nil, err
	}
	if forum.ReadOnly {
		return nil, common.ErrForumReadOnly
	}

	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return nil, err
	}
	if err := checkBan(actor, s.maxBanCount); err != nil {
		return nil, err
	}

	comment := &domain.MessageItem{
		TreeID:   parent.TreeID,
		ForumID:  parent.ForumID,
		UserID:   actorID,
		ParentID: &parent.ID,
	}
	history := &domain.HistoryItem{
		Body:  req.Body,
		State: s.moderation.DecideInitialState(forum, actorID),
	}

	if err := s.messageRepo.CreateWithHistory(comment, history); err != nil {
		return nil, err
	}
	s.invalidateStats()

	return &domain.MessageResponse{
		ID:        comment.ID,
		TreeID:    comment.TreeID,
		ParentID:  comment.ParentID,
		UserID:    actorID,
		Body:      history.Body,
		State:     history.State,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}, nil
}

// SplitBranch promotes a comment and its subtree into a new thread
func (s *treeService) SplitBranch(commentID, actorID uint64, req *domain.SplitBranchRequest) (*domain.ThreadResponse, error) {
	comment, err := s.messageRepo.FindByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment.IsRoot() {
		// A root already heads its own thread
		return nil, common.ErrInvalidInput
	}

	forum, err := s.forumRepo.FindByID(comment.ForumID)
	if err != nil {
		return nil, err
	}
	if forum.OwnerID != actorID {
		return nil, common.ErrForbiddenOperation
	}
	if forum.ReadOnly {
		return nil, common.ErrForumReadOnly
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}
	if !domain.ValidPriority(priority) {
		return nil, common.ErrInvalidInput
	}

	newTree := &domain.MessageTree{
		ForumID:  forum.ID,
		Subject:  req.Subject,
		Priority: priority,
		Tags:     req.Tags,
	}
	if err := s.treeRepo.SplitBranch(comment, newTree); err != nil {
		return nil, err
	}

	return s.GetThread(newTree.ID)
}

// ChangePriority updates a thread's priority; only the root-message
// owner may do this.
func (s *treeService) ChangePriority(treeID uint64, priority domain.Priority, actorID uint64) error {
	if !domain.ValidPriority(priority) {
		return common.ErrInvalidInput
	}

	tree, err := s.treeRepo.FindByID(treeID)
	if err != nil {
		return err
	}

	root, err := s.messageRepo.FindByID(tree.RootID)
	if err != nil {
		return err
	}
	if root.UserID != actorID {
		return common.ErrForbiddenOperation
	}

	return s.treeRepo.UpdatePriority(treeID, priority)
}

// Delete removes a message. Roots take their whole tree with them;
// a comment with children is refused; a childless comment goes alone,
// history and ratings included either way.
func (s *treeService) Delete(messageID, actorID uint64) error {
	msg, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		return err
	}

	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return err
	}
	if err := checkBan(actor, s.maxBanCount); err != nil {
		return err
	}
	if msg.UserID != actorID && !actor.IsSuperuser() {
		return common.ErrForbiddenOperation
	}

	if msg.IsRoot() {
		if err := s.treeRepo.DeleteTree(msg.TreeID); err != nil {
			return err
		}
		s.invalidateStats()
		return nil
	}

	hasChildren, err := s.messageRepo.HasChildren(messageID)
	if err != nil {
		return err
	}
	if hasChildren {
		return common.ErrMessageHasComments
	}

	if err := s.messageRepo.DeleteWithDependents(messageID); err != nil {
		return err
	}
	s.invalidateStats()
	return nil
}

// assembleTree builds the nested response from the flat node list.
// The list is already ordered newest first, so appending children in
// list order preserves the exposed ordering.
func (s *treeService) assembleTree(rootID uint64, messages []*domain.MessageItem) (*domain.MessageResponse, error) {
	nodes := make(map[uint64]*domain.MessageResponse, len(messages))
	for _, msg := range messages {
		current, err := s.history.Current(msg.ID)
		if err != nil {
			return nil, err
		}
		agg, err := s.ratingRepo.Aggregate(msg.ID)
		if err != nil {
			return nil, err
		}
		nodes[msg.ID] = &domain.MessageResponse{
			ID:        msg.ID,
			TreeID:    msg.TreeID,
			ParentID:  msg.ParentID,
			UserID:    msg.UserID,
			Body:      current.Body,
			State:     current.State,
			Rating:    *agg,
			CreatedAt: msg.CreatedAt,
			UpdatedAt: msg.UpdatedAt,
		}
	}

	for _, msg := range messages {
		if msg.ParentID == nil {
			continue
		}
		if parent, ok := nodes[*msg.ParentID]; ok {
			parent.Children = append(parent.Children, nodes[msg.ID])
		}
	}

	root, ok := nodes[rootID]
	if !ok {
		return nil, common.ErrMessageNotFound
	}
	return root, nil
}

func (s *treeService) invalidateStats() {
	if s.cacheSvc == nil {
		return
	}
	_ = s.cacheSvc.InvalidateStats(context.Background())
}
