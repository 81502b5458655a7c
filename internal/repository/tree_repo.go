package repository

import (
	"errors"

	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"gorm.io/gorm"
)

// TreeRepository stores threads. Tree creation, branch splitting and
// tree deletion are multi-entity mutations and run inside one
// transaction each; a failure partway through rolls the whole
// operation back.
type TreeRepository interface {
	FindByID(id uint64) (*domain.MessageTree, error)
	FindByRootID(rootID uint64) (*domain.MessageTree, error)
	CreateWithRoot(tree *domain.MessageTree, root *domain.MessageItem, history *domain.HistoryItem) error
	UpdatePriority(treeID uint64, priority domain.Priority) error
	SplitBranch(comment *domain.MessageItem, newTree *domain.MessageTree) error
	DeleteTree(treeID uint64) error
}

type treeRepository struct {
	db *gorm.DB
}

// NewTreeRepository creates a new TreeRepository
func NewTreeRepository(db *gorm.DB) TreeRepository {
	return &treeRepository{db: db}
}

func (r *treeRepository) FindByID(id uint64) (*domain.MessageTree, error) {
	var tree domain.MessageTree
	err := r.db.Where("id = ?", id).First(&tree).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tree, nil
}

func (r *treeRepository) FindByRootID(rootID uint64) (*domain.MessageTree, error) {
	var tree domain.MessageTree
	err := r.db.Where("root_id = ?", rootID).First(&tree).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tree, nil
}

// CreateWithRoot creates a tree and its root message atomically. The
// tree and the root reference each other, so the tree is created first
// and its root_id filled in once the message id exists.
func (r *treeRepository) CreateWithRoot(tree *domain.MessageTree, root *domain.MessageItem, history *domain.HistoryItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tree).Error; err != nil {
			return err
		}

		root.TreeID = tree.ID
		root.ParentID = nil
		if err := tx.Create(root).Error; err != nil {
			return err
		}

		history.MessageID = root.ID
		if err := tx.Create(history).Error; err != nil {
			return err
		}

		tree.RootID = root.ID
		return tx.Model(&domain.MessageTree{}).
			Where("id = ?", tree.ID).
			Update("root_id", root.ID).Error
	})
}

func (r *treeRepository) UpdatePriority(treeID uint64, priority domain.Priority) error {
	result := r.db.Model(&domain.MessageTree{}).
		Where("id = ?", treeID).
		Update("priority", priority)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrMessageNotFound
	}
	return nil
}

// SplitBranch promotes a comment into the root of newTree. The
// comment's subtree moves with it unchanged; only the split point's
// parent link becomes nil, which also drops it from the old parent's
// child listing.
func (r *treeRepository) SplitBranch(comment *domain.MessageItem, newTree *domain.MessageTree) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(newTree).Error; err != nil {
			return err
		}

		subtree, err := subtreeIDs(tx, comment.ID)
		if err != nil {
			return err
		}

		if err := tx.Model(&domain.MessageItem{}).
			Where("id IN ?", subtree).
			Update("tree_id", newTree.ID).Error; err != nil {
			return err
		}

		if err := tx.Model(&domain.MessageItem{}).
			Where("id = ?", comment.ID).
			Update("parent_id", nil).Error; err != nil {
			return err
		}

		newTree.RootID = comment.ID
		return tx.Model(&domain.MessageTree{}).
			Where("id = ?", newTree.ID).
			Update("root_id", comment.ID).Error
	})
}

// DeleteTree removes a tree with every descendant message, all their
// versions and all their ratings, all-or-nothing.
func (r *treeRepository) DeleteTree(treeID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var ids []uint64
		if err := tx.Model(&domain.MessageItem{}).
			Where("tree_id = ?", treeID).
			Pluck("id", &ids).Error; err != nil {
			return err
		}

		if len(ids) > 0 {
			if err := tx.Where("message_id IN ?", ids).Delete(&domain.Rating{}).Error; err != nil {
				return err
			}
			if err := tx.Where("message_id IN ?", ids).Delete(&domain.HistoryItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", ids).Delete(&domain.MessageItem{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&domain.MessageTree{}, treeID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return common.ErrMessageNotFound
		}
		return nil
	})
}

// subtreeIDs walks parent links breadth-first and returns the ids of
// rootID and every descendant.
func subtreeIDs(tx *gorm.DB, rootID uint64) ([]uint64, error) {
	ids := []uint64{rootID}
	frontier := []uint64{rootID}

	for len(frontier) > 0 {
		var next []uint64
		if err := tx.Model(&domain.MessageItem{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &next).Error; err != nil {
			return nil, err
		}
		ids = append(ids, next...)
		frontier = next
	}
	return ids, nil
}
