package sqldb

import (
	"context"
	"fmt"

	"github.com/safespace-api/internal/domain"
	"gorm.io/gorm"
)

// CommentRepo provides typed SQL operations for the comments table.
type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

// Create inserts the comment and bumps the parent post's comment_count in a
// single transaction, so the counter can never drift from the rows.
// The increment runs first: zero rows affected means the post does not exist
// and the whole write rolls back with ErrNotFound.
func (r *CommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Post{}).
			Where("post_id = ?", c.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1))
		if res.Error != nil {
			return fmt.Errorf("increment comment count: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("post not found: %w", domain.ErrNotFound)
		}
		if err := tx.Create(c).Error; err != nil {
			return fmt.Errorf("insert comment: %w", err)
		}
		return nil
	})
}

func (r *CommentRepo) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
