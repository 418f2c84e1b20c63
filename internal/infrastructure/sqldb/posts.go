package sqldb

import (
	"context"
	"errors"
	"fmt"

	"github.com/safespace-api/internal/domain"
	"gorm.io/gorm"
)

// PostRepo provides typed SQL operations for the posts table.
type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db: db}
}

func (r *PostRepo) Create(ctx context.Context, p *domain.Post) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *PostRepo) Get(ctx context.Context, postID string) (*domain.Post, error) {
	var p domain.Post
	err := r.db.WithContext(ctx).Where("post_id = ?", postID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post not found: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

// ListWithAuthors returns every post joined with the author's email,
// newest first.
func (r *PostRepo) ListWithAuthors(ctx context.Context) ([]domain.PostWithAuthor, error) {
	var rows []domain.PostWithAuthor
	err := r.db.WithContext(ctx).
		Table("posts").
		Select("posts.post_id, posts.user_id, posts.post_content, posts.comment_count, posts.post_created_at, users.email").
		Joins("INNER JOIN users ON posts.user_id = users.id").
		Order("posts.post_created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return rows, nil
}
