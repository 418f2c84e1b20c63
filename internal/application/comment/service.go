package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/safespace-api/internal/domain"
	"github.com/safespace-api/internal/pkg/id"
)

// Service owns comments. The store does the insert and the parent post's
// counter bump as one write, so existence of the post and the increment are
// settled in the same transaction.
type Service interface {
	Create(ctx context.Context, req domain.CreateCommentRequest) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]domain.Comment, error)
}

type commentStore interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByPost(ctx context.Context, postID string) ([]domain.Comment, error)
}

type service struct {
	comments commentStore
}

func NewService(comments commentStore) Service {
	return &service{comments: comments}
}

func (s *service) Create(ctx context.Context, req domain.CreateCommentRequest) (*domain.Comment, error) {
	if req.PostID == "" || req.Content == "" {
		return nil, fmt.Errorf("missing required fields: postId or comment: %w", domain.ErrBadRequest)
	}
	c := &domain.Comment{
		CommentID: id.New(),
		PostID:    req.PostID,
		UserID:    req.UserID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}
