package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/safespace-api/internal/domain"
	"github.com/safespace-api/internal/pkg/id"
)

// Service owns post creation and the feed. Authors only need to exist, not
// to be verified: the app gates verification at login, not per post.
type Service interface {
	Create(ctx context.Context, req domain.CreatePostRequest) (*domain.Post, error)
	List(ctx context.Context) ([]domain.PostWithAuthor, error)
}

type postStore interface {
	Create(ctx context.Context, p *domain.Post) error
	ListWithAuthors(ctx context.Context) ([]domain.PostWithAuthor, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type service struct {
	posts postStore
	users userStore
}

func NewService(posts postStore, users userStore) Service {
	return &service{posts: posts, users: users}
}

func (s *service) Create(ctx context.Context, req domain.CreatePostRequest) (*domain.Post, error) {
	if req.UserID == "" || req.Content == "" {
		return nil, fmt.Errorf("user ID and content are required: %w", domain.ErrBadRequest)
	}
	if _, err := s.users.Get(ctx, req.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("unknown author: %w", domain.ErrBadRequest)
		}
		return nil, err
	}
	p := &domain.Post{
		PostID:    id.New(),
		UserID:    req.UserID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]domain.PostWithAuthor, error) {
	return s.posts.ListWithAuthors(ctx)
}
