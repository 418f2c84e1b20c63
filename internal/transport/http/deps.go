package http

import (
	"context"
	"time"

	"github.com/safespace-api/internal/domain"
	"github.com/safespace-api/internal/infrastructure/smtp"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	SetOTP(ctx context.Context, email, code string, expiresAt time.Time) error
	MarkVerified(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// PostRepository is the minimal interface the router requires from a post store.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) error
	ListWithAuthors(ctx context.Context) ([]domain.PostWithAuthor, error)
}

// CommentRepository is the minimal interface the router requires from a comment store.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByPost(ctx context.Context, postID string) ([]domain.Comment, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo    UserRepository
	PostRepo    PostRepository
	CommentRepo CommentRepository
	Mailer      smtp.Mailer
}
