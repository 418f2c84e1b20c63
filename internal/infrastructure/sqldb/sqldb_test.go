package sqldb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/safespace-api/internal/config"
	"github.com/safespace-api/internal/domain"
	"github.com/safespace-api/internal/pkg/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTest(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(&config.Config{DBDriver: "sqlite", DBDSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		UserID:       id.New(),
		Email:        email,
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, NewUserRepo(db).Create(context.Background(), u))
	return u
}

func TestUserRepo_DuplicateEmailIsConflict(t *testing.T) {
	db := openTest(t)
	repo := NewUserRepo(db)
	seedUser(t, db, "a@x.com")

	err := repo.Create(context.Background(), &domain.User{
		UserID: id.New(), Email: "a@x.com", PasswordHash: "y",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestUserRepo_MarkVerifiedClearsOTP(t *testing.T) {
	db := openTest(t)
	repo := NewUserRepo(db)
	u := seedUser(t, db, "a@x.com")

	require.NoError(t, repo.SetOTP(context.Background(), u.Email, "123456", time.Now().Add(3*time.Minute)))
	got, err := repo.GetByEmail(context.Background(), u.Email)
	require.NoError(t, err)
	require.NotNil(t, got.OTP)
	assert.Equal(t, "123456", *got.OTP)

	require.NoError(t, repo.MarkVerified(context.Background(), u.Email))
	got, err = repo.GetByEmail(context.Background(), u.Email)
	require.NoError(t, err)
	assert.True(t, got.IsVerified)
	assert.Nil(t, got.OTP)
	assert.Nil(t, got.OTPExpiredAt)
}

func TestUserRepo_UpdateUnknownEmailIsNotFound(t *testing.T) {
	db := openTest(t)
	err := NewUserRepo(db).UpdatePassword(context.Background(), "ghost@x.com", "h")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestPostRepo_ListWithAuthorsNewestFirst(t *testing.T) {
	db := openTest(t)
	posts := NewPostRepo(db)
	u := seedUser(t, db, "author@x.com")

	base := time.Now().UTC().Truncate(time.Second)
	for i, content := range []string{"first", "second", "third"} {
		require.NoError(t, posts.Create(context.Background(), &domain.Post{
			PostID:    id.New(),
			UserID:    u.UserID,
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	rows, err := posts.ListWithAuthors(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "third", rows[0].Content)
	assert.Equal(t, "second", rows[1].Content)
	assert.Equal(t, "first", rows[2].Content)
	assert.Equal(t, "author@x.com", rows[0].Email)
}

func TestCommentRepo_CreateIncrementsCountExactlyOnce(t *testing.T) {
	db := openTest(t)
	u := seedUser(t, db, "a@x.com")
	posts := NewPostRepo(db)
	comments := NewCommentRepo(db)

	p := &domain.Post{PostID: id.New(), UserID: u.UserID, Content: "hello", CreatedAt: time.Now().UTC()}
	require.NoError(t, posts.Create(context.Background(), p))

	c := &domain.Comment{CommentID: id.New(), PostID: p.PostID, Content: "hi", CreatedAt: time.Now().UTC()}
	require.NoError(t, comments.Create(context.Background(), c))

	got, err := posts.Get(context.Background(), p.PostID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CommentCount)

	list, err := comments.ListByPost(context.Background(), p.PostID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "hi", list[0].Content)
}

func TestCommentRepo_CreateOnMissingPostRollsBack(t *testing.T) {
	db := openTest(t)
	comments := NewCommentRepo(db)

	err := comments.Create(context.Background(), &domain.Comment{
		CommentID: id.New(), PostID: "nope", Content: "hi", CreatedAt: time.Now().UTC(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	var count int64
	require.NoError(t, db.Model(&domain.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}
