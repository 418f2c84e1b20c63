package sqldb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/safespace-api/internal/domain"
	"gorm.io/gorm"
)

// UserRepo provides typed SQL operations for the users table.
type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user. The unique index on email is the real duplicate
// guard: a racing second writer loses here, not at the application pre-check.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("email already registered: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Get(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

// SetOTP stores a fresh code and expiry on the account, overwriting any
// outstanding one.
func (r *UserRepo) SetOTP(ctx context.Context, email, code string, expiresAt time.Time) error {
	return r.updateByEmail(ctx, email, map[string]interface{}{
		"otp":            code,
		"otp_expired_at": expiresAt,
	})
}

// MarkVerified flips the account to verified and clears the outstanding OTP
// in the same update, so a consumed code can never validate twice.
func (r *UserRepo) MarkVerified(ctx context.Context, email string) error {
	return r.updateByEmail(ctx, email, map[string]interface{}{
		"is_verified":    true,
		"otp":            nil,
		"otp_expired_at": nil,
	})
}

func (r *UserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	return r.updateByEmail(ctx, email, map[string]interface{}{
		"password": passwordHash,
	})
}

func (r *UserRepo) updateByEmail(ctx context.Context, email string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user not found: %w", domain.ErrNotFound)
	}
	return nil
}
