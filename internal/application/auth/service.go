package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/safespace-api/internal/domain"
	"github.com/safespace-api/internal/infrastructure/smtp"
	"github.com/safespace-api/internal/pkg/id"
	"github.com/safespace-api/internal/pkg/otp"
	"golang.org/x/crypto/bcrypt"
)

// Service owns the OTP verification workflow: registration, login gating,
// code validation, and the forgot/reset password flow.
type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) error
	Login(ctx context.Context, req domain.LoginRequest) (*domain.User, error)
	VerifyOTP(ctx context.Context, email, submitted string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
}

type userStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetOTP(ctx context.Context, email, code string, expiresAt time.Time) error
	MarkVerified(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

type service struct {
	users  userStore
	mailer smtp.Mailer
	otpTTL time.Duration
	now    func() time.Time
}

type ServiceDeps struct {
	UserRepo userStore
	Mailer   smtp.Mailer
	OTPTTL   time.Duration
}

func NewService(deps ServiceDeps) Service {
	return &service{
		users:  deps.UserRepo,
		mailer: deps.Mailer,
		otpTTL: deps.OTPTTL,
		now:    time.Now,
	}
}

// Register creates an unverified account with an outstanding OTP and mails
// the code. If the email send fails the account and code stay committed —
// there is no rollback or retry; the caller sees ErrDeliveryFailed and the
// user can request a fresh code via the forgot-password flow.
func (s *service) Register(ctx context.Context, req domain.RegisterRequest) error {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return fmt.Errorf("email already registered: %w", domain.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	code, err := otp.New()
	if err != nil {
		return err
	}
	now := s.now().UTC()
	expiresAt := now.Add(s.otpTTL)

	u := &domain.User{
		UserID:       id.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		OTP:          &code,
		OTPExpiredAt: &expiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// The unique index on email catches the writer that loses a racing
	// duplicate registration; the pre-check above only gives the common case
	// a friendly answer without burning a code.
	if err := s.users.Create(ctx, u); err != nil {
		return err
	}

	if err := s.mailer.SendEmail(u.Email, "Your OTP for Registration", "Your OTP is: "+code); err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrDeliveryFailed)
	}
	return nil
}

// Login checks the password before the verification gate, matching the
// observed order: unknown email, then bad password, then unverified account.
func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid password: %w", domain.ErrUnauthorized)
	}
	if !u.IsVerified {
		return nil, fmt.Errorf("account not verified: %w", domain.ErrForbidden)
	}
	return u, nil
}

// VerifyOTP validates a submitted code: account exists, code matches, code
// still valid. A code submitted at exactly the expiration instant is
// accepted; one moment later it is not. On success the account is marked
// verified and the code is cleared in the same update (single use).
func (s *service) VerifyOTP(ctx context.Context, email, submitted string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u.OTP == nil || *u.OTP != submitted {
		return fmt.Errorf("invalid OTP: %w", domain.ErrBadRequest)
	}
	if u.OTPExpiredAt == nil || s.now().After(*u.OTPExpiredAt) {
		return fmt.Errorf("OTP expired: %w", domain.ErrBadRequest)
	}
	return s.users.MarkVerified(ctx, email)
}

// ForgotPassword issues a fresh OTP for an existing account, overwriting any
// outstanding code. The same VerifyOTP endpoint validates it.
func (s *service) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	code, err := otp.New()
	if err != nil {
		return err
	}
	if err := s.users.SetOTP(ctx, u.Email, code, s.now().UTC().Add(s.otpTTL)); err != nil {
		return err
	}
	if err := s.mailer.SendEmail(u.Email, "Your OTP for Password Reset", "Your OTP is: "+code); err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrDeliveryFailed)
	}
	return nil
}

// ResetPassword overwrites the password hash after the client has passed
// VerifyOTP for the same email. The two requests are sequential, not atomic:
// nothing re-checks the OTP here, a known gap carried over from the design.
func (s *service) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return fmt.Errorf("passwords do not match: %w", domain.ErrBadRequest)
	}
	if len(req.NewPassword) < 6 {
		return fmt.Errorf("password must be at least 6 characters long: %w", domain.ErrBadRequest)
	}
	if _, err := s.users.GetByEmail(ctx, req.Email); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, req.Email, string(hash))
}
