package domain

import "time"

// User is an account in the anonymous posting app. Accounts are created
// unverified; a successful registration-OTP check is the only transition to
// verified, and there is no transition back.
type User struct {
	UserID       string     `json:"id" gorm:"column:id;primaryKey"`
	Email        string     `json:"email" gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"column:password;not null"`
	OTP          *string    `json:"-" gorm:"column:otp"`
	OTPExpiredAt *time.Time `json:"-" gorm:"column:otp_expired_at"`
	IsVerified   bool       `json:"is_verified" gorm:"column:is_verified;default:false"`
	CreatedAt    time.Time  `json:"created" gorm:"column:created_at"`
	UpdatedAt    time.Time  `json:"updated" gorm:"column:updated_at"`
}

func (User) TableName() string { return "users" }

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}
