package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/safespace-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockAuthSvc struct{ mock.Mock }

func (m *mockAuthSvc) Register(ctx context.Context, req domain.RegisterRequest) error {
	return m.Called(ctx, req).Error(0)
}
func (m *mockAuthSvc) Login(ctx context.Context, req domain.LoginRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAuthSvc) VerifyOTP(ctx context.Context, email, submitted string) error {
	return m.Called(ctx, email, submitted).Error(0)
}
func (m *mockAuthSvc) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *mockAuthSvc) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

// --- helpers ---

func postJSON(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// --- Register ---

func TestRegister_OK(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("Register", mock.Anything, domain.RegisterRequest{Email: "a@x.com", Password: "pw123456"}).Return(nil)

	rec := postJSON(t, NewAuthHandler(svc).Register, map[string]string{
		"email": "a@x.com", "password": "pw123456",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "OTP sent successfully", body["message"])
}

func TestRegister_DuplicateEmailIs400(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("Register", mock.Anything, mock.Anything).Return(domain.ErrConflict)

	rec := postJSON(t, NewAuthHandler(svc).Register, map[string]string{
		"email": "a@x.com", "password": "pw123456",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["success"])
}

func TestRegister_DeliveryFailureIs500(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("Register", mock.Anything, mock.Anything).Return(domain.ErrDeliveryFailed)

	rec := postJSON(t, NewAuthHandler(svc).Register, map[string]string{
		"email": "a@x.com", "password": "pw123456",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRegister_InvalidEmailRejectedBeforeService(t *testing.T) {
	svc := &mockAuthSvc{}

	rec := postJSON(t, NewAuthHandler(svc).Register, map[string]string{
		"email": "not-an-email", "password": "pw123456",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegister_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	NewAuthHandler(&mockAuthSvc{}).Register(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// --- Login ---

func TestLogin_OKReturnsSafeUser(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("Login", mock.Anything, mock.Anything).Return(&domain.User{
		UserID: "u1", Email: "a@x.com", PasswordHash: "secret-hash",
	}, nil)

	rec := postJSON(t, NewAuthHandler(svc).Login, map[string]string{
		"email": "a@x.com", "password": "pw123456",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "u1", user["id"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestLogin_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown email", domain.ErrNotFound, http.StatusNotFound},
		{"bad password", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"unverified", domain.ErrForbidden, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockAuthSvc{}
			svc.On("Login", mock.Anything, mock.Anything).Return(nil, tc.err)

			rec := postJSON(t, NewAuthHandler(svc).Login, map[string]string{
				"email": "a@x.com", "password": "pw123456",
			})
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

// --- VerifyOTP ---

func TestVerifyOTP_OK(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, "a@x.com", "123456").Return(nil)

	rec := postJSON(t, NewAuthHandler(svc).VerifyOTP, map[string]string{
		"email": "a@x.com", "otp": "123456",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])
}

func TestVerifyOTP_InvalidOrExpiredIs400(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, "a@x.com", "123456").Return(domain.ErrBadRequest)

	rec := postJSON(t, NewAuthHandler(svc).VerifyOTP, map[string]string{
		"email": "a@x.com", "otp": "123456",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyOTP_NonNumericCodeRejectedBeforeService(t *testing.T) {
	svc := &mockAuthSvc{}

	rec := postJSON(t, NewAuthHandler(svc).VerifyOTP, map[string]string{
		"email": "a@x.com", "otp": "abc123",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "VerifyOTP", mock.Anything, mock.Anything, mock.Anything)
}

// --- ForgotPassword / ResetPassword ---

func TestForgotPassword_UnknownEmailIs404(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("ForgotPassword", mock.Anything, "x@x.com").Return(domain.ErrNotFound)

	rec := postJSON(t, NewAuthHandler(svc).ForgotPassword, map[string]string{"email": "x@x.com"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResetPassword_OK(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("ResetPassword", mock.Anything, domain.ResetPasswordRequest{
		Email: "a@x.com", NewPassword: "newpass1", ConfirmPassword: "newpass1",
	}).Return(nil)

	rec := postJSON(t, NewAuthHandler(svc).ResetPassword, map[string]string{
		"email": "a@x.com", "newPassword": "newpass1", "confirmPassword": "newpass1",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Password reset successfully", decodeBody(t, rec)["message"])
}

func TestResetPassword_MismatchIs400(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("ResetPassword", mock.Anything, mock.Anything).Return(domain.ErrBadRequest)

	rec := postJSON(t, NewAuthHandler(svc).ResetPassword, map[string]string{
		"email": "a@x.com", "newPassword": "abcdef", "confirmPassword": "abcdeg",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
