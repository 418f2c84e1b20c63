package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking
// infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")

	// ErrDeliveryFailed marks an email send failure that happened after the
	// OTP was already committed to storage. Callers see it distinctly from
	// persistence errors; there is no rollback or retry.
	ErrDeliveryFailed = errors.New("delivery failed")
)
