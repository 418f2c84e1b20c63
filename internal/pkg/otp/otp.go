package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Digits is the fixed length of generated codes.
const Digits = 6

// New generates a 6-digit one-time code in [100000, 999999].
//
// Known weakness, kept on purpose: a 6-digit space is guessable; the short
// validity window on the stored code is the only other mitigation.
func New() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
