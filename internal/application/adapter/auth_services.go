// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// PasswordService defines password hashing and verification for the reset guard.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	VerifyPassword(hashedPassword, password string) error
}

// TokenService defines the bearer token contract guarding destructive endpoints.
type TokenService interface {
	// GenerateAdminToken mints a short-lived admin token.
	GenerateAdminToken(ctx context.Context) (token string, expiresAt time.Time, err error)

	// ValidateAdminToken validates an admin token.
	ValidateAdminToken(ctx context.Context, token string) error
}
