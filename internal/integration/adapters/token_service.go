// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ekajy/backend/internal/application/adapter"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

const adminSubject = "admin"

// tokenService implements the adapter.TokenService interface with HS256 JWTs.
type tokenService struct {
	secret   []byte
	duration time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, duration time.Duration) adapter.TokenService {
	return &tokenService{
		secret:   []byte(secret),
		duration: duration,
	}
}

// GenerateAdminToken mints a short-lived admin token.
func (s *tokenService) GenerateAdminToken(ctx context.Context) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.duration)

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    "ekajy",
		Subject:   adminSubject,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign admin token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateAdminToken validates an admin token.
func (s *tokenService) ValidateAdminToken(ctx context.Context, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return domainerror.NewAdminError(
			domainerror.ErrCodeInvalidToken,
			"failed to parse admin token",
			domainerror.ErrInvalidToken,
		)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject != adminSubject {
		return domainerror.NewAdminError(
			domainerror.ErrCodeInvalidToken,
			"invalid admin token claims",
			domainerror.ErrInvalidToken,
		)
	}
	return nil
}
