// Package admin contains the thin guard around destructive operations.
package admin

import (
	"context"
	"time"

	"github.com/ekajy/backend/internal/application/adapter"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// LoginInput represents the input for the admin login.
type LoginInput struct {
	Password string
}

// LoginOutput represents the output of the admin login.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
}

// LoginUseCase verifies the admin password and mints a short-lived token
// authorizing destructive endpoints.
type LoginUseCase struct {
	passwordHash    string
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUseCase creates a new LoginUseCase instance. passwordHash is the
// bcrypt hash of the admin password, taken from configuration.
func NewLoginUseCase(
	passwordHash string,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUseCase {
	return &LoginUseCase{
		passwordHash:    passwordHash,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute checks the password and returns an admin token.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := uc.passwordService.VerifyPassword(uc.passwordHash, input.Password); err != nil {
		return nil, domainerror.NewAdminError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid admin password",
			domainerror.ErrInvalidCredentials,
		)
	}

	token, expiresAt, err := uc.tokenService.GenerateAdminToken(ctx)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Token: token, ExpiresAt: expiresAt}, nil
}
