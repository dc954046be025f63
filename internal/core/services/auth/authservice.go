package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/cloudjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
	"gitlab.com/cloudjudge-2025.net/internal/static/errs"
)

type IAuthService interface {
	ProviderName() domain.Provider
	// Login authenticates and returns a signed token. For the local provider
	// the Users.PasswordHash field carries the plaintext password on the way
	// in; it is never stored as given.
	Login(ctx context.Context, users *domain.Users) (string, error)
	// Register provisions a new account and returns a signed token.
	Register(ctx context.Context, users *domain.Users) (string, error)
}

func generateToken(ctx context.Context, jwtProvider primary.JWTService, user *domain.Users) (string, error) {
	payload := map[string]interface{}{
		"username":   user.UserName,
		"permission": []string{"judge.submit"},
	}
	token, err := jwtProvider.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, payload)
	if err != nil {
		return "", errs.GeneratingToken
	}
	return token, nil
}
