package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cloudjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
	"gitlab.com/cloudjudge-2025.net/internal/static/errs"
)

var _ IAuthService = &googleAuthService{}

type googleAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
}

func NewGoogleAuthService(userPort secondary.UserPort, jwtProvider primary.JWTService) IAuthService {
	return &googleAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
	}
}

func (g googleAuthService) ProviderName() domain.Provider {
	return domain.ProviderGoogle
}

// Login authenticates a Google identity, provisioning the account on first
// sight.
func (g googleAuthService) Login(ctx context.Context, users *domain.Users) (string, error) {
	if users.GoogleID == nil {
		return "", errs.InvalidCredentials
	}
	if users.Email == nil {
		return "", errs.EmailRequired
	}

	usr, err := g.userPort.GetByGoogleID(ctx, *users.GoogleID)
	if err != nil {
		return "", err
	}
	if usr != nil {
		return generateToken(ctx, g.jwtProvider, usr)
	}

	users.ID = uuid.New()
	users.PasswordHash = nil
	users.UserName = strings.Split(*users.Email, "@")[0]
	users.AuthProvider = string(domain.ProviderGoogle)
	users.IsActive = true
	if err := g.userPort.Create(ctx, users); err != nil {
		return "", errs.FailedToCreateUser
	}

	return generateToken(ctx, g.jwtProvider, users)
}

// Register is the same path as Login: Google accounts auto-provision.
func (g googleAuthService) Register(ctx context.Context, users *domain.Users) (string, error) {
	return g.Login(ctx, users)
}
