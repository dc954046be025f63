package auth

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cloudjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
	"gitlab.com/cloudjudge-2025.net/internal/static/errs"
)

var _ IAuthService = &localAuthService{}

type localAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
}

func NewLocalAuthService(
	userPort secondary.UserPort,
	jwtProvider primary.JWTService,
) IAuthService {
	return &localAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
	}
}

func (g localAuthService) ProviderName() domain.Provider {
	return domain.ProviderLocal
}

func (g localAuthService) Login(ctx context.Context, users *domain.Users) (string, error) {
	if users.PasswordHash == nil {
		return "", errs.InvalidCredentials
	}

	usr, err := g.userPort.GetByUserName(ctx, users.UserName)
	if err != nil {
		return "", err
	}
	if usr == nil || usr.PasswordHash == nil {
		return "", errs.InvalidCredentials
	}

	valid, err := g.jwtProvider.VerifyPassword(ctx, *usr.PasswordHash, *users.PasswordHash)
	if err != nil || !valid {
		return "", errs.InvalidCredentials
	}

	return generateToken(ctx, g.jwtProvider, usr)
}

func (g localAuthService) Register(ctx context.Context, users *domain.Users) (string, error) {
	if users.PasswordHash == nil || *users.PasswordHash == "" {
		return "", errs.InvalidCredentials
	}
	if users.Email == nil || *users.Email == "" {
		return "", errs.EmailRequired
	}

	existing, err := g.userPort.GetByUserName(ctx, users.UserName)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", errs.UsernameTaken
	}

	existing, err = g.userPort.GetByEmail(ctx, *users.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", errs.EmailTaken
	}

	hash, err := g.jwtProvider.EncryptPassword(ctx, *users.PasswordHash)
	if err != nil {
		return "", errs.InternalError
	}

	users.ID = uuid.New()
	users.PasswordHash = &hash
	users.AuthProvider = string(domain.ProviderLocal)
	users.IsActive = true
	if err := g.userPort.Create(ctx, users); err != nil {
		return "", errs.FailedToCreateUser
	}

	return generateToken(ctx, g.jwtProvider, users)
}
