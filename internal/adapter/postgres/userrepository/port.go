package userrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/cloudjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cloudjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
	querybuilder "gitlab.com/cloudjudge-2025.net/internal/utils"
)

var _ secondary.UserPort = &userRepo{}

type userRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.UserPort {
	return &userRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func (u userRepo) Create(ctx context.Context, user *domain.Users) error {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Insert(
			userTbl.ID, userTbl.UserName, userTbl.Email, userTbl.PasswordHash,
			userTbl.AuthProvider, userTbl.GoogleID, userTbl.IsActive,
		).
		Into(userTbl.GetTableName()).
		Values(
			user.ID, user.UserName, user.Email, user.PasswordHash,
			user.AuthProvider, user.GoogleID, user.IsActive,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	_, err := u.db.ExecContext(ctx, query, args...)

	return err
}

func (u userRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	return u.getOne(ctx, fmt.Sprintf("%s = ?", userTbl.ID), id)
}

func (u userRepo) GetByEmail(ctx context.Context, email string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	return u.getOne(ctx, fmt.Sprintf("%s = ?", userTbl.Email), email)
}

func (u userRepo) GetByUserName(ctx context.Context, userName string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	return u.getOne(ctx, fmt.Sprintf("%s = ?", userTbl.UserName), userName)
}

func (u userRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	return u.getOne(ctx, fmt.Sprintf("%s = ?", userTbl.GoogleID), googleID)
}

// getOne returns nil, nil when no row matches.
func (u userRepo) getOne(ctx context.Context, clause string, arg interface{}) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Select(
			userTbl.ID, userTbl.UserName, userTbl.Email, userTbl.PasswordHash,
			userTbl.AuthProvider, userTbl.GoogleID, userTbl.IsActive, userTbl.CreatedAt,
		).
		From(userTbl.GetTableName()).
		Where(clause, arg).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var user domain.Users
	err := u.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
