package problemrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/cloudjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cloudjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
	querybuilder "gitlab.com/cloudjudge-2025.net/internal/utils"
)

var _ secondary.ProblemPort = &problemRepo{}

type problemRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.ProblemPort {
	return &problemRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func (p problemRepo) Create(ctx context.Context, problem *domain.Problem) error {
	tbl := domain.GetProblemTable()
	query, args := querybuilder.NewQueryBuilder(p.schema).
		Insert(
			tbl.ID, tbl.Title, tbl.Description, tbl.Difficulty,
			tbl.TestCases, tbl.CreatorID,
		).
		Into(tbl.GetTableName()).
		Values(
			problem.ID, problem.Title, problem.Description, problem.Difficulty,
			problem.TestCases, problem.CreatorID,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	_, err := p.db.ExecContext(ctx, query, args...)

	return err
}

func (p problemRepo) Update(ctx context.Context, problem *domain.Problem) error {
	tbl := domain.GetProblemTable()
	query, args := querybuilder.NewQueryBuilder(p.schema).
		Update(tbl.GetTableName(), querybuilder.UpdateData{
			tbl.Title:       problem.Title,
			tbl.Description: problem.Description,
			tbl.Difficulty:  problem.Difficulty,
			tbl.TestCases:   problem.TestCases,
			tbl.UpdatedAt:   time.Now(),
		}).
		Where(fmt.Sprintf("%s = ?", tbl.ID), problem.ID).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	_, err := p.db.ExecContext(ctx, query, args...)

	return err
}

// Get returns nil, nil when the problem does not exist.
func (p problemRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	tbl := domain.GetProblemTable()
	query, args := querybuilder.NewQueryBuilder(p.schema).
		Select(
			tbl.ID, tbl.Title, tbl.Description, tbl.Difficulty,
			tbl.TestCases, tbl.CreatorID, tbl.CreatedAt, tbl.UpdatedAt,
		).
		From(tbl.GetTableName()).
		Where(fmt.Sprintf("%s = ?", tbl.ID), id).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var problem domain.Problem
	err := p.db.GetContext(ctx, &problem, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &problem, nil
}

func (p problemRepo) List(ctx context.Context) ([]*domain.Problem, error) {
	tbl := domain.GetProblemTable()
	query, args := querybuilder.NewQueryBuilder(p.schema).
		Select(
			tbl.ID, tbl.Title, tbl.Description, tbl.Difficulty,
			tbl.TestCases, tbl.CreatorID, tbl.CreatedAt, tbl.UpdatedAt,
		).
		From(tbl.GetTableName()).
		OrderBy(tbl.CreatedAt, true).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var problems []*domain.Problem
	if err := p.db.SelectContext(ctx, &problems, query, args...); err != nil {
		return nil, err
	}

	return problems, nil
}
