package submissionrepository

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

var _ secondary.SubmissionPort = &submissionRepo{}

type submissionRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.SubmissionPort {
	return &submissionRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func (s submissionRepo) Create(ctx context.Context, submission *domain.Submission) error {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(s.schema).
		Insert(
			tbl.ID, tbl.UserID, tbl.ProblemID, tbl.Code, tbl.Status, tbl.Result,
		).
		Into(tbl.GetTableName()).
		Values(
			submission.ID, submission.UserID, submission.ProblemID,
			submission.Code, submission.Status, submission.Result,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	_, err := s.db.ExecContext(ctx, query, args...)

	return err
}

// Get returns nil, nil when the submission does not exist.
func (s submissionRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	tbl := domain.GetSubmissionTable()
	query, args := s.selectQuery().
		Where(fmt.Sprintf("%s = ?", tbl.ID), id).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var submission domain.Submission
	err := s.db.GetContext(ctx, &submission, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &submission, nil
}

func (s submissionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Submission, error) {
	tbl := domain.GetSubmissionTable()
	query, args := s.selectQuery().
		Where(fmt.Sprintf("%s = ?", tbl.UserID), userID).
		OrderBy(tbl.CreatedAt, false).
		Build()

	return s.list(ctx, query, args)
}

func (s submissionRepo) ListByUserAndProblem(ctx context.Context, userID, problemID uuid.UUID) ([]*domain.Submission, error) {
	tbl := domain.GetSubmissionTable()
	query, args := s.selectQuery().
		Where(fmt.Sprintf("%s = ?", tbl.UserID), userID).
		And(fmt.Sprintf("%s = ?", tbl.ProblemID), problemID).
		OrderBy(tbl.CreatedAt, false).
		Build()

	return s.list(ctx, query, args)
}

// StatsByUser aggregates submission counts in one round trip.
func (s submissionRepo) StatsByUser(ctx context.Context, userID uuid.UUID) (*secondary.UserStats, error) {
	tbl := domain.GetSubmissionTable()
	query := fmt.Sprintf(`SELECT
		COUNT(*) AS total_submissions,
		COUNT(*) FILTER (WHERE %s = 'passed') AS passed_submissions,
		COUNT(DISTINCT %s) FILTER (WHERE %s = 'passed') AS unique_solved
	FROM %s.%s WHERE %s = ?`,
		tbl.Status, tbl.ProblemID, tbl.Status,
		s.schema, tbl.GetTableName(), tbl.UserID)

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var stats secondary.UserStats
	if err := s.db.GetContext(ctx, &stats, query, userID); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (s submissionRepo) selectQuery() querybuilder.QueryBuilder {
	tbl := domain.GetSubmissionTable()
	return querybuilder.NewQueryBuilder(s.schema).
		Select(
			tbl.ID, tbl.UserID, tbl.ProblemID, tbl.Code,
			tbl.Status, tbl.Result, tbl.CreatedAt,
		).
		From(tbl.GetTableName())
}

func (s submissionRepo) list(ctx context.Context, query string, args []interface{}) ([]*domain.Submission, error) {
	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var submissions []*domain.Submission
	if err := s.db.SelectContext(ctx, &submissions, query, args...); err != nil {
		return nil, err
	}
	return submissions, nil
}
