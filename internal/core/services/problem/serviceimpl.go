package problem

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cloudjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
	"gitlab.com/cloudjudge-2025.net/internal/static/errs"
)

var _ IProblemService = (*ProblemService)(nil)

type ProblemService struct {
	problemPort secondary.ProblemPort
	casesCache  secondary.CasesCache
	logger      primary.Logger
}

func NewProblemService(
	problemPort secondary.ProblemPort,
	casesCache secondary.CasesCache,
	logger primary.Logger,
) *ProblemService {
	return &ProblemService{
		problemPort: problemPort,
		casesCache:  casesCache,
		logger:      logger,
	}
}

func (s *ProblemService) Create(ctx context.Context, creatorID uuid.UUID, problem *domain.Problem) (*domain.Problem, error) {
	if _, err := domain.ParseTestCases(problem.TestCases); err != nil {
		return nil, errs.InvalidTestCases
	}

	problem.ID = uuid.New()
	problem.CreatorID = creatorID
	if problem.Difficulty == "" {
		problem.Difficulty = string(domain.DifficultyMedium)
	}

	if err := s.problemPort.Create(ctx, problem); err != nil {
		s.logger.Error("Failed to create problem", "error", err)
		return nil, err
	}

	s.logger.Info("Problem created", "problemId", problem.ID, "creatorId", creatorID)
	return problem, nil
}

func (s *ProblemService) Update(ctx context.Context, userID, problemID uuid.UUID, params UpdateParams) (*domain.Problem, error) {
	problem, err := s.problemPort.Get(ctx, problemID)
	if err != nil {
		return nil, err
	}
	if problem == nil {
		return nil, errs.ProblemNotFound
	}
	if problem.CreatorID != userID {
		return nil, errs.NotProblemCreator
	}

	if params.TestCases != nil {
		if _, err := domain.ParseTestCases(*params.TestCases); err != nil {
			return nil, errs.InvalidTestCases
		}
		problem.TestCases = *params.TestCases
	}
	if params.Title != nil {
		problem.Title = *params.Title
	}
	if params.Description != nil {
		problem.Description = *params.Description
	}
	if params.Difficulty != nil {
		problem.Difficulty = *params.Difficulty
	}

	if err := s.problemPort.Update(ctx, problem); err != nil {
		s.logger.Error("Failed to update problem", "problemId", problemID, "error", err)
		return nil, err
	}

	// stale cases must not outlive the update
	if err := s.casesCache.Invalidate(ctx, problemID); err != nil {
		s.logger.Warn("Failed to invalidate cases cache", "problemId", problemID, "error", err)
	}

	s.logger.Info("Problem updated", "problemId", problemID)
	return problem, nil
}

func (s *ProblemService) Get(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	problem, err := s.problemPort.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if problem == nil {
		return nil, errs.ProblemNotFound
	}
	return problem, nil
}

func (s *ProblemService) List(ctx context.Context) ([]*domain.Problem, error) {
	return s.problemPort.List(ctx)
}
