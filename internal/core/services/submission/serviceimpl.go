package submission

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cloudjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cloudjudge-2025.net/internal/core/services/judge"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
	"gitlab.com/cloudjudge-2025.net/internal/static/errs"
)

var _ ISubmissionService = (*SubmissionService)(nil)

type SubmissionService struct {
	submissionPort secondary.SubmissionPort
	problemPort    secondary.ProblemPort
	casesCache     secondary.CasesCache
	judgeService   judge.IJudgeService
	limits         domain.ExecutionLimits
	logger         primary.Logger
}

func NewSubmissionService(
	submissionPort secondary.SubmissionPort,
	problemPort secondary.ProblemPort,
	casesCache secondary.CasesCache,
	judgeService judge.IJudgeService,
	limits domain.ExecutionLimits,
	logger primary.Logger,
) *SubmissionService {
	return &SubmissionService{
		submissionPort: submissionPort,
		problemPort:    problemPort,
		casesCache:     casesCache,
		judgeService:   judgeService,
		limits:         limits,
		logger:         logger,
	}
}

func (s *SubmissionService) Submit(ctx context.Context, userID, problemID uuid.UUID, code string) (*domain.Submission, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errs.EmptyCode
	}

	problem, err := s.problemPort.Get(ctx, problemID)
	if err != nil {
		return nil, err
	}
	if problem == nil {
		return nil, errs.ProblemNotFound
	}

	var result domain.SubmissionResult
	cases, err := s.cases(ctx, problem)
	if err != nil {
		// a corrupt stored payload judges to an error verdict, it does not
		// fail the request
		s.logger.Error("Stored test cases unreadable", "problemId", problemID, "error", err)
		result = domain.SubmissionResult{OverallStatus: domain.OverallError}
	} else {
		result = s.judgeService.Judge(ctx, code, cases, s.limits)
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	sub := domain.NewSubmission(userID, problemID, code)
	sub.Status = string(result.OverallStatus)
	sub.Result = string(resultJSON)

	if err := s.submissionPort.Create(ctx, sub); err != nil {
		s.logger.Error("Failed to persist submission", "submissionId", sub.ID, "error", err)
		return nil, err
	}

	s.logger.Info("Submission judged",
		"submissionId", sub.ID,
		"problemId", problemID,
		"status", sub.Status,
		"passed", result.PassedCount,
		"total", result.TotalCount)
	return sub, nil
}

// cases loads the problem's parsed test cases, preferring the cache.
func (s *SubmissionService) cases(ctx context.Context, problem *domain.Problem) ([]domain.TestCase, error) {
	cached, err := s.casesCache.Get(ctx, problem.ID)
	if err != nil {
		s.logger.Warn("Cases cache read failed", "problemId", problem.ID, "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	cases, err := domain.ParseTestCases(problem.TestCases)
	if err != nil {
		return nil, err
	}

	if err := s.casesCache.Set(ctx, problem.ID, cases); err != nil {
		s.logger.Warn("Cases cache write failed", "problemId", problem.ID, "error", err)
	}
	return cases, nil
}

func (s *SubmissionService) Get(ctx context.Context, userID, submissionID uuid.UUID) (*domain.Submission, error) {
	sub, err := s.submissionPort.Get(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errs.SubmissionNotFound
	}
	if sub.UserID != userID {
		return nil, errs.NotSubmissionOwner
	}
	return sub, nil
}

func (s *SubmissionService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Submission, error) {
	return s.submissionPort.ListByUser(ctx, userID)
}

func (s *SubmissionService) ListByUserAndProblem(ctx context.Context, userID, problemID uuid.UUID) ([]*domain.Submission, error) {
	return s.submissionPort.ListByUserAndProblem(ctx, userID, problemID)
}

func (s *SubmissionService) StatsByUser(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	counts, err := s.submissionPort.StatsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalSubmissions:  counts.TotalSubmissions,
		PassedSubmissions: counts.PassedSubmissions,
		UniqueSolved:      counts.UniqueSolved,
	}
	if stats.TotalSubmissions > 0 {
		stats.SuccessRate = float64(stats.PassedSubmissions) / float64(stats.TotalSubmissions) * 100
	}
	return stats, nil
}
