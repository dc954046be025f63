package submission

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/domain"
)

// Stats mirrors what the stats endpoint reports for one user.
type Stats struct {
	TotalSubmissions  int     `json:"total_submissions"`
	PassedSubmissions int     `json:"passed_submissions"`
	UniqueSolved      int     `json:"unique_problems_solved"`
	SuccessRate       float64 `json:"success_rate"`
}

type ISubmissionService interface {
	// Submit judges the code synchronously against the problem's test cases
	// and persists the verdict.
	Submit(ctx context.Context, userID, problemID uuid.UUID, code string) (*domain.Submission, error)
	Get(ctx context.Context, userID, submissionID uuid.UUID) (*domain.Submission, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Submission, error)
	ListByUserAndProblem(ctx context.Context, userID, problemID uuid.UUID) ([]*domain.Submission, error)
	StatsByUser(ctx context.Context, userID uuid.UUID) (*Stats, error)
}
