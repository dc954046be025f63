package submissions

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/domain"
)

type SubmitRequest struct {
	Code string `json:"code"`
}

type SubmissionResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProblemID uuid.UUID       `json:"problem_id"`
	Code      string          `json:"code"`
	Status    string          `json:"status"`
	Result    json.RawMessage `json:"result,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewSubmissionResponse(sub *domain.Submission) SubmissionResponse {
	resp := SubmissionResponse{
		ID:        sub.ID,
		ProblemID: sub.ProblemID,
		Code:      sub.Code,
		Status:    sub.Status,
		CreatedAt: sub.CreatedAt,
	}
	if sub.Result != "" {
		resp.Result = json.RawMessage(sub.Result)
	}
	return resp
}

func NewSubmissionListResponse(subs []*domain.Submission) []SubmissionResponse {
	resp := make([]SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		resp = append(resp, NewSubmissionResponse(sub))
	}
	return resp
}
