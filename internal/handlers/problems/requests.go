package problems

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/core/services/problem"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
)

type CreateProblemRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Difficulty  string          `json:"difficulty"`
	TestCases   json.RawMessage `json:"test_cases"`
}

type UpdateProblemRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Difficulty  *string         `json:"difficulty"`
	TestCases   json.RawMessage `json:"test_cases"`
}

func (r *UpdateProblemRequest) Params() problem.UpdateParams {
	params := problem.UpdateParams{
		Title:       r.Title,
		Description: r.Description,
		Difficulty:  r.Difficulty,
	}
	if r.TestCases != nil {
		raw := string(r.TestCases)
		params.TestCases = &raw
	}
	return params
}

type ProblemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Difficulty  string          `json:"difficulty"`
	TestCases   json.RawMessage `json:"test_cases,omitempty"`
	CreatorID   uuid.UUID       `json:"creator_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewProblemResponse(p *domain.Problem, withCases bool) ProblemResponse {
	resp := ProblemResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Difficulty:  p.Difficulty,
		CreatorID:   p.CreatorID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if withCases {
		resp.TestCases = json.RawMessage(p.TestCases)
	}
	return resp
}
