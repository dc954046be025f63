package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission represents one attempt: a user's code against a problem,
// plus the persisted verdict once judging finished.
type Submission struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	ProblemID uuid.UUID `db:"problem_id"`
	Code      string    `db:"code"`
	Status    string    `db:"status"`
	Result    string    `db:"result"`
	CreatedAt time.Time `db:"created_at"`
}

// NewSubmission creates a pending submission row.
func NewSubmission(userID, problemID uuid.UUID, code string) *Submission {
	return &Submission{
		ID:        uuid.New(),
		UserID:    userID,
		ProblemID: problemID,
		Code:      code,
		Status:    "pending",
		CreatedAt: time.Now(),
	}
}

type SubmissionTable struct {
	ID        string
	UserID    string
	ProblemID string
	Code      string
	Status    string
	Result    string
	CreatedAt string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:        "id",
		UserID:    "user_id",
		ProblemID: "problem_id",
		Code:      "code",
		Status:    "status",
		Result:    "result",
		CreatedAt: "created_at",
	}
}

func (t SubmissionTable) GetTableName() string {
	return "submissions"
}
