package domain

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Problem holds the catalog entry a submission is judged against.
// TestCases is the raw JSON payload (ordered list of input/output pairs)
// exactly as the creator uploaded it.
type Problem struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Difficulty  string    `db:"difficulty"`
	TestCases   string    `db:"test_cases"`
	CreatorID   uuid.UUID `db:"creator_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type ProblemTable struct {
	ID          string
	Title       string
	Description string
	Difficulty  string
	TestCases   string
	CreatorID   string
	CreatedAt   string
	UpdatedAt   string
}

func GetProblemTable() ProblemTable {
	return ProblemTable{
		ID:          "id",
		Title:       "title",
		Description: "description",
		Difficulty:  "difficulty",
		TestCases:   "test_cases",
		CreatorID:   "creator_id",
		CreatedAt:   "created_at",
		UpdatedAt:   "updated_at",
	}
}

func (t ProblemTable) GetTableName() string {
	return "problems"
}
