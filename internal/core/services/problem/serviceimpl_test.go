package problem_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/core/services/problem"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
	"gitlab.com/cloudjudge-2025.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeProblemPort struct {
	problems map[uuid.UUID]*domain.Problem
	updated  *domain.Problem
}

func (f *fakeProblemPort) Create(ctx context.Context, p *domain.Problem) error {
	if f.problems == nil {
		f.problems = make(map[uuid.UUID]*domain.Problem)
	}
	f.problems[p.ID] = p
	return nil
}
func (f *fakeProblemPort) Update(ctx context.Context, p *domain.Problem) error {
	f.updated = p
	return nil
}
func (f *fakeProblemPort) Get(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	return f.problems[id], nil
}
func (f *fakeProblemPort) List(ctx context.Context) ([]*domain.Problem, error) { return nil, nil }

type fakeCasesCache struct {
	invalidated []uuid.UUID
}

func (f *fakeCasesCache) Get(ctx context.Context, problemID uuid.UUID) ([]domain.TestCase, error) {
	return nil, nil
}
func (f *fakeCasesCache) Set(ctx context.Context, problemID uuid.UUID, cases []domain.TestCase) error {
	return nil
}
func (f *fakeCasesCache) Invalidate(ctx context.Context, problemID uuid.UUID) error {
	f.invalidated = append(f.invalidated, problemID)
	return nil
}

func TestCreateProblem(t *testing.T) {
	port := &fakeProblemPort{}
	svc := problem.NewProblemService(port, &fakeCasesCache{}, nopLogger{})
	creator := uuid.New()

	p, err := svc.Create(context.Background(), creator, &domain.Problem{
		Title:     "Two Sum",
		TestCases: `[{"input":[1,2],"output":3}]`,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("problem id not assigned")
	}
	if p.CreatorID != creator {
		t.Errorf("creator = %v, want %v", p.CreatorID, creator)
	}
	if p.Difficulty != string(domain.DifficultyMedium) {
		t.Errorf("default difficulty = %q, want medium", p.Difficulty)
	}
}

func TestCreateProblemInvalidCases(t *testing.T) {
	svc := problem.NewProblemService(&fakeProblemPort{}, &fakeCasesCache{}, nopLogger{})

	_, err := svc.Create(context.Background(), uuid.New(), &domain.Problem{
		Title:     "Broken",
		TestCases: `{not an array`,
	})
	if !errors.Is(err, errs.InvalidTestCases) {
		t.Errorf("err = %v, want %v", err, errs.InvalidTestCases)
	}
}

func TestUpdateProblem(t *testing.T) {
	creator := uuid.New()
	problemID := uuid.New()
	port := &fakeProblemPort{problems: map[uuid.UUID]*domain.Problem{
		problemID: {ID: problemID, CreatorID: creator, Title: "Old", TestCases: `[]`},
	}}
	cache := &fakeCasesCache{}
	svc := problem.NewProblemService(port, cache, nopLogger{})

	newTitle := "New"
	newCases := `[{"input":1,"output":1}]`
	p, err := svc.Update(context.Background(), creator, problemID, problem.UpdateParams{
		Title:     &newTitle,
		TestCases: &newCases,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Title != "New" {
		t.Errorf("title = %q", p.Title)
	}
	if port.updated == nil {
		t.Fatal("update never reached the store")
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != problemID {
		t.Errorf("cache invalidations = %v, want [%v]", cache.invalidated, problemID)
	}
}

func TestUpdateProblemNotCreator(t *testing.T) {
	problemID := uuid.New()
	port := &fakeProblemPort{problems: map[uuid.UUID]*domain.Problem{
		problemID: {ID: problemID, CreatorID: uuid.New(), TestCases: `[]`},
	}}
	svc := problem.NewProblemService(port, &fakeCasesCache{}, nopLogger{})

	title := "hijack"
	_, err := svc.Update(context.Background(), uuid.New(), problemID, problem.UpdateParams{Title: &title})
	if !errors.Is(err, errs.NotProblemCreator) {
		t.Errorf("err = %v, want %v", err, errs.NotProblemCreator)
	}
}

func TestGetProblemNotFound(t *testing.T) {
	svc := problem.NewProblemService(&fakeProblemPort{}, &fakeCasesCache{}, nopLogger{})

	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, errs.ProblemNotFound) {
		t.Errorf("err = %v, want %v", err, errs.ProblemNotFound)
	}
}
