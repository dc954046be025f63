package submission_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cloudjudge-2025.net/internal/core/services/submission"
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
}

func (f *fakeProblemPort) Create(ctx context.Context, p *domain.Problem) error { return nil }
func (f *fakeProblemPort) Update(ctx context.Context, p *domain.Problem) error { return nil }
func (f *fakeProblemPort) Get(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	return f.problems[id], nil
}
func (f *fakeProblemPort) List(ctx context.Context) ([]*domain.Problem, error) { return nil, nil }

type fakeSubmissionPort struct {
	created []*domain.Submission
	rows    map[uuid.UUID]*domain.Submission
	stats   *secondary.UserStats
}

func (f *fakeSubmissionPort) Create(ctx context.Context, sub *domain.Submission) error {
	f.created = append(f.created, sub)
	return nil
}
func (f *fakeSubmissionPort) Get(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	return f.rows[id], nil
}
func (f *fakeSubmissionPort) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Submission, error) {
	return nil, nil
}
func (f *fakeSubmissionPort) ListByUserAndProblem(ctx context.Context, userID, problemID uuid.UUID) ([]*domain.Submission, error) {
	return nil, nil
}
func (f *fakeSubmissionPort) StatsByUser(ctx context.Context, userID uuid.UUID) (*secondary.UserStats, error) {
	return f.stats, nil
}

type fakeCasesCache struct {
	entries map[uuid.UUID][]domain.TestCase
}

func (f *fakeCasesCache) Get(ctx context.Context, problemID uuid.UUID) ([]domain.TestCase, error) {
	return f.entries[problemID], nil
}
func (f *fakeCasesCache) Set(ctx context.Context, problemID uuid.UUID, cases []domain.TestCase) error {
	if f.entries == nil {
		f.entries = make(map[uuid.UUID][]domain.TestCase)
	}
	f.entries[problemID] = cases
	return nil
}
func (f *fakeCasesCache) Invalidate(ctx context.Context, problemID uuid.UUID) error {
	delete(f.entries, problemID)
	return nil
}

type fakeJudge struct {
	gotCases []domain.TestCase
	result   domain.SubmissionResult
}

func (f *fakeJudge) Judge(ctx context.Context, code string, cases []domain.TestCase, limits domain.ExecutionLimits) domain.SubmissionResult {
	f.gotCases = cases
	return f.result
}

func limits() domain.ExecutionLimits {
	return domain.ExecutionLimits{Timeout: 1, MemoryMB: 256, CPUFraction: 0.5}
}

func TestSubmitPersistsVerdict(t *testing.T) {
	problemID := uuid.New()
	userID := uuid.New()
	problemPort := &fakeProblemPort{problems: map[uuid.UUID]*domain.Problem{
		problemID: {ID: problemID, TestCases: `[{"input":1,"output":2}]`},
	}}
	subPort := &fakeSubmissionPort{}
	judgeSvc := &fakeJudge{result: domain.SubmissionResult{
		OverallStatus: domain.OverallPassed,
		PassedCount:   1,
		TotalCount:    1,
	}}

	svc := submission.NewSubmissionService(subPort, problemPort, &fakeCasesCache{}, judgeSvc, limits(), nopLogger{})

	sub, err := svc.Submit(context.Background(), userID, problemID, "def solution(x): return x*2")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if sub.Status != string(domain.OverallPassed) {
		t.Errorf("status = %q, want %q", sub.Status, domain.OverallPassed)
	}
	if len(subPort.created) != 1 {
		t.Fatalf("created %d submissions, want 1", len(subPort.created))
	}
	var stored domain.SubmissionResult
	if err := json.Unmarshal([]byte(sub.Result), &stored); err != nil {
		t.Fatalf("persisted result is not JSON: %v", err)
	}
	if stored.PassedCount != 1 || stored.TotalCount != 1 {
		t.Errorf("stored counts = %d/%d, want 1/1", stored.PassedCount, stored.TotalCount)
	}
	if len(judgeSvc.gotCases) != 1 {
		t.Errorf("judge saw %d cases, want 1", len(judgeSvc.gotCases))
	}
}

func TestSubmitEmptyCode(t *testing.T) {
	svc := submission.NewSubmissionService(
		&fakeSubmissionPort{}, &fakeProblemPort{}, &fakeCasesCache{}, &fakeJudge{}, limits(), nopLogger{})

	_, err := svc.Submit(context.Background(), uuid.New(), uuid.New(), "   \n ")
	if !errors.Is(err, errs.EmptyCode) {
		t.Errorf("err = %v, want %v", err, errs.EmptyCode)
	}
}

func TestSubmitUnknownProblem(t *testing.T) {
	svc := submission.NewSubmissionService(
		&fakeSubmissionPort{}, &fakeProblemPort{}, &fakeCasesCache{}, &fakeJudge{}, limits(), nopLogger{})

	_, err := svc.Submit(context.Background(), uuid.New(), uuid.New(), "code")
	if !errors.Is(err, errs.ProblemNotFound) {
		t.Errorf("err = %v, want %v", err, errs.ProblemNotFound)
	}
}

func TestSubmitCorruptStoredCases(t *testing.T) {
	problemID := uuid.New()
	problemPort := &fakeProblemPort{problems: map[uuid.UUID]*domain.Problem{
		problemID: {ID: problemID, TestCases: `{not json`},
	}}
	subPort := &fakeSubmissionPort{}
	svc := submission.NewSubmissionService(subPort, problemPort, &fakeCasesCache{}, &fakeJudge{}, limits(), nopLogger{})

	sub, err := svc.Submit(context.Background(), uuid.New(), problemID, "code")
	if err != nil {
		t.Fatalf("Submit should persist an error verdict, got request failure: %v", err)
	}
	if sub.Status != string(domain.OverallError) {
		t.Errorf("status = %q, want %q", sub.Status, domain.OverallError)
	}
}

func TestSubmitPrefersCachedCases(t *testing.T) {
	problemID := uuid.New()
	problemPort := &fakeProblemPort{problems: map[uuid.UUID]*domain.Problem{
		// stored payload is broken, only the cache can serve
		problemID: {ID: problemID, TestCases: `broken`},
	}}
	cache := &fakeCasesCache{entries: map[uuid.UUID][]domain.TestCase{
		problemID: {{Input: json.RawMessage(`1`), Expected: json.RawMessage(`2`)}},
	}}
	judgeSvc := &fakeJudge{result: domain.SubmissionResult{OverallStatus: domain.OverallPassed}}
	svc := submission.NewSubmissionService(&fakeSubmissionPort{}, problemPort, cache, judgeSvc, limits(), nopLogger{})

	sub, err := svc.Submit(context.Background(), uuid.New(), problemID, "code")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub.Status != string(domain.OverallPassed) {
		t.Errorf("status = %q, want %q", sub.Status, domain.OverallPassed)
	}
	if len(judgeSvc.gotCases) != 1 {
		t.Errorf("judge saw %d cases, want the cached one", len(judgeSvc.gotCases))
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	owner := uuid.New()
	subID := uuid.New()
	subPort := &fakeSubmissionPort{rows: map[uuid.UUID]*domain.Submission{
		subID: {ID: subID, UserID: owner},
	}}
	svc := submission.NewSubmissionService(subPort, &fakeProblemPort{}, &fakeCasesCache{}, &fakeJudge{}, limits(), nopLogger{})

	if _, err := svc.Get(context.Background(), owner, subID); err != nil {
		t.Errorf("owner read failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), uuid.New(), subID); !errors.Is(err, errs.NotSubmissionOwner) {
		t.Errorf("err = %v, want %v", err, errs.NotSubmissionOwner)
	}
	if _, err := svc.Get(context.Background(), owner, uuid.New()); !errors.Is(err, errs.SubmissionNotFound) {
		t.Errorf("err = %v, want %v", err, errs.SubmissionNotFound)
	}
}

func TestStatsByUser(t *testing.T) {
	subPort := &fakeSubmissionPort{stats: &secondary.UserStats{
		TotalSubmissions:  8,
		PassedSubmissions: 2,
		UniqueSolved:      2,
	}}
	svc := submission.NewSubmissionService(subPort, &fakeProblemPort{}, &fakeCasesCache{}, &fakeJudge{}, limits(), nopLogger{})

	stats, err := svc.StatsByUser(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("StatsByUser: %v", err)
	}
	if stats.SuccessRate != 25 {
		t.Errorf("success rate = %v, want 25", stats.SuccessRate)
	}
}

func TestStatsByUserNoSubmissions(t *testing.T) {
	subPort := &fakeSubmissionPort{stats: &secondary.UserStats{}}
	svc := submission.NewSubmissionService(subPort, &fakeProblemPort{}, &fakeCasesCache{}, &fakeJudge{}, limits(), nopLogger{})

	stats, err := svc.StatsByUser(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("StatsByUser: %v", err)
	}
	if stats.SuccessRate != 0 {
		t.Errorf("success rate = %v, want 0", stats.SuccessRate)
	}
}
