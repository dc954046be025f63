package errs

import "errors"

// BackendUnavailable means the isolation backend itself cannot be reached
// (daemon absent, socket denied). It is detected structurally before a launch
// is attempted and switches the judge into fallback mode; it never describes
// a failure of the submitted code.
var BackendUnavailable = errors.New("isolation backend unavailable")

var (
	ProblemNotFound    = errors.New("problem not found")
	SubmissionNotFound = errors.New("submission not found")
	NotProblemCreator  = errors.New("only creator can update this problem")
	NotSubmissionOwner = errors.New("you can only view your own submissions")
	EmptyCode          = errors.New("code cannot be empty")
	InvalidTestCases   = errors.New("test_cases must be a JSON array of {input, output} pairs")
)
