package domain

import (
	"encoding/json"
	"fmt"
)

// TestCase is one input/expected-output pair. Both sides stay raw JSON until
// the judge needs to compare them; the engine never mutates a case.
type TestCase struct {
	Input    json.RawMessage `json:"input"`
	Expected json.RawMessage `json:"output"`
}

// ParseTestCases decodes a problem's stored test-case payload. The payload
// must be an ordered JSON array of {input, output} objects.
func ParseTestCases(raw string) ([]TestCase, error) {
	var cases []TestCase
	if err := json.Unmarshal([]byte(raw), &cases); err != nil {
		return nil, fmt.Errorf("invalid test cases JSON: %w", err)
	}
	return cases, nil
}
