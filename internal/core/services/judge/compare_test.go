package judge

import "testing"

func TestOutputsEqual(t *testing.T) {
	tests := []struct {
		name     string
		actual   string
		expected string
		equal    bool
	}{
		{"scalars", "42", "42", true},
		{"scalar mismatch", "42", "43", false},
		{"strings", `"abc"`, `"abc"`, true},
		{"key order ignored", `{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{"array order significant", "[1,2]", "[2,1]", false},
		{"nested", `{"a":[1,{"b":true}]}`, `{"a":[1,{"b":true}]}`, true},
		{"nested mismatch", `{"a":[1,{"b":true}]}`, `{"a":[1,{"b":false}]}`, false},
		{"int and float forms", "1", "1.0", true},
		{"null", "null", "null", true},
		{"bool vs string", "true", `"true"`, false},
		{"empty containers differ", "[]", "{}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			equal, err := outputsEqual([]byte(tt.actual), []byte(tt.expected))
			if err != nil {
				t.Fatalf("outputsEqual: %v", err)
			}
			if equal != tt.equal {
				t.Errorf("outputsEqual(%s, %s) = %v, want %v", tt.actual, tt.expected, equal, tt.equal)
			}
		})
	}
}

func TestOutputsEqualMalformed(t *testing.T) {
	if _, err := outputsEqual([]byte("{not json"), []byte("1")); err == nil {
		t.Error("expected error for malformed actual payload")
	}
	if _, err := outputsEqual([]byte("1"), []byte("{not json")); err == nil {
		t.Error("expected error for malformed expected value")
	}
}
