package judge

import (
	"encoding/json"
	"reflect"
)

// outputsEqual compares two JSON documents by structure: mappings by key
// (insertion order ignored), sequences by position, numbers as float64.
// No tolerance is applied to numeric values.
//
// The error reports an unparseable actual payload; an unparseable expected
// value also surfaces here since neither side can be trusted blindly.
func outputsEqual(actual, expected json.RawMessage) (bool, error) {
	var actualVal, expectedVal interface{}
	if err := json.Unmarshal(actual, &actualVal); err != nil {
		return false, err
	}
	if err := json.Unmarshal(expected, &expectedVal); err != nil {
		return false, err
	}
	return reflect.DeepEqual(actualVal, expectedVal), nil
}
