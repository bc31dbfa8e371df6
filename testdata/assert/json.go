// Package assert provides comparisons of encoded FHIR content for tests.
package assert

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// JSONEqual fails the test if expected and actual do not encode the same JSON value.
// Member order and whitespace are ignored, numbers are compared by their text.
func JSONEqual(t *testing.T, expected, actual string) {
	t.Helper()

	expectedValue := jsonDecode(t, expected)
	actualValue := jsonDecode(t, actual)
	if diff := cmp.Diff(expectedValue, actualValue); diff != "" {
		t.Errorf("JSON mismatch (-expected +actual):\n%s", diff)
	}
}

func jsonDecode(t *testing.T, input string) any {
	t.Helper()

	d := json.NewDecoder(bytes.NewReader([]byte(input)))
	d.UseNumber()

	var v any
	if err := d.Decode(&v); err != nil {
		t.Fatalf("invalid JSON %q: %v", input, err)
	}
	return v
}
