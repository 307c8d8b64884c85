package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func Equal(t *testing.T, expected any, actual any, opts ...cmp.Option) {
	t.Helper()

	if diff := cmp.Diff(expected, actual, opts...); len(diff) > 0 {
		t.Errorf("diff: %s", diff)
	}
}

// ErrorIs fails the test unless the cause of err is target.
func ErrorIs(t *testing.T, err error, target error) {
	t.Helper()

	if errors.Cause(err) != target {
		t.Errorf("unexpected error: got %v, want %v", err, target)
	}
}

// ReadFixture returns the content of a file under testdata.
func ReadFixture(t *testing.T, name string) []byte {
	t.Helper()

	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	return b
}

// LoadFixture unmarshals a JSON file under testdata into v.
func LoadFixture(t *testing.T, name string, v any) {
	t.Helper()

	if err := json.Unmarshal(ReadFixture(t, name), v); err != nil {
		t.Fatalf("failed to unmarshal fixture %s: %v", name, err)
	}
}
