// Package testutil provides structural-diff helpers shared across this
// module's test suites, adapted from the teacher's internal/parser/testutil.go
// (cmp.Diff-based mismatch reporting, in place of the teacher's JSON-golden
// scheme since this repo's values are better compared by their own String()
// form than by JSON round-tripping).
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/polylambda/bidi/internal/synx"
)

// AssertTypeEqual fails the test with a structural diff if want and got do
// not render to the same surface string.
func AssertTypeEqual(t *testing.T, want, got synx.Type) {
	t.Helper()
	ws, gs := synx.TypeString(want), synx.TypeString(got)
	if diff := cmp.Diff(ws, gs); diff != "" {
		t.Errorf("type mismatch (-want +got):\n%s", diff)
	}
}

// AssertTermEqual fails the test with a structural diff if want and got do
// not render to the same surface string.
func AssertTermEqual(t *testing.T, want, got synx.Term) {
	t.Helper()
	var ws, gs string
	if want != nil {
		ws = want.String()
	}
	if got != nil {
		gs = got.String()
	}
	if diff := cmp.Diff(ws, gs); diff != "" {
		t.Errorf("term mismatch (-want +got):\n%s", diff)
	}
}
