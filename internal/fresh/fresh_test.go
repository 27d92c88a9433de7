package fresh

import (
	"bytes"
	"strings"
	"testing"
)

func TestFreshDistinctness(t *testing.T) {
	g := New()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		n := g.Fresh("α̂")
		if seen[n.String()] {
			t.Fatalf("Fresh produced a repeated name: %s", n)
		}
		seen[n.String()] = true
	}
}

func TestFreshFirstName(t *testing.T) {
	g := New()
	if got, want := g.Fresh("α̂").String(), "α̂1"; got != want {
		t.Errorf("first Fresh(\"α̂\") = %q, want %q", got, want)
	}
}

func TestFreshIndependentGenerators(t *testing.T) {
	g1, g2 := New(), New()
	if g1.Fresh("a").String() != g2.Fresh("a").String() {
		t.Error("two independently-owned generators should produce the same first name")
	}
}

func TestLogfNoopWithoutTrace(t *testing.T) {
	g := New()
	g.Logf("this should not panic or write anywhere: %d", 1)
}

func TestLogfWritesWhenTraceSet(t *testing.T) {
	var buf bytes.Buffer
	g := New()
	g.Trace = &buf
	g.Logf("check %s", "x")
	if !strings.Contains(buf.String(), "check x") {
		t.Errorf("Logf did not write to Trace: %q", buf.String())
	}
}
