package ctx

import (
	"testing"

	"github.com/polylambda/bidi/internal/synx"
)

func TestApplyExprResolvesEveryTypeSlot(t *testing.T) {
	c := Empty.Push(NSolved{Name: "a1", Type: synx.TUnit{}})
	term := synx.EAbs{
		ArgName: "x",
		ArgType: synx.TEVar{Name: "a1"},
		Body:    synx.EVar{Name: "x", Type: synx.TEVar{Name: "a1"}},
	}

	got, err := ApplyExpr(c, term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := synx.EAbs{ArgName: "x", ArgType: synx.TUnit{}, Body: synx.EVar{Name: "x", Type: synx.TUnit{}}}
	if got.String() != want.String() {
		t.Errorf("ApplyExpr = %s, want %s", got.String(), want.String())
	}
	if synx.TypeOf(got).String() != "Unit -> Unit" {
		t.Errorf("TypeOf(ApplyExpr result) = %s, want Unit -> Unit", synx.TypeOf(got).String())
	}
}

// TestApplyExprIdempotent covers spec.md §8:
// apply_expr(Δ, apply_expr(Δ, e)) = apply_expr(Δ, e).
func TestApplyExprIdempotent(t *testing.T) {
	c := Empty.Push(NSolved{Name: "a1", Type: synx.TUnit{}})
	term := synx.EVar{Name: "x", Type: synx.TEVar{Name: "a1"}}

	once, err := ApplyExpr(c, term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := ApplyExpr(c, once)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if once.String() != twice.String() {
		t.Errorf("ApplyExpr is not idempotent: once = %s, twice = %s", once.String(), twice.String())
	}
}

func TestApplyExprNeverMutatesInput(t *testing.T) {
	c := Empty.Push(NSolved{Name: "a1", Type: synx.TUnit{}})
	input := synx.EVar{Name: "x", Type: synx.TEVar{Name: "a1"}}
	inputBefore := input.String()

	if _, err := ApplyExpr(c, input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.String() != inputBefore {
		t.Errorf("ApplyExpr mutated its input: before %q, after %q", inputBefore, input.String())
	}
}
