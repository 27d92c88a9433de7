package bidi

import (
	"testing"

	"github.com/polylambda/bidi/internal/ctx"
	"github.com/polylambda/bidi/internal/fresh"
	"github.com/polylambda/bidi/internal/synx"
)

func TestCheckUnitAgainstUnit(t *testing.T) {
	g := fresh.New()
	_, delta, err := Check(g, ctx.Empty, synx.EUnit{}, synx.TUnit{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delta.Notes() != nil {
		t.Errorf("checking Unit against Unit should not extend the context, got %v", delta.Notes())
	}
}

func TestCheckAbsAgainstFun(t *testing.T) {
	g := fresh.New()
	term := synx.EAbs{ArgName: "x", ArgType: synx.Unset{}, Body: synx.EVar{Name: "x", Type: synx.Unset{}}}
	fn := synx.TFun{Domain: synx.TUnit{}, Codomain: synx.TUnit{}}
	elaborated, _, err := Check(g, ctx.Empty, term, fn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	abs := elaborated.(synx.EAbs)
	if got := abs.ArgType.String(); got != "Unit" {
		t.Errorf("abstraction argument type = %q, want Unit", got)
	}
}

func TestCheckEAgainstForallPushesAndPeelsUVar(t *testing.T) {
	g := fresh.New()
	term := synx.EAbs{ArgName: "x", ArgType: synx.Unset{}, Body: synx.EVar{Name: "x", Type: synx.Unset{}}}
	forall := synx.TForall{Name: "α", Body: synx.TFun{Domain: synx.TUVar{Name: "α"}, Codomain: synx.TUVar{Name: "α"}}}
	_, delta, err := Check(g, ctx.Empty, term, forall)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delta.HasUVar("α") {
		t.Error("Check should peel the universal it introduced for e-against-Forall")
	}
}

func TestInferUnboundVariable(t *testing.T) {
	g := fresh.New()
	_, _, _, err := Infer(g, ctx.Empty, synx.EVar{Name: "missing", Type: synx.Unset{}})
	if err == nil || err.Kind != UnboundVariable {
		t.Fatalf("expected UnboundVariable, got %v", err)
	}
}

func TestInferAppNonApplicable(t *testing.T) {
	g := fresh.New()
	_, _, _, err := InferApp(g, ctx.Empty, synx.TUnit{}, synx.EUnit{})
	if err == nil || err.Kind != NonApplicable {
		t.Fatalf("expected NonApplicable, got %v", err)
	}
}

func TestInferAppExistentialFunction(t *testing.T) {
	g := fresh.New()
	c := ctx.Empty.Push(ctx.NEVar{Name: "f1"})
	result, _, delta, err := InferApp(g, c, synx.TEVar{Name: "f1"}, synx.EUnit{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Applying an unconstrained function existential only pins its domain
	// to the argument's type; the result stays an unsolved existential,
	// same as the codomain in scenario 2 (identity with no annotation).
	if _, ok := result.(synx.TEVar); !ok {
		t.Fatalf("expected the application's result to remain an unsolved existential, got %s", result.String())
	}

	fSol, ok, serr := delta.Solution("f1")
	if serr != nil || !ok {
		t.Fatalf("expected f1 to be solved to a function type, ok=%v err=%v", ok, serr)
	}
	fn, ok := fSol.(synx.TFun)
	if !ok {
		t.Fatalf("expected f1's solution to be a function type, got %s", fSol.String())
	}
	domain, aerr := ctx.Apply(delta, fn.Domain)
	if aerr != nil {
		t.Fatalf("unexpected error: %v", aerr)
	}
	if !domain.Equals(synx.TUnit{}) {
		t.Errorf("expected the function's domain to be pinned to Unit, got %s", domain.String())
	}
}
