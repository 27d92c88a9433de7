package bidi

import (
	"io"

	"github.com/polylambda/bidi/internal/ctx"
	"github.com/polylambda/bidi/internal/fresh"
	"github.com/polylambda/bidi/internal/synx"
)

// InferExpression is the public entry point (spec.md §4.6/§6): it receives
// a term whose type slots may be Unset, infers under the empty context, and
// returns the same structural term with every slot populated by a
// well-formed type in the final output context — or a typed *Error.
func InferExpression(e synx.Term) (synx.Term, *Error) {
	return InferExpressionTraced(e, nil)
}

// InferExpressionTraced is InferExpression with optional advisory tracing:
// if w is non-nil, every rule application is logged to it (spec.md §6).
// Trace output never affects the result.
func InferExpressionTraced(e synx.Term, w io.Writer) (synx.Term, *Error) {
	g := fresh.New()
	g.Trace = w
	_, ePrime, delta, err := Infer(g, ctx.Empty, e)
	if err != nil {
		return nil, err
	}
	final, aerr := ctx.ApplyExpr(delta, ePrime)
	if aerr != nil {
		return nil, fromStructural(aerr)
	}
	return final, nil
}
