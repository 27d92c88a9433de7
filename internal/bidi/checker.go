package bidi

import (
	"github.com/polylambda/bidi/internal/ctx"
	"github.com/polylambda/bidi/internal/fresh"
	"github.com/polylambda/bidi/internal/synx"
)

// Check checks term e against expected type a under c, returning the
// elaborated term and the output context. Cases are tried in the order of
// spec.md §4.5: Unit/Unit, Abs/Fun, e-against-Forall, then subsumption.
func Check(g *fresh.Generator, c *ctx.Context, e synx.Term, a synx.Type) (synx.Term, *ctx.Context, *Error) {
	g.Logf("check %s <= %s", e.String(), a.String())
	if _, ok := e.(synx.EUnit); ok {
		if _, ok := a.(synx.TUnit); ok {
			return synx.EUnit{}, c, nil
		}
	}

	if abs, ok := e.(synx.EAbs); ok {
		if fn, ok := a.(synx.TFun); ok {
			c2 := c.Push(ctx.NAssump{Var: abs.ArgName, Type: fn.Domain})
			bodyPrime, delta2, err := Check(g, c2, abs.Body, fn.Codomain)
			if err != nil {
				return nil, nil, err
			}
			delta := delta2.Peel(ctx.IsAssump(abs.ArgName))
			return synx.EAbs{ArgName: abs.ArgName, ArgType: fn.Domain, Body: bodyPrime}, delta, nil
		}
	}

	if fa, ok := a.(synx.TForall); ok {
		c2 := c.Push(ctx.NUVar{Name: fa.Name})
		ePrime, delta2, err := Check(g, c2, e, fa.Body)
		if err != nil {
			return nil, nil, err
		}
		return ePrime, delta2.Peel(ctx.IsUVar(fa.Name)), nil
	}

	// Subsumption: infer e's type, then require it a subtype of a.
	typ, ePrime, theta, err := Infer(g, c, e)
	if err != nil {
		return nil, nil, err
	}
	inferred, aerr := ctx.Apply(theta, typ)
	if aerr != nil {
		return nil, nil, fromStructural(aerr)
	}
	expected, aerr := ctx.Apply(theta, a)
	if aerr != nil {
		return nil, nil, fromStructural(aerr)
	}
	delta, serr := Subtype(g, theta, inferred, expected)
	if serr != nil {
		return nil, nil, serr
	}
	finalExpr, aerr := ctx.ApplyExpr(delta, ePrime)
	if aerr != nil {
		return nil, nil, fromStructural(aerr)
	}
	return finalExpr, delta, nil
}

// Infer synthesizes a type for e under c, returning the type, the
// elaborated term, and the output context.
func Infer(g *fresh.Generator, c *ctx.Context, e synx.Term) (synx.Type, synx.Term, *ctx.Context, *Error) {
	g.Logf("infer %s", e.String())
	switch e := e.(type) {
	case synx.EUnit:
		return synx.TUnit{}, synx.EUnit{}, c, nil

	case synx.EVar:
		a, ok, err := c.Assump(e.Name)
		if err != nil {
			return nil, nil, nil, fromStructural(err)
		}
		if !ok {
			return nil, nil, nil, errUnboundVariable(e.Name)
		}
		return a, synx.EVar{Name: e.Name, Type: a}, c, nil

	case synx.EAnn:
		bodyPrime, delta, err := Check(g, c, e.Body, e.Declared)
		if err != nil {
			return nil, nil, nil, err
		}
		// The annotation node is kept in the elaborated output (rather than
		// erased to just body', a literal but under-specified reading of
		// the paper's rule) so a fully-annotated term still shows the
		// user-written ascription, per spec.md §8's worked scenario 1.
		return e.Declared, synx.EAnn{Body: bodyPrime, Declared: e.Declared}, delta, nil

	case synx.EAbs:
		alphaHat := g.Fresh("α̂")
		cHat := g.Fresh("ĉ")
		c2 := c.
			Push(ctx.NEVar{Name: alphaHat}).
			Push(ctx.NEVar{Name: cHat}).
			Push(ctx.NAssump{Var: e.ArgName, Type: synx.TEVar{Name: alphaHat}})
		bodyPrime, delta2, err := Check(g, c2, e.Body, synx.TEVar{Name: cHat})
		if err != nil {
			return nil, nil, nil, err
		}
		delta := delta2.Peel(ctx.IsAssump(e.ArgName))
		resultType := synx.TFun{Domain: synx.TEVar{Name: alphaHat}, Codomain: synx.TEVar{Name: cHat}}
		resultTerm := synx.EAbs{ArgName: e.ArgName, ArgType: synx.TEVar{Name: alphaHat}, Body: bodyPrime}
		return resultType, resultTerm, delta, nil

	case synx.EApp:
		afn, fnPrime, theta, err := Infer(g, c, e.Fn)
		if err != nil {
			return nil, nil, nil, err
		}
		afnApplied, aerr := ctx.Apply(theta, afn)
		if aerr != nil {
			return nil, nil, nil, fromStructural(aerr)
		}
		result, argPrime, delta, err2 := InferApp(g, theta, afnApplied, e.Arg)
		if err2 != nil {
			return nil, nil, nil, err2
		}
		return result, synx.EApp{Fn: fnPrime, Arg: argPrime, Result: result}, delta, nil

	case synx.ELet:
		arhs, rhsPrime, theta, err := Infer(g, c, e.Bound)
		if err != nil {
			return nil, nil, nil, err
		}
		cHat := g.Fresh("ĉ")
		c2 := theta.
			Push(ctx.NEVar{Name: cHat}).
			Push(ctx.NAssump{Var: e.Name, Type: arhs})
		bodyPrime, delta2, err2 := Check(g, c2, e.Body, synx.TEVar{Name: cHat})
		if err2 != nil {
			return nil, nil, nil, err2
		}
		delta := delta2.Peel(ctx.IsAssump(e.Name))
		resultTerm := synx.ELet{Name: e.Name, Bound: rhsPrime, Body: bodyPrime}
		return synx.TEVar{Name: cHat}, resultTerm, delta, nil

	default:
		return nil, nil, nil, &Error{Kind: InvariantViolation, Message: "infer: unhandled term shape"}
	}
}

// InferApp synthesizes the result type of applying a function of type afn
// to argument term arg.
func InferApp(g *fresh.Generator, c *ctx.Context, afn synx.Type, arg synx.Term) (synx.Type, synx.Term, *ctx.Context, *Error) {
	g.Logf("infer_app %s @ %s", afn.String(), arg.String())
	switch afn := afn.(type) {
	case synx.TForall:
		alphaHat := g.Fresh("α̂")
		c2 := c.Push(ctx.NEVar{Name: alphaHat})
		substituted := ctx.Subst(synx.TEVar{Name: alphaHat}, synx.TUVar{Name: afn.Name}, afn.Body)
		return InferApp(g, c2, substituted, arg)

	case synx.TEVar:
		post, pre, ok := c.Split(ctx.IsEVar(afn.Name))
		if !ok {
			return nil, nil, nil, errUnboundExistential(afn.Name)
		}
		a1 := g.Fresh("α̂")
		a2 := g.Fresh("α̂")
		mid := pre.
			Push(ctx.NEVar{Name: a2}).
			Push(ctx.NEVar{Name: a1}).
			Push(ctx.NSolved{Name: afn.Name, Type: synx.TFun{Domain: synx.TEVar{Name: a1}, Codomain: synx.TEVar{Name: a2}}})
		newCtx := ctx.Rebuild(post, mid)
		argPrime, delta, err := Check(g, newCtx, arg, synx.TEVar{Name: a1})
		if err != nil {
			return nil, nil, nil, err
		}
		return synx.TEVar{Name: a2}, argPrime, delta, nil

	case synx.TFun:
		argPrime, delta, err := Check(g, c, arg, afn.Domain)
		if err != nil {
			return nil, nil, nil, err
		}
		return afn.Codomain, argPrime, delta, nil

	default:
		return nil, nil, nil, errNonApplicable(afn)
	}
}
