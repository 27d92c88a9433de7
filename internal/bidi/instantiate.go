package bidi

import (
	"github.com/polylambda/bidi/internal/ctx"
	"github.com/polylambda/bidi/internal/fresh"
	"github.com/polylambda/bidi/internal/synx"
)

// InstantiateLeft solves α̂ :≤ A under c, returning the output context.
// Rules are tried in the order spec.md §4.3 requires: InstLSolve first, so
// an existing monotype short-circuits before any sub-existential is
// introduced, then the structural cases dispatched on A's shape.
func InstantiateLeft(g *fresh.Generator, c *ctx.Context, alpha synx.Name, a synx.Type) (*ctx.Context, *Error) {
	g.Logf("instantiate_l %s^ := %s", alpha, a.String())
	if synx.IsMonotype(a) {
		post, pre, ok := c.Split(ctx.IsEVar(alpha))
		if !ok {
			return nil, errUnboundExistential(alpha)
		}
		if ctx.WellFormed(pre, a) {
			return ctx.Rebuild(post, pre.Push(ctx.NSolved{Name: alpha, Type: a})), nil
		}
	}

	switch a := a.(type) {
	case synx.TEVar:
		// InstLReach: α̂ was declared before β̂, so solve β̂ := α̂.
		postB, preB, ok := c.Split(ctx.IsEVar(a.Name))
		if !ok {
			return nil, errUnboundExistential(a.Name)
		}
		if !preB.HasEVar(alpha) {
			return nil, errInstantiation("InstLReach: target existential not declared before the source", a)
		}
		return ctx.Rebuild(postB, preB.Push(ctx.NSolved{Name: a.Name, Type: synx.TEVar{Name: alpha}})), nil

	case synx.TFun:
		post, pre, ok := c.Split(ctx.IsEVar(alpha))
		if !ok {
			return nil, errUnboundExistential(alpha)
		}
		a1 := g.Fresh("α̂")
		a2 := g.Fresh("α̂")
		mid := pre.
			Push(ctx.NSolved{Name: alpha, Type: synx.TFun{Domain: synx.TEVar{Name: a1}, Codomain: synx.TEVar{Name: a2}}}).
			Push(ctx.NEVar{Name: a1}).
			Push(ctx.NEVar{Name: a2})
		newCtx := ctx.Rebuild(post, mid)

		theta, err := InstantiateRight(g, newCtx, a.Domain, a1)
		if err != nil {
			return nil, err
		}
		codomain, aerr := ctx.Apply(theta, a.Codomain)
		if aerr != nil {
			return nil, fromStructural(aerr)
		}
		return InstantiateLeft(g, theta, a2, codomain)

	case synx.TForall:
		c2 := c.Push(ctx.NUVar{Name: a.Name})
		delta, err := InstantiateLeft(g, c2, alpha, a.Body)
		if err != nil {
			return nil, err
		}
		return delta.Peel(ctx.IsUVar(a.Name)), nil

	default:
		return nil, errInstantiation("no InstantiateLeft rule applies", a)
	}
}

// InstantiateRight solves A :≤ α̂ under c. Mirror image of InstantiateLeft.
func InstantiateRight(g *fresh.Generator, c *ctx.Context, a synx.Type, alpha synx.Name) (*ctx.Context, *Error) {
	g.Logf("instantiate_r %s := %s^", a.String(), alpha)
	if synx.IsMonotype(a) {
		post, pre, ok := c.Split(ctx.IsEVar(alpha))
		if !ok {
			return nil, errUnboundExistential(alpha)
		}
		if ctx.WellFormed(pre, a) {
			return ctx.Rebuild(post, pre.Push(ctx.NSolved{Name: alpha, Type: a})), nil
		}
	}

	switch a := a.(type) {
	case synx.TEVar:
		postB, preB, ok := c.Split(ctx.IsEVar(a.Name))
		if !ok {
			return nil, errUnboundExistential(a.Name)
		}
		if !preB.HasEVar(alpha) {
			return nil, errInstantiation("InstRReach: target existential not declared before the source", a)
		}
		return ctx.Rebuild(postB, preB.Push(ctx.NSolved{Name: a.Name, Type: synx.TEVar{Name: alpha}})), nil

	case synx.TFun:
		post, pre, ok := c.Split(ctx.IsEVar(alpha))
		if !ok {
			return nil, errUnboundExistential(alpha)
		}
		a1 := g.Fresh("α̂")
		a2 := g.Fresh("α̂")
		mid := pre.
			Push(ctx.NSolved{Name: alpha, Type: synx.TFun{Domain: synx.TEVar{Name: a1}, Codomain: synx.TEVar{Name: a2}}}).
			Push(ctx.NEVar{Name: a1}).
			Push(ctx.NEVar{Name: a2})
		newCtx := ctx.Rebuild(post, mid)

		theta, err := InstantiateLeft(g, newCtx, a1, a.Domain)
		if err != nil {
			return nil, err
		}
		codomain, aerr := ctx.Apply(theta, a.Codomain)
		if aerr != nil {
			return nil, fromStructural(aerr)
		}
		return InstantiateRight(g, theta, codomain, a2)

	case synx.TForall:
		// InstRAllL: open the quantifier with a fresh existential under a
		// marker so only what this sub-derivation introduces gets peeled.
		cHat := g.Fresh("ĉ")
		c2 := c.Push(ctx.NMarker{Name: cHat}).Push(ctx.NEVar{Name: cHat})
		bodySub := ctx.Subst(synx.TEVar{Name: cHat}, synx.TUVar{Name: a.Name}, a.Body)
		delta, err := InstantiateRight(g, c2, bodySub, alpha)
		if err != nil {
			return nil, err
		}
		return delta.Peel(ctx.IsMarker(cHat)), nil

	default:
		return nil, errInstantiation("no InstantiateRight rule applies", a)
	}
}
