package bidi

import (
	"github.com/polylambda/bidi/internal/ctx"
	"github.com/polylambda/bidi/internal/fresh"
	"github.com/polylambda/bidi/internal/synx"
)

// Subtype derives A <: B under c, producing an output context. The cases
// below are tried in exactly the order of spec.md §4.4's table; that order
// is load-bearing — in particular <:∀L must be tried before <:InstL/R when
// the left side is a universal.
func Subtype(g *fresh.Generator, c *ctx.Context, a, b synx.Type) (*ctx.Context, *Error) {
	g.Logf("subtype %s <: %s", a.String(), b.String())
	// <:Unit
	if _, ok := a.(synx.TUnit); ok {
		if _, ok := b.(synx.TUnit); ok {
			return c, nil
		}
	}

	// <:Var
	if av, ok := a.(synx.TUVar); ok {
		if bv, ok := b.(synx.TUVar); ok && av.Name == bv.Name {
			if !c.HasUVar(av.Name) {
				return nil, errSubtypeMismatch(a, b)
			}
			return c, nil
		}
	}

	// <:Exvar
	if av, ok := a.(synx.TEVar); ok {
		if bv, ok := b.(synx.TEVar); ok && av.Name == bv.Name {
			if !c.HasEVar(av.Name) {
				return nil, errSubtypeMismatch(a, b)
			}
			return c, nil
		}
	}

	// <:→ — contravariant in the domain.
	if af, ok := a.(synx.TFun); ok {
		if bf, ok := b.(synx.TFun); ok {
			theta, err := Subtype(g, c, bf.Domain, af.Domain)
			if err != nil {
				return nil, err
			}
			a2, aerr := ctx.Apply(theta, af.Codomain)
			if aerr != nil {
				return nil, fromStructural(aerr)
			}
			b2, berr := ctx.Apply(theta, bf.Codomain)
			if berr != nil {
				return nil, fromStructural(berr)
			}
			return Subtype(g, theta, a2, b2)
		}
	}

	// <:∀L — tried before <:InstL even though A may be an existential in
	// other branches; type-switch order keeps this unconditional on B.
	if af, ok := a.(synx.TForall); ok {
		alphaHat := g.Fresh("α̂")
		c2 := c.Push(ctx.NMarker{Name: alphaHat}).Push(ctx.NEVar{Name: alphaHat})
		substituted := ctx.Subst(synx.TEVar{Name: alphaHat}, synx.TUVar{Name: af.Name}, af.Body)
		delta, err := Subtype(g, c2, substituted, b)
		if err != nil {
			return nil, err
		}
		return delta.Peel(ctx.IsMarker(alphaHat)), nil
	}

	// <:∀R
	if bf, ok := b.(synx.TForall); ok {
		c2 := c.Push(ctx.NUVar{Name: bf.Name})
		delta, err := Subtype(g, c2, a, bf.Body)
		if err != nil {
			return nil, err
		}
		return delta.Peel(ctx.IsUVar(bf.Name)), nil
	}

	// <:InstL
	if av, ok := a.(synx.TEVar); ok && c.HasEVar(av.Name) {
		if !synx.FreeExistentials(b)[av.Name] {
			return InstantiateLeft(g, c, av.Name, b)
		}
	}

	// <:InstR
	if bv, ok := b.(synx.TEVar); ok && c.HasEVar(bv.Name) {
		if !synx.FreeExistentials(a)[bv.Name] {
			return InstantiateRight(g, c, a, bv.Name)
		}
	}

	return nil, errSubtypeMismatch(a, b)
}
