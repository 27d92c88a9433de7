package ctx

import "github.com/polylambda/bidi/internal/synx"

// ApplyExpr traverses e and applies Apply(c, ·) to every type slot,
// constructing a fresh term rather than mutating e (spec.md §9's note on
// replacing the source's mutable-slot elaboration with fresh term nodes).
func ApplyExpr(c *Context, e synx.Term) (synx.Term, error) {
	switch e := e.(type) {
	case synx.EUnit:
		return e, nil
	case synx.EVar:
		t, err := Apply(c, e.Type)
		if err != nil {
			return nil, err
		}
		return synx.EVar{Name: e.Name, Type: t}, nil
	case synx.EAbs:
		argType, err := Apply(c, e.ArgType)
		if err != nil {
			return nil, err
		}
		body, err := ApplyExpr(c, e.Body)
		if err != nil {
			return nil, err
		}
		return synx.EAbs{ArgName: e.ArgName, ArgType: argType, Body: body}, nil
	case synx.EApp:
		fn, err := ApplyExpr(c, e.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := ApplyExpr(c, e.Arg)
		if err != nil {
			return nil, err
		}
		result, err := Apply(c, e.Result)
		if err != nil {
			return nil, err
		}
		return synx.EApp{Fn: fn, Arg: arg, Result: result}, nil
	case synx.EAnn:
		body, err := ApplyExpr(c, e.Body)
		if err != nil {
			return nil, err
		}
		declared, err := Apply(c, e.Declared)
		if err != nil {
			return nil, err
		}
		return synx.EAnn{Body: body, Declared: declared}, nil
	case synx.ELet:
		bound, err := ApplyExpr(c, e.Bound)
		if err != nil {
			return nil, err
		}
		body, err := ApplyExpr(c, e.Body)
		if err != nil {
			return nil, err
		}
		return synx.ELet{Name: e.Name, Bound: bound, Body: body}, nil
	default:
		return e, nil
	}
}
