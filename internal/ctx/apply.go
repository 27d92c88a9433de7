package ctx

import "github.com/polylambda/bidi/internal/synx"

// Apply returns a with every existential variable replaced by its solution
// under c, recursively until fixed point. Forall and Fun are traversed;
// other cases are identity. Returns a StructuralError if c's Solved notes
// violate the uniqueness invariant.
func Apply(c *Context, a synx.Type) (synx.Type, error) {
	switch a := a.(type) {
	case synx.TEVar:
		sol, ok, err := c.Solution(a.Name)
		if err != nil {
			return nil, err
		}
		if !ok {
			return a, nil
		}
		return Apply(c, sol)
	case synx.TForall:
		body, err := Apply(c, a.Body)
		if err != nil {
			return nil, err
		}
		return synx.TForall{Name: a.Name, Body: body}, nil
	case synx.TFun:
		dom, err := Apply(c, a.Domain)
		if err != nil {
			return nil, err
		}
		cod, err := Apply(c, a.Codomain)
		if err != nil {
			return nil, err
		}
		return synx.TFun{Domain: dom, Codomain: cod}, nil
	default:
		return a, nil
	}
}
