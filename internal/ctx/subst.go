package ctx

import "github.com/polylambda/bidi/internal/synx"

// Subst returns a with every occurrence of type u (compared structurally)
// replaced by t. It traverses into function and quantifier bodies; binders
// inside Forall are not alpha-renamed, since the fresh-name generator
// guarantees they are already unique.
func Subst(t, u, a synx.Type) synx.Type {
	if a.Equals(u) {
		return t
	}
	switch a := a.(type) {
	case synx.TForall:
		return synx.TForall{Name: a.Name, Body: Subst(t, u, a.Body)}
	case synx.TFun:
		return synx.TFun{Domain: Subst(t, u, a.Domain), Codomain: Subst(t, u, a.Codomain)}
	default:
		return a
	}
}
