package ctx

import "github.com/polylambda/bidi/internal/synx"

// WellFormed returns true iff every UVar in A has a matching NUVar note in
// c, and every EVar has either a matching NEVar or NSolved note.
//
// Unlike the source this is grounded on (spec.md §9's "open question —
// check_malformed traversal"), both sides of a Fun are always checked
// independently; a mislabeled recursive call that only ever checks one side
// is a defect, not a behavior to replicate.
func WellFormed(c *Context, a synx.Type) bool {
	switch a := a.(type) {
	case synx.TUnit:
		return true
	case synx.TUVar:
		return c.HasUVar(a.Name)
	case synx.TEVar:
		return c.HasEVar(a.Name) || c.HasSolved(a.Name)
	case synx.TForall:
		return WellFormed(c.Push(NUVar{Name: a.Name}), a.Body)
	case synx.TFun:
		domOK := WellFormed(c, a.Domain)
		codOK := WellFormed(c, a.Codomain)
		return domOK && codOK
	default:
		return false
	}
}
