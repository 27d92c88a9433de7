package ctx

import "github.com/polylambda/bidi/internal/synx"

// IsUVar matches the NUVar note named name.
func IsUVar(name synx.Name) func(Note) bool {
	return func(n Note) bool {
		u, ok := n.(NUVar)
		return ok && u.Name == name
	}
}

// IsEVar matches the NEVar note named name.
func IsEVar(name synx.Name) func(Note) bool {
	return func(n Note) bool {
		e, ok := n.(NEVar)
		return ok && e.Name == name
	}
}

// IsSolved matches the NSolved note named name.
func IsSolved(name synx.Name) func(Note) bool {
	return func(n Note) bool {
		s, ok := n.(NSolved)
		return ok && s.Name == name
	}
}

// IsMarker matches the NMarker note named name.
func IsMarker(name synx.Name) func(Note) bool {
	return func(n Note) bool {
		m, ok := n.(NMarker)
		return ok && m.Name == name
	}
}

// HasUVar reports whether c has an NUVar note named name in scope.
func (c *Context) HasUVar(name synx.Name) bool { return c.Has(IsUVar(name)) }

// HasEVar reports whether c has an NEVar note named name in scope.
func (c *Context) HasEVar(name synx.Name) bool { return c.Has(IsEVar(name)) }

// HasSolved reports whether c has an NSolved note named name.
func (c *Context) HasSolved(name synx.Name) bool { return c.Has(IsSolved(name)) }

// IsAssump matches the NAssump note binding term variable name.
func IsAssump(name synx.Name) func(Note) bool {
	return func(n Note) bool {
		a, ok := n.(NAssump)
		return ok && a.Var == name
	}
}
