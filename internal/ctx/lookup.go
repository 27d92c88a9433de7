package ctx

import (
	"fmt"

	"github.com/polylambda/bidi/internal/synx"
)

// StructuralError indicates that a context-structure invariant (spec.md §3
// inv. 1, §7 kind 7) was violated: multiple notes matched a lookup that
// must be unique (Assump, Solution). This is always an implementation bug,
// never a type error in the input program.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string { return e.Msg }

// Assump returns the unique NAssump note for x in c, or (nil, false, nil)
// if absent. Multiple matches return a StructuralError.
func (c *Context) Assump(x synx.Name) (synx.Type, bool, error) {
	var found synx.Type
	count := 0
	for cur := c; cur != nil; cur = cur.rest {
		if a, ok := cur.note.(NAssump); ok && a.Var == x {
			found = a.Type
			count++
		}
	}
	switch count {
	case 0:
		return nil, false, nil
	case 1:
		return found, true, nil
	default:
		return nil, false, &StructuralError{Msg: fmt.Sprintf("multiple assumptions for %s in context", x)}
	}
}

// Solution returns the unique NSolved note for alpha in c, or (nil, false,
// nil) if absent. Multiple matches return a StructuralError.
func (c *Context) Solution(alpha synx.Name) (synx.Type, bool, error) {
	var found synx.Type
	count := 0
	for cur := c; cur != nil; cur = cur.rest {
		if s, ok := cur.note.(NSolved); ok && s.Name == alpha {
			found = s.Type
			count++
		}
	}
	switch count {
	case 0:
		return nil, false, nil
	case 1:
		return found, true, nil
	default:
		return nil, false, &StructuralError{Msg: fmt.Sprintf("multiple solutions for %s^ in context", alpha)}
	}
}
