// Package ctx implements the ordered typing context of spec.md §3–§4.1: a
// sequence of Notes whose head is the most recently added note. This
// mirrors the teacher's internal/types/env.go parent-linked TypeEnv chain,
// generalized from a name→type map to an ordered sequence of tagged notes,
// which is what the paper's context actually is.
package ctx

import (
	"fmt"

	"github.com/polylambda/bidi/internal/synx"
)

// Note is one entry in a Context: UVar, EVar, Solved, Marker, or Assump.
type Note interface {
	isNote()
	String() string
}

// NUVar records that a rigid universal type variable is in scope.
type NUVar struct{ Name synx.Name }

func (NUVar) isNote()        {}
func (n NUVar) String() string { return fmt.Sprintf("%s", n.Name) }

// NEVar records that an unsolved existential is in scope.
type NEVar struct{ Name synx.Name }

func (NEVar) isNote()        {}
func (n NEVar) String() string { return fmt.Sprintf("%s^", n.Name) }

// NSolved records that existential Name has been solved to monotype Type.
type NSolved struct {
	Name synx.Name
	Type synx.Type
}

func (NSolved) isNote() {}
func (n NSolved) String() string {
	return fmt.Sprintf("%s^ = %s", n.Name, n.Type.String())
}

// NMarker is a scope delimiter (▶α̂) used to discard notes introduced after
// a specific point.
type NMarker struct{ Name synx.Name }

func (NMarker) isNote()        {}
func (n NMarker) String() string { return fmt.Sprintf("▶%s", n.Name) }

// NAssump records that term variable Var has type Type.
type NAssump struct {
	Var  synx.Name
	Type synx.Type
}

func (NAssump) isNote() {}
func (n NAssump) String() string {
	return fmt.Sprintf("%s : %s", n.Var, n.Type.String())
}
