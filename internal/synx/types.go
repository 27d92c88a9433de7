// Package synx holds the value-level representations of types and terms
// for the bidirectional checker: tagged variants with no behavior beyond
// String() and structural Equals(), the way the teacher's own AST packages
// carry data and nothing else.
package synx

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Name is an opaque, structurally-compared identifier. Construction always
// normalizes to NFC so that source identifiers compare equal independent of
// combining-character representation.
type Name string

// NewName normalizes s to NFC and wraps it as a Name.
func NewName(s string) Name {
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	return Name(s)
}

func (n Name) String() string { return string(n) }

// Type is the tagged variant of spec.md §3: Unit, UVar, EVar, Forall, Fun.
type Type interface {
	isType()
	String() string
	Equals(Type) bool
}

// TUnit is the unit type.
type TUnit struct{}

func (TUnit) isType()          {}
func (TUnit) String() string   { return "Unit" }
func (TUnit) Equals(o Type) bool {
	_, ok := o.(TUnit)
	return ok
}

// TUVar is a rigid universally-quantified type variable.
type TUVar struct{ Name Name }

func (TUVar) isType()        {}
func (t TUVar) String() string { return string(t.Name) }
func (t TUVar) Equals(o Type) bool {
	ov, ok := o.(TUVar)
	return ok && ov.Name == t.Name
}

// TEVar is an existential (unification) variable.
type TEVar struct{ Name Name }

func (TEVar) isType()        {}
func (t TEVar) String() string { return string(t.Name) }
func (t TEVar) Equals(o Type) bool {
	ov, ok := o.(TEVar)
	return ok && ov.Name == t.Name
}

// TForall is universal quantification, binding Name in Body.
type TForall struct {
	Name Name
	Body Type
}

func (TForall) isType() {}
func (t TForall) String() string {
	return fmt.Sprintf("forall %s. %s", t.Name, t.Body.String())
}
func (t TForall) Equals(o Type) bool {
	ov, ok := o.(TForall)
	return ok && ov.Name == t.Name && t.Body.Equals(ov.Body)
}

// TFun is a function type.
type TFun struct {
	Domain   Type
	Codomain Type
}

func (TFun) isType() {}
func (t TFun) String() string {
	dom := t.Domain.String()
	if _, ok := t.Domain.(TFun); ok {
		dom = "(" + dom + ")"
	}
	return fmt.Sprintf("%s -> %s", dom, t.Codomain.String())
}
func (t TFun) Equals(o Type) bool {
	ov, ok := o.(TFun)
	return ok && t.Domain.Equals(ov.Domain) && t.Codomain.Equals(ov.Codomain)
}

// IsMonotype reports whether t contains no Forall node.
func IsMonotype(t Type) bool {
	switch t := t.(type) {
	case TForall:
		return false
	case TFun:
		return IsMonotype(t.Domain) && IsMonotype(t.Codomain)
	default:
		return true
	}
}

// FreeExistentials returns the set of existential-variable names free in t.
func FreeExistentials(t Type) map[Name]bool {
	free := make(map[Name]bool)
	collectFreeExistentials(t, free)
	return free
}

func collectFreeExistentials(t Type, free map[Name]bool) {
	switch t := t.(type) {
	case TEVar:
		free[t.Name] = true
	case TForall:
		collectFreeExistentials(t.Body, free)
	case TFun:
		collectFreeExistentials(t.Domain, free)
		collectFreeExistentials(t.Codomain, free)
	}
}

// TypeString is a small helper used by error messages and tests; it renders
// nil as "<unset>" instead of panicking.
func TypeString(t Type) string {
	if t == nil {
		return "<unset>"
	}
	return t.String()
}
