// Package bidi implements the instantiation engine, subtyping, and the
// bidirectional check/infer/infer-app checker of spec.md §4.3–§4.6: the
// strongly-connected recursive core that everything else in this repo
// feeds or is fed by.
package bidi

import (
	"fmt"

	"github.com/polylambda/bidi/internal/ctx"
	"github.com/polylambda/bidi/internal/synx"
)

// Kind enumerates the error taxonomy of spec.md §7.
type Kind string

const (
	UnboundVariable      Kind = "unbound_variable"
	UnboundExistential   Kind = "unbound_existential"
	IllFormedType        Kind = "ill_formed_type"
	InstantiationFailure Kind = "instantiation_failure"
	SubtypeMismatch      Kind = "subtype_mismatch"
	NonApplicable        Kind = "non_applicable"
	InvariantViolation   Kind = "invariant_violation"
)

// Error is the single fatal-failure type returned by every judgment in this
// package. All errors are terminal; nothing in the core recovers from one.
type Error struct {
	Kind    Kind
	Message string
	Type1   synx.Type
	Type2   synx.Type
}

func (e *Error) Error() string {
	switch {
	case e.Type1 != nil && e.Type2 != nil:
		return fmt.Sprintf("%s: %s (%s vs %s)", e.Kind, e.Message, e.Type1.String(), e.Type2.String())
	case e.Type1 != nil:
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Type1.String())
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func errUnboundVariable(name synx.Name) *Error {
	return &Error{Kind: UnboundVariable, Message: fmt.Sprintf("unbound variable: %s", name)}
}

func errUnboundExistential(name synx.Name) *Error {
	return &Error{Kind: UnboundExistential, Message: fmt.Sprintf("unbound existential: %s^", name)}
}

func errIllFormed(t synx.Type) *Error {
	return &Error{Kind: IllFormedType, Message: "type is not well-formed under context", Type1: t}
}

func errInstantiation(msg string, a synx.Type) *Error {
	return &Error{Kind: InstantiationFailure, Message: msg, Type1: a}
}

func errSubtypeMismatch(a, b synx.Type) *Error {
	return &Error{Kind: SubtypeMismatch, Message: "no subtyping rule applies", Type1: a, Type2: b}
}

func errNonApplicable(fn synx.Type) *Error {
	return &Error{Kind: NonApplicable, Message: "type is not a function, existential, or quantifier", Type1: fn}
}

// fromStructural converts a ctx.StructuralError into an *Error of kind
// InvariantViolation. A nil input yields nil; any other non-nil error is
// also wrapped as InvariantViolation with its Error() text as the message.
func fromStructural(err error) *Error {
	if err == nil {
		return nil
	}
	if se, ok := err.(*ctx.StructuralError); ok {
		return &Error{Kind: InvariantViolation, Message: se.Error()}
	}
	return &Error{Kind: InvariantViolation, Message: err.Error()}
}
