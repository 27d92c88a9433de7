package bidi

import (
	"strings"
	"testing"

	"github.com/polylambda/bidi/internal/ctx"
	"github.com/polylambda/bidi/internal/synx"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"unbound variable", errUnboundVariable("x"), "unbound_variable"},
		{"unbound existential", errUnboundExistential("a1"), "unbound_existential"},
		{"ill-formed", errIllFormed(synx.TUVar{Name: "z"}), "ill_formed_type"},
		{"instantiation failure", errInstantiation("no rule applies", synx.TUnit{}), "instantiation_failure"},
		{"subtype mismatch", errSubtypeMismatch(synx.TUnit{}, synx.TUVar{Name: "a"}), "subtype_mismatch"},
		{"non applicable", errNonApplicable(synx.TUnit{}), "non_applicable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !strings.Contains(tc.err.Error(), tc.want) {
				t.Errorf("Error() = %q, want substring %q", tc.err.Error(), tc.want)
			}
		})
	}
}

func TestFromStructuralWrapsInvariantViolation(t *testing.T) {
	err := fromStructural(&ctx.StructuralError{Msg: "multiple solutions for a^"})
	if err == nil || err.Kind != InvariantViolation {
		t.Fatalf("fromStructural = %v, want InvariantViolation", err)
	}
	if err.Message != "multiple solutions for a^" {
		t.Errorf("fromStructural message = %q", err.Message)
	}
}

func TestFromStructuralNil(t *testing.T) {
	if fromStructural(nil) != nil {
		t.Error("fromStructural(nil) should be nil")
	}
}
