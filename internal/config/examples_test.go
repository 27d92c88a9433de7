package config

import (
	"os"
	"strings"
	"testing"

	"github.com/polylambda/bidi/internal/bidi"
	"github.com/polylambda/bidi/internal/surface"
	"github.com/polylambda/bidi/internal/synx"
)

func TestLoadExamples(t *testing.T) {
	f, err := os.Open("testdata/examples.yaml")
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer f.Close()

	examples, err := LoadExamples(f)
	if err != nil {
		t.Fatalf("LoadExamples failed: %v", err)
	}
	if len(examples) == 0 {
		t.Fatal("expected at least one example, got none")
	}
	for _, ex := range examples {
		if ex.Name == "" {
			t.Errorf("example has empty name: %+v", ex)
		}
		if ex.Source == "" {
			t.Errorf("example %q has empty source", ex.Name)
		}
	}
}

func TestLoadExamples_MissingRequired(t *testing.T) {
	cases := []string{
		`examples:
  - source: "()"
`,
		`examples:
  - name: no-source
`,
	}
	for _, content := range cases {
		_, err := LoadExamples(strings.NewReader(content))
		if err == nil {
			t.Errorf("expected error for content %q, got nil", content)
		}
	}
}

// TestExamplesTypecheck runs every fixture example through the surface
// reader and the core checker, confirming each one behaves as its
// expect_type/expect_fail field declares. This is the integration point
// between internal/config, internal/surface and internal/bidi.
func TestExamplesTypecheck(t *testing.T) {
	f, err := os.Open("testdata/examples.yaml")
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer f.Close()

	examples, err := LoadExamples(f)
	if err != nil {
		t.Fatalf("LoadExamples failed: %v", err)
	}

	for _, ex := range examples {
		ex := ex
		t.Run(ex.Name, func(t *testing.T) {
			term, err := surface.Parse(ex.Source)
			if err != nil {
				t.Fatalf("surface.Parse(%q) failed: %v", ex.Source, err)
			}

			elaborated, typeErr := bidi.InferExpression(term)
			if ex.ExpectFail {
				if typeErr == nil {
					t.Fatalf("expected a type error for %q, got none", ex.Source)
				}
				return
			}
			if typeErr != nil {
				t.Fatalf("unexpected type error for %q: %v", ex.Source, typeErr)
			}

			got := synx.TypeOf(elaborated).String()
			if ex.ExpectType != "" && got != ex.ExpectType && !alphaEquivalentForall(got, ex.ExpectType) {
				t.Errorf("example %q: type = %q, want %q", ex.Name, got, ex.ExpectType)
			}
		})
	}
}

// alphaEquivalentForall loosely tolerates a different bound-variable name
// for fresh-generated foralls (e.g. "forall a1. a1 -> a1" vs "forall a. a ->
// a"): it checks the shape after stripping the specific quantified name.
func alphaEquivalentForall(got, want string) bool {
	strip := func(s string) string {
		if !strings.HasPrefix(s, "forall ") {
			return s
		}
		rest := s[len("forall "):]
		dot := strings.Index(rest, ".")
		if dot == -1 {
			return s
		}
		name := rest[:dot]
		body := rest[dot+1:]
		return strings.ReplaceAll(strings.TrimSpace(body), name, "")
	}
	return strip(got) == strip(want)
}
