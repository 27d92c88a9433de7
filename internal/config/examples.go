// Package config loads named example terms from a YAML fixture, the same
// role the teacher's internal/eval_harness.BenchmarkSpec plays for prompt
// specs: a single typed document shared by the CLI and by tests instead of
// scattering string literals across _test.go files.
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Example is one named surface term, with an optional expected elaborated
// type used to assert the checker's result without re-deriving it by hand.
type Example struct {
	Name       string `yaml:"name"`
	Source     string `yaml:"source"`
	ExpectType string `yaml:"expect_type"`
	ExpectFail bool   `yaml:"expect_fail"`
}

// Document is the top-level shape of an examples YAML file.
type Document struct {
	Examples []Example `yaml:"examples"`
}

// LoadExamples reads and validates a YAML document of Examples from r.
func LoadExamples(r io.Reader) ([]Example, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read examples: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: failed to parse examples YAML: %w", err)
	}

	for i, ex := range doc.Examples {
		if ex.Name == "" {
			return nil, fmt.Errorf("config: example at index %d missing required field: name", i)
		}
		if ex.Source == "" {
			return nil, fmt.Errorf("config: example %q missing required field: source", ex.Name)
		}
	}

	return doc.Examples, nil
}
