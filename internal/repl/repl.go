// Package repl implements an interactive read-typecheck-print loop over the
// surface notation, grounded on the teacher's internal/repl.REPL: a
// liner-backed prompt with persistent history and colorized result output.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/polylambda/bidi/internal/bidi"
	"github.com/polylambda/bidi/internal/surface"
	"github.com/polylambda/bidi/internal/synx"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

// Config holds REPL-wide options.
type Config struct {
	// Trace, when true, prints each rule application to stderr as the
	// checker runs (spec.md §6's advisory tracing, surfaced here).
	Trace bool
}

// REPL is a line-editing loop that reads one surface term per line and
// reports its inferred, fully-elaborated type.
type REPL struct {
	config  *Config
	history []string
}

// New creates a REPL with default configuration.
func New() *REPL {
	return NewWithConfig(&Config{})
}

// NewWithConfig creates a REPL with the given configuration.
func NewWithConfig(cfg *Config) *REPL {
	if cfg == nil {
		cfg = &Config{}
	}
	return &REPL{config: cfg, history: []string{}}
}

const prompt = "bidi> "

// Start begins the interactive session, reading from a liner-backed
// terminal and writing the banner and results to out. The prompt is drawn
// by liner on the terminal, and history is saved to a file in os.TempDir().
func (r *REPL) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".bidicheck_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(out, "%s\n", bold("bidicheck"))
	fmt.Fprintln(out, dim("Enter a surface term to infer its type. :quit to exit."))
	fmt.Fprintln(out)

	for {
		input, err := line.Prompt(prompt)
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ":quit" || input == ":q" {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}

		line.AppendHistory(input)
		r.history = append(r.history, input)
		r.Eval(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

// Eval parses and typechecks a single line, writing the colorized result to
// out. It never returns an error: failures are reported through out, the
// same contract the teacher's REPL.ProcessExpression follows.
func (r *REPL) Eval(input string, out io.Writer) {
	term, err := surface.Parse(input)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("parse error"), err)
		return
	}

	var trace io.Writer
	if r.config.Trace {
		trace = os.Stderr
	}
	elaborated, typeErr := bidi.InferExpressionTraced(term, trace)
	if typeErr != nil {
		fmt.Fprintf(out, "%s: %s\n", red("type error"), typeErr.Error())
		return
	}

	fmt.Fprintf(out, "%s : %s\n", elaborated.String(), green(synx.TypeOf(elaborated).String()))
}

// History returns every line entered so far, oldest first.
func (r *REPL) History() []string {
	return append([]string(nil), r.history...)
}
