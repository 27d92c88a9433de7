// Package fresh provides the monotonic fresh-name generator threaded
// through a single top-level bidirectional-inference invocation (spec.md
// §4.2). Unlike the teacher's package-level typeVarCounter, this is an
// instance owned by one call graph — see DESIGN.md for why.
package fresh

import (
	"fmt"
	"io"

	"github.com/polylambda/bidi/internal/synx"
)

// Generator is a counter that New sets to 1, so the first allocated name
// ends in "1" (spec.md §4.6). It also carries the
// optional advisory tracer described in spec.md §6: when Trace is set,
// rule applications are logged to it but nothing about the result depends
// on whether tracing is on.
type Generator struct {
	counter int
	Trace   io.Writer
}

// New returns a Generator ready for a top-level inference call.
func New() *Generator {
	return &Generator{counter: 1}
}

// Fresh returns prefix concatenated with the current counter value and
// increments the counter.
func (g *Generator) Fresh(prefix string) synx.Name {
	n := synx.NewName(fmt.Sprintf("%s%d", prefix, g.counter))
	g.counter++
	return n
}

// Logf writes an advisory trace line if g.Trace is set; otherwise it is a
// no-op. Trace output is diagnostic only and never affects control flow.
func (g *Generator) Logf(format string, args ...interface{}) {
	if g.Trace == nil {
		return
	}
	fmt.Fprintf(g.Trace, format+"\n", args...)
}
