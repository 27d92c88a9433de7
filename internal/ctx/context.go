package ctx

import "strings"

// Context is an ordered, persistent sequence of Notes; the nil *Context is
// the empty context. Each step in the algorithm returns a new Context —
// nothing here ever aliasing-mutates a Context handed to a caller.
type Context struct {
	note Note
	rest *Context
}

// Empty is the empty context.
var Empty *Context

// Push prepends n to the head of c (the "append to the right" of the
// paper's left-to-right contexts — see spec.md §3's note on the reversed
// convention this design uses throughout).
func (c *Context) Push(n Note) *Context {
	return &Context{note: n, rest: c}
}

// PushAll pushes the notes of ns from last to first, so that ns[0] ends up
// newest (on top). Callers pass ns already in newest-first order (as Split
// returns its post slice) and PushAll restores that order on top of c.
func (c *Context) PushAll(ns []Note) *Context {
	out := c
	for i := len(ns) - 1; i >= 0; i-- {
		out = out.Push(ns[i])
	}
	return out
}

// Notes returns the notes of c from newest to oldest, for display/testing.
func (c *Context) Notes() []Note {
	var out []Note
	for cur := c; cur != nil; cur = cur.rest {
		out = append(out, cur.note)
	}
	return out
}

func (c *Context) String() string {
	notes := c.Notes()
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = n.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Split returns (post, pre, true) where post is the sequence of notes newer
// than the first note matching pred (newest-first, preserving order) and
// pre is the context of notes older than it; the matching note itself is
// excluded from both. Returns (nil, nil, false) if no note matches.
func (c *Context) Split(pred func(Note) bool) (post []Note, pre *Context, ok bool) {
	for cur := c; cur != nil; cur = cur.rest {
		if pred(cur.note) {
			return post, cur.rest, true
		}
		post = append(post, cur.note)
	}
	return nil, nil, false
}

// Peel returns the suffix of c strictly older than the first note matching
// pred. Returns the empty context if no note matches (spec.md §4.1: "peel
// ... Returns empty if N is absent").
func (c *Context) Peel(pred func(Note) bool) *Context {
	_, pre, ok := c.Split(pred)
	if !ok {
		return Empty
	}
	return pre
}

// Rebuild reconstructs a context from a post slice (newest-first, as
// returned by Split) laid on top of pre — the inverse of Split, used after
// modifying the note that used to sit between post and pre.
func Rebuild(post []Note, pre *Context) *Context {
	return pre.PushAll(post)
}

// Has reports whether any note in c matches pred.
func (c *Context) Has(pred func(Note) bool) bool {
	for cur := c; cur != nil; cur = cur.rest {
		if pred(cur.note) {
			return true
		}
	}
	return false
}
