// Package frag builds parameterized SQL statements out of composable
// fragments. A fragment pairs a piece of SQL text containing `?` placeholder
// markers with the ordered parameter values bound to those markers, so
// callers never interpolate untrusted values into SQL text. Fragments are
// concatenated into a full statement and finalized once into a query string
// with Postgres-style $N positional references plus the parameter list in
// marker order.
package frag

import (
	"fmt"
	"strings"

	"github.com/Konsultn-Engineering/sqldomain/dialect"
)

// Marker is the reserved placeholder character. It has no escape syntax:
// every occurrence in fragment text is treated as a placeholder, so a
// literal `?` must never appear in fragment text. Identifiers that cannot be
// bound as parameters go through Identifier instead.
const Marker = '?'

var pg = dialect.NewPostgresDialect()

// Fragment pairs SQL text with the ordered parameter values bound to its
// placeholder markers. Parameter order tracks marker order left to right.
//
// A fragment is a single-owner value: build it, append to it, finalize it
// once. Concurrent mutation requires external synchronization.
type Fragment struct {
	text      string
	params    []Value
	finalized string
}

// New creates a fragment from raw SQL text and zero or more parameter
// values. Marker/parameter correspondence is not checked here; fragments
// are routinely built before all of their markers exist. The mismatch is
// caught at Finalize.
func New(text string, params ...Value) *Fragment {
	f := &Fragment{text: text}
	if len(params) > 0 {
		f.params = append(f.params, params...)
	}
	return f
}

// Append joins other onto f with a single separating space and concatenates
// the parameter lists in order, never reordering or dropping values. An
// empty side introduces no separator, so the empty fragment is an identity
// for composition. Appending to a finalized fragment is unsupported.
func (f *Fragment) Append(other *Fragment) *Fragment {
	switch {
	case f.text == "":
		f.text = other.text
	case other.text != "":
		f.text += " " + other.text
	}
	f.params = append(f.params, other.params...)
	return f
}

// Query returns the accumulated SQL text with placeholder markers intact.
func (f *Fragment) Query() string {
	return f.text
}

// Params returns a copy of the parameter list in marker order.
func (f *Fragment) Params() []Value {
	out := make([]Value, len(f.params))
	copy(out, f.params)
	return out
}

// Finalize rewrites every placeholder marker, left to right, into a 1-based
// positional reference ($1, $2, ...) and stores the result for Formatted.
// All other bytes are copied unchanged. It fails when the marker count does
// not match the number of bound parameters; the mismatch would otherwise
// surface as silently mis-numbered bindings at execution time. Finalize is
// the terminal transition on a fragment: compose first, finalize last.
func (f *Fragment) Finalize() (*Fragment, error) {
	markers := strings.Count(f.text, string(Marker))
	if markers != len(f.params) {
		return nil, fmt.Errorf("%w: %d markers, %d parameters", ErrParamCount, markers, len(f.params))
	}

	var sb strings.Builder
	sb.Grow(len(f.text) + 2*markers)
	n := 0
	for i := 0; i < len(f.text); i++ {
		if f.text[i] == Marker {
			n++
			sb.WriteString(pg.Placeholder(n))
			continue
		}
		sb.WriteByte(f.text[i])
	}
	f.finalized = sb.String()
	return f, nil
}

// Formatted returns the finalized query text. Empty until Finalize succeeds.
func (f *Fragment) Formatted() string {
	return f.finalized
}

// Identifier wraps a table or column name in double quotes so it can be
// spliced into fragment text. Most backends cannot bind identifiers as
// parameters, so they travel in the text instead. Embedded quote characters
// are not escaped; names are expected to come from trusted schema metadata,
// not user input.
func Identifier(name string) string {
	return pg.QuoteIdentifier(name)
}
