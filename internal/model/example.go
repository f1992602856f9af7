package model

import "fmt"

// Span is a half-open [Start, End) token index range. A span is always tied
// to the coordinate system of the sequence it was computed against
// (whitespace tokens, subword tokens, or padded tensor positions); each
// processing stage returns a new Span rather than mutating one in place.
type Span struct {
	Start int
	End   int
}

// Len returns the number of tokens covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Shift returns a copy of the span moved right by n positions.
func (s Span) Shift(n int) Span {
	return Span{Start: s.Start + n, End: s.End + n}
}

// Valid reports whether the span is non-empty and within [0, n).
func (s Span) Valid(n int) bool {
	return s.Start >= 0 && s.Start < s.End && s.End <= n
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// RawExample is a single relation-classification example as produced by a
// dataset reader. Entity spans are in whitespace-token coordinates over Text.
type RawExample struct {
	GUID     string
	Text     string
	TextPair string // optional second sequence; no entity spans
	Label    string // empty for inference-only examples
	Entities [2]Span
}

// OutputMode selects how an example's label is interpreted.
type OutputMode string

const (
	Classification OutputMode = "classification"
	Regression     OutputMode = "regression"
)
