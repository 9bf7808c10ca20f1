// Package swc parses SWC morphology text into point records and
// reconnection annotations. Graph and geometry construction live in
// pkg/morph and pkg/geometry; this package only handles the line format.
package swc

import "fmt"

// Record is one SWC row: a skeleton point with a radius and a parent link.
type Record struct {
	N      int     `json:"n"` // node id, unique within a file
	T      int     `json:"t"` // structure type code
	X      float64 `json:"x"` // coordinates, usually micrometers
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	R      float64 `json:"r"`      // radius
	Parent int     `json:"parent"` // parent id, -1 for roots
	Line   int     `json:"line"`   // 1-based source line, informational
}

// IsRoot reports whether the record has no parent.
func (r Record) IsRoot() bool {
	return r.Parent == -1
}

// ParseResult holds the outcome of parsing one SWC source.
type ParseResult struct {
	Records       map[int]Record
	Reconnections [][2]int // id pairs from CYCLE_BREAK headers, ascending order
	Comments      []string
}

func (pr *ParseResult) String() string {
	return fmt.Sprintf("ParseResult(records=%d, reconnections=%d, comments=%d)",
		len(pr.Records), len(pr.Reconnections), len(pr.Comments))
}

// ParseError describes a failure to parse or validate SWC input.
type ParseError struct {
	Line int // 1-based source line, 0 for file-level failures
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("swc: %s", e.Msg)
	}
	return fmt.Sprintf("swc: line %d: %s", e.Line, e.Msg)
}

// ParseOptions controls validation during parsing.
type ParseOptions struct {
	// Strict enforces exactly 7 columns per row and checks that every
	// non-root parent id and every reconnection id refers to a defined
	// node. Geometric validation of reconnection pairs happens later, in
	// morph.BuildMerged.
	Strict bool
}

// DefaultParseOptions returns the options used by ParseString and ParseFile.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{Strict: true}
}
