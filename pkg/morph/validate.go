package morph

import (
	"fmt"
	"sort"
)

// ValidationSeverity indicates whether a validation finding blocks use of
// the model or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks use
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	ID       int // which node has the problem
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] node %d: %s", e.Severity, e.ID, e.Message)
}

// Validate runs structural checks on the directed model and returns all
// findings. An empty slice means the model is a well-formed forest. The
// checks mirror what ParentOf and PathToRoot surface lazily, so callers
// can reject bad input up front. Read-only; never mutates the model.
func Validate(m *Model) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateInDegree(m)...)
	errs = append(errs, validateAcyclic(m)...)
	errs = append(errs, validateRadii(m)...)
	return errs
}

// validateInDegree checks that no node has more than one parent.
func validateInDegree(m *Model) []ValidationError {
	var errs []ValidationError
	for _, id := range sortedNodeIDs(m) {
		if n := len(m.parents[id]); n > 1 {
			errs = append(errs, ValidationError{
				ID:       id,
				Message:  fmt.Sprintf("has %d parents; expected a tree/forest", n),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateAcyclic checks for cycles using DFS with 3-color marking.
// White (0) = unvisited, gray (1) = in current DFS path, black (2) = fully
// explored. A gray node reached during traversal means a cycle.
func validateAcyclic(m *Model) []ValidationError {
	const (
		white = iota
		gray
		black
	)

	color := make(map[int]int)
	var errs []ValidationError

	var visit func(id int) bool // true if cycle found
	visit = func(id int) bool {
		switch color[id] {
		case black:
			return false
		case gray:
			errs = append(errs, ValidationError{
				ID:       id,
				Message:  "part of a cycle",
				Severity: SeverityError,
			})
			return true
		}

		color[id] = gray
		for _, child := range m.children[id] {
			if visit(child) {
				return true
			}
		}
		color[id] = black
		return false
	}

	for _, id := range sortedNodeIDs(m) {
		if color[id] == white {
			if visit(id) {
				// One cycle error is sufficient; stop early.
				break
			}
		}
	}

	return errs
}

// validateRadii warns about negative radii. Zero radii are legal and
// produce degenerate (cap-suppressed) geometry downstream, so only
// negative values are flagged, and only as advisory findings.
func validateRadii(m *Model) []ValidationError {
	var errs []ValidationError
	for _, id := range sortedNodeIDs(m) {
		if m.nodes[id].Radius < 0 {
			errs = append(errs, ValidationError{
				ID:       id,
				Message:  fmt.Sprintf("negative radius %v", m.nodes[id].Radius),
				Severity: SeverityWarning,
			})
		}
	}
	return errs
}

func sortedNodeIDs(m *Model) []int {
	ids := make([]int, 0, len(m.nodes))
	for id := range m.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
