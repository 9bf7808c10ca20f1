package morph

import (
	"fmt"

	"github.com/jmrfox/swcviz/pkg/swc"
)

// StructuralError reports a defect in the graph structure: an undefined
// reference, a node with multiple parents, or a cycle in tree traversal.
type StructuralError struct {
	ID  int // offending node id
	Msg string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("morph: node %d: %s", e.ID, e.Msg)
}

// MergeError reports a reconnection pair whose geometric attributes differ
// beyond the caller's tolerance. Both records are carried in full so the
// input can be fixed.
type MergeError struct {
	A, B swc.Record
	Tol  float64
}

func (e *MergeError) Error() string {
	return fmt.Sprintf(
		"morph: reconnection of %d and %d requires identical (x, y, z, r) within %g but got:\n"+
			"  %d: (x=%v, y=%v, z=%v, r=%v)\n"+
			"  %d: (x=%v, y=%v, z=%v, r=%v)",
		e.A.N, e.B.N, e.Tol,
		e.A.N, e.A.X, e.A.Y, e.A.Z, e.A.R,
		e.B.N, e.B.X, e.B.Y, e.B.Z, e.B.R,
	)
}
