package geometry

import (
	"fmt"

	"github.com/jmrfox/swcviz/pkg/morph"
)

// FrustaSet is a batched frusta mesh together with the parameters and the
// exact ordered segment list that produced it. Keeping the segments allows
// uniform radius rescaling without re-deriving them from the graph. A set
// is immutable once built; Scaled returns a sibling set.
type FrustaSet struct {
	Mesh     *Mesh
	Segments []Segment
	Sides    int
	EndCaps  bool
}

// FrustaFromModel converts every undirected edge of the merged model into
// a Segment and batches one frustum per segment. Segment order follows the
// model's edge derivation order, so output is deterministic.
func FrustaFromModel(m *morph.MergedModel, sides int, endCaps bool) (*FrustaSet, error) {
	edges := m.Edges()
	segments := make([]Segment, 0, len(edges))
	for _, e := range edges {
		u, ok := m.Node(e[0])
		if !ok {
			return nil, fmt.Errorf("geometry: edge references unknown merged node %d", e[0])
		}
		v, ok := m.Node(e[1])
		if !ok {
			return nil, fmt.Errorf("geometry: edge references unknown merged node %d", e[1])
		}
		segments = append(segments, Segment{A: u.Pos, B: v.Pos, RA: u.Radius, RB: v.Radius})
	}
	return NewFrustaSet(segments, sides, endCaps)
}

// NewFrustaSet batches the given segments into one mesh.
func NewFrustaSet(segments []Segment, sides int, endCaps bool) (*FrustaSet, error) {
	mesh, err := BatchFrusta(segments, sides, endCaps)
	if err != nil {
		return nil, err
	}
	return &FrustaSet{
		Mesh:     mesh,
		Segments: segments,
		Sides:    sides,
		EndCaps:  endCaps,
	}, nil
}

// Scaled returns a FrustaSet whose segment radii are multiplied by factor,
// with endpoint positions unchanged. Ring radii are baked into vertex
// positions, so the geometry is rebuilt from the rescaled segments rather
// than transformed; scaling vertex coordinates would also move the
// endpoints. A factor of exactly 1 returns the receiver unchanged.
func (fs *FrustaSet) Scaled(factor float64) (*FrustaSet, error) {
	if factor == 1.0 {
		return fs, nil
	}
	segments := make([]Segment, len(fs.Segments))
	for i, seg := range fs.Segments {
		segments[i] = seg.scaled(factor)
	}
	return NewFrustaSet(segments, fs.Sides, fs.EndCaps)
}

// SegmentCount returns the number of segments in the set.
func (fs *FrustaSet) SegmentCount() int {
	return len(fs.Segments)
}

// EdgeCount is an alias for SegmentCount: one segment per graph edge.
func (fs *FrustaSet) EdgeCount() int {
	return len(fs.Segments)
}
