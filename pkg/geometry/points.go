package geometry

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/jmrfox/swcviz/pkg/morph"
)

// PointSet is a batched sphere mesh marking a list of points, together
// with the parameters that produced it. Like FrustaSet it is immutable;
// Scaled returns a sibling set with the base radius rescaled.
type PointSet struct {
	Mesh       *Mesh
	Points     []v3.Vec
	BaseRadius float64
	Stacks     int
	Slices     int
}

// PointsFromModel places one marker sphere at every merged node, in
// ascending representative id order.
func PointsFromModel(m *morph.MergedModel, radius float64, stacks, slices int) (*PointSet, error) {
	ids := m.IDs()
	points := make([]v3.Vec, 0, len(ids))
	for _, id := range ids {
		n, ok := m.Node(id)
		if !ok {
			return nil, fmt.Errorf("geometry: unknown merged node %d", id)
		}
		points = append(points, n.Pos)
	}
	return NewPointSet(points, radius, stacks, slices)
}

// NewPointSet batches a sphere of the given radius at each point.
func NewPointSet(points []v3.Vec, radius float64, stacks, slices int) (*PointSet, error) {
	mesh, err := BatchSpheres(points, radius, stacks, slices)
	if err != nil {
		return nil, err
	}
	return &PointSet{
		Mesh:       mesh,
		Points:     points,
		BaseRadius: radius,
		Stacks:     stacks,
		Slices:     slices,
	}, nil
}

// Scaled returns a PointSet with the base radius multiplied by factor and
// the sphere geometry rebuilt. A factor of exactly 1 returns the receiver
// unchanged.
func (ps *PointSet) Scaled(factor float64) (*PointSet, error) {
	if factor == 1.0 {
		return ps, nil
	}
	return NewPointSet(ps.Points, ps.BaseRadius*factor, ps.Stacks, ps.Slices)
}

// PointCount returns the number of marked points.
func (ps *PointSet) PointCount() int {
	return len(ps.Points)
}
