package morph

import (
	"fmt"
	"sort"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/jmrfox/swcviz/pkg/swc"
)

// Node holds the per-point attributes carried by both graph flavors.
type Node struct {
	ID     int
	Type   int
	Pos    v3.Vec
	Radius float64
	Line   int // source line number, informational
}

// Model is the directed morphology forest. Nodes are keyed by SWC id and
// edges point parent -> child. The model is built once from a finalized
// record set and is read-only afterward.
type Model struct {
	nodes    map[int]Node
	children map[int][]int
	parents  map[int][]int
	edges    [][2]int // (parent, child) in ascending child id order
}

// Build constructs a directed model from records. Parent references to
// undefined ids produce attribute-less placeholder nodes; use BuildStrict
// to reject them instead.
func Build(records map[int]swc.Record) *Model {
	m, _ := build(records, false)
	return m
}

// BuildStrict constructs a directed model, failing on any parent reference
// to an undefined id.
func BuildStrict(records map[int]swc.Record) (*Model, error) {
	return build(records, true)
}

func build(records map[int]swc.Record, strict bool) (*Model, error) {
	m := &Model{
		nodes:    make(map[int]Node, len(records)),
		children: make(map[int][]int),
		parents:  make(map[int][]int),
	}

	for _, rec := range records {
		m.nodes[rec.N] = Node{
			ID:     rec.N,
			Type:   rec.T,
			Pos:    v3.Vec{X: rec.X, Y: rec.Y, Z: rec.Z},
			Radius: rec.R,
			Line:   rec.Line,
		}
	}

	// Edges in ascending child id order so iteration is deterministic.
	ids := sortedIDs(records)
	for _, id := range ids {
		rec := records[id]
		if rec.IsRoot() {
			continue
		}
		if _, ok := m.nodes[rec.Parent]; !ok {
			if strict {
				return nil, &StructuralError{
					ID:  rec.N,
					Msg: fmt.Sprintf("parent id %d does not exist", rec.Parent),
				}
			}
			m.nodes[rec.Parent] = Node{ID: rec.Parent}
		}
		m.children[rec.Parent] = append(m.children[rec.Parent], rec.N)
		m.parents[rec.N] = append(m.parents[rec.N], rec.Parent)
		m.edges = append(m.edges, [2]int{rec.Parent, rec.N})
	}

	return m, nil
}

// Node returns the attributes for id.
func (m *Model) Node(id int) (Node, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

// NodeCount returns the number of nodes.
func (m *Model) NodeCount() int {
	return len(m.nodes)
}

// EdgeCount returns the number of directed edges.
func (m *Model) EdgeCount() int {
	return len(m.edges)
}

// Edges returns the directed (parent, child) pairs in ascending child id
// order. The returned slice is shared; callers must not modify it.
func (m *Model) Edges() [][2]int {
	return m.edges
}

// Roots returns all nodes with in-degree 0 in ascending id order.
func (m *Model) Roots() []int {
	var roots []int
	for id := range m.nodes {
		if len(m.parents[id]) == 0 {
			roots = append(roots, id)
		}
	}
	sort.Ints(roots)
	return roots
}

// Children returns the child ids of id in ascending order.
func (m *Model) Children(id int) []int {
	return m.children[id]
}

// ParentOf returns the parent of id. ok is false for roots. A node with
// more than one recorded parent is a structural defect (SWC data must be a
// forest) and surfaces as an error rather than an arbitrary pick.
func (m *Model) ParentOf(id int) (parent int, ok bool, err error) {
	if _, exists := m.nodes[id]; !exists {
		return 0, false, &StructuralError{ID: id, Msg: "not in model"}
	}
	preds := m.parents[id]
	switch len(preds) {
	case 0:
		return 0, false, nil
	case 1:
		return preds[0], true, nil
	default:
		return 0, false, &StructuralError{
			ID:  id,
			Msg: fmt.Sprintf("has %d parents; expected a tree/forest", len(preds)),
		}
	}
}

// PathToRoot returns id followed by each ancestor up to and including its
// root. Malformed input containing a cycle is detected and reported
// instead of looping forever.
func (m *Model) PathToRoot(id int) ([]int, error) {
	path := []int{id}
	seen := map[int]bool{id: true}
	current := id
	for {
		p, ok, err := m.ParentOf(current)
		if err != nil {
			return nil, err
		}
		if !ok {
			return path, nil
		}
		if seen[p] {
			return nil, &StructuralError{
				ID:  p,
				Msg: "cycle detected during root-ward traversal",
			}
		}
		seen[p] = true
		path = append(path, p)
		current = p
	}
}

func sortedIDs(records map[int]swc.Record) []int {
	ids := make([]int, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
