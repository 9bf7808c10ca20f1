package morph

import (
	"fmt"
	"math"
	"sort"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/jmrfox/swcviz/pkg/swc"
)

// MergedNode is one equivalence class of reconnected SWC points. ID is the
// smallest member id; position, radius and type come from that member (the
// validation step guarantees they are identical across the class anyway).
type MergedNode struct {
	ID     int
	Type   int
	Pos    v3.Vec
	Radius float64
	// Provenance of the merge.
	Members []int // all merged ids, ascending
	Lines   []int // source line per member, aligned with Members
}

// MergedModel is the undirected graph obtained by unioning reconnection
// pairs and mapping the directed edges through the union. Self-loops
// (parent and child merged into the same class) are dropped, and parallel
// edges between two classes collapse to a single undirected edge.
type MergedModel struct {
	nodes map[int]*MergedNode
	edges [][2]int // representative pairs, derivation order
	rep   map[int]int
}

// BuildMerged constructs a merged model, validating that every
// reconnection pair has identical position and radius within tol.
func BuildMerged(records map[int]swc.Record, pairs [][2]int, tol float64) (*MergedModel, error) {
	return buildMerged(records, pairs, tol, true)
}

// BuildMergedUnchecked skips the geometric equality check on reconnection
// pairs. Existence of the referenced ids is still enforced.
func BuildMergedUnchecked(records map[int]swc.Record, pairs [][2]int) (*MergedModel, error) {
	return buildMerged(records, pairs, 0, false)
}

func buildMerged(records map[int]swc.Record, pairs [][2]int, tol float64, validate bool) (*MergedModel, error) {
	ids := sortedIDs(records)
	uf := newUnionFind(ids)

	for _, pair := range pairs {
		a, okA := records[pair[0]]
		b, okB := records[pair[1]]
		if !okA || !okB {
			missing := pair[0]
			if okA {
				missing = pair[1]
			}
			return nil, &StructuralError{
				ID:  missing,
				Msg: fmt.Sprintf("reconnection pair (%d, %d) refers to undefined id", pair[0], pair[1]),
			}
		}
		if validate && !sameGeometry(a, b, tol) {
			return nil, &MergeError{A: a, B: b, Tol: tol}
		}
		uf.union(uf.index[pair[0]], uf.index[pair[1]])
	}

	// Group members by union-find root. Ascending iteration makes the
	// first member of each group its smallest id.
	groups := make(map[int][]int)
	for i, id := range ids {
		root := uf.find(i)
		groups[root] = append(groups[root], id)
	}

	m := &MergedModel{
		nodes: make(map[int]*MergedNode, len(groups)),
		rep:   make(map[int]int, len(records)),
	}
	for _, members := range groups {
		repID := members[0]
		canon := records[repID]
		node := &MergedNode{
			ID:      repID,
			Type:    canon.T,
			Pos:     v3.Vec{X: canon.X, Y: canon.Y, Z: canon.Z},
			Radius:  canon.R,
			Members: members,
			Lines:   make([]int, len(members)),
		}
		for i, id := range members {
			node.Lines[i] = records[id].Line
			m.rep[id] = repID
		}
		m.nodes[repID] = node
	}

	// Map directed edges through the union. Endpoints that coincide were
	// merged into one class; the edge disappears rather than becoming a
	// self-loop. Parallel edges collapse via the seen set.
	seen := make(map[[2]int]bool)
	for _, id := range ids {
		rec := records[id]
		if rec.IsRoot() {
			continue
		}
		u, ok := m.rep[rec.Parent]
		if !ok {
			return nil, &StructuralError{
				ID:  rec.N,
				Msg: fmt.Sprintf("parent id %d does not exist", rec.Parent),
			}
		}
		v := m.rep[rec.N]
		if u == v {
			continue
		}
		key := [2]int{u, v}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		m.edges = append(m.edges, [2]int{u, v})
	}

	return m, nil
}

// Node returns the merged node whose representative id is id.
func (m *MergedModel) Node(id int) (*MergedNode, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

// Representative returns the merged node id that the original id belongs to.
func (m *MergedModel) Representative(id int) (int, bool) {
	r, ok := m.rep[id]
	return r, ok
}

// NodeCount returns the number of merged nodes.
func (m *MergedModel) NodeCount() int {
	return len(m.nodes)
}

// EdgeCount returns the number of undirected edges.
func (m *MergedModel) EdgeCount() int {
	return len(m.edges)
}

// Edges returns the undirected edges as (parent-side, child-side)
// representative pairs in derivation order. The returned slice is shared;
// callers must not modify it.
func (m *MergedModel) Edges() [][2]int {
	return m.edges
}

// IDs returns the representative ids in ascending order.
func (m *MergedModel) IDs() []int {
	ids := make([]int, 0, len(m.nodes))
	for id := range m.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func sameGeometry(a, b swc.Record, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol &&
		math.Abs(a.R-b.R) <= tol
}

// unionFind is a disjoint-set arena over a dense remapping of external ids:
// parent and rank are parallel arrays indexed by position in the sorted id
// list. It lives only for the duration of one buildMerged call.
type unionFind struct {
	ids    []int // index -> external id, ascending
	index  map[int]int
	parent []int
	rank   []int
}

func newUnionFind(ids []int) *unionFind {
	uf := &unionFind{
		ids:    ids,
		index:  make(map[int]int, len(ids)),
		parent: make([]int, len(ids)),
		rank:   make([]int, len(ids)),
	}
	for i, id := range ids {
		uf.index[id] = i
		uf.parent[i] = i
	}
	return uf
}

// find returns the root of i with path compression.
func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}
	return i
}

// union merges the classes of i and j by rank. On equal rank the root with
// the smaller external id wins, so repeated runs on the same input always
// pick the same representative.
func (uf *unionFind) union(i, j int) {
	ri, rj := uf.find(i), uf.find(j)
	if ri == rj {
		return
	}
	switch {
	case uf.rank[ri] < uf.rank[rj]:
		uf.parent[ri] = rj
	case uf.rank[rj] < uf.rank[ri]:
		uf.parent[rj] = ri
	default:
		// ids are sorted ascending, so index order is id order.
		if rj < ri {
			ri, rj = rj, ri
		}
		uf.parent[rj] = ri
		uf.rank[ri]++
	}
}
