package morph

import (
	"errors"
	"strings"
	"testing"

	"github.com/jmrfox/swcviz/pkg/swc"
)

// branchRecords returns a root with two children that share geometry, the
// shape behind a typical cycle-break reconnection.
func branchRecords() map[int]swc.Record {
	return map[int]swc.Record{
		1: {N: 1, T: 1, X: 0, R: 1.0, Parent: -1, Line: 1},
		2: {N: 2, T: 3, X: 1, R: 0.5, Parent: 1, Line: 2},
		3: {N: 3, T: 3, X: 1, R: 0.5, Parent: 1, Line: 3},
	}
}

func TestMergedNoReconnections(t *testing.T) {
	records := map[int]swc.Record{
		1: {N: 1, T: 1, X: 0, R: 1.0, Parent: -1, Line: 1},
		2: {N: 2, T: 3, X: 1, R: 0.5, Parent: 1, Line: 2},
	}
	m, err := BuildMerged(records, nil, 1e-9)
	if err != nil {
		t.Fatalf("BuildMerged failed: %v", err)
	}

	// Topology maps 1:1 onto the directed tree.
	if m.NodeCount() != 2 || m.EdgeCount() != 1 {
		t.Fatalf("expected 2 nodes / 1 edge, got %d / %d", m.NodeCount(), m.EdgeCount())
	}
	if m.Edges()[0] != [2]int{1, 2} {
		t.Errorf("expected edge (1, 2), got %v", m.Edges()[0])
	}
	n, _ := m.Node(2)
	if len(n.Members) != 1 || n.Members[0] != 2 {
		t.Errorf("singleton group expected, got %v", n.Members)
	}
}

func TestMergedUnionDeterminism(t *testing.T) {
	// Pair (2,3) on edges 1->2 and 1->3: two merged nodes, and the two
	// directed edges collapse to exactly one undirected edge.
	m, err := BuildMerged(branchRecords(), [][2]int{{2, 3}}, 1e-9)
	if err != nil {
		t.Fatalf("BuildMerged failed: %v", err)
	}

	if m.NodeCount() != 2 {
		t.Fatalf("expected 2 merged nodes, got %d", m.NodeCount())
	}
	if m.EdgeCount() != 1 {
		t.Fatalf("expected 1 edge, got %d", m.EdgeCount())
	}
	if m.Edges()[0] != [2]int{1, 2} {
		t.Errorf("expected edge (1, 2), got %v", m.Edges()[0])
	}

	// The class {2,3} is represented by its smallest id.
	n, ok := m.Node(2)
	if !ok {
		t.Fatal("merged node 2 missing")
	}
	if len(n.Members) != 2 || n.Members[0] != 2 || n.Members[1] != 3 {
		t.Errorf("expected members [2 3], got %v", n.Members)
	}
	if n.Lines[0] != 2 || n.Lines[1] != 3 {
		t.Errorf("provenance lines wrong: %v", n.Lines)
	}
	if n.Radius != 0.5 || n.Pos.X != 1 {
		t.Errorf("attributes should come from the smallest member: %+v", n)
	}

	for _, id := range []int{2, 3} {
		if rep, _ := m.Representative(id); rep != 2 {
			t.Errorf("Representative(%d) = %d, want 2", id, rep)
		}
	}
}

func TestMergedRepeatedRunsStable(t *testing.T) {
	first, err := BuildMerged(branchRecords(), [][2]int{{2, 3}}, 1e-9)
	if err != nil {
		t.Fatalf("BuildMerged failed: %v", err)
	}
	for run := 0; run < 10; run++ {
		m, err := BuildMerged(branchRecords(), [][2]int{{2, 3}}, 1e-9)
		if err != nil {
			t.Fatalf("BuildMerged failed: %v", err)
		}
		if len(m.IDs()) != len(first.IDs()) {
			t.Fatal("node set changed between runs")
		}
		for i, id := range m.IDs() {
			if first.IDs()[i] != id {
				t.Fatalf("representative ids changed between runs: %v vs %v", first.IDs(), m.IDs())
			}
		}
	}
}

func TestMergedToleranceViolation(t *testing.T) {
	records := branchRecords()
	r3 := records[3]
	r3.R = 0.75 // differs from node 2 by more than tolerance
	records[3] = r3

	_, err := BuildMerged(records, [][2]int{{2, 3}}, 1e-9)
	if err == nil {
		t.Fatal("expected merge validation error")
	}
	var me *MergeError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MergeError, got %T", err)
	}
	// Both records' full values must be reported for diagnosis.
	msg := err.Error()
	for _, want := range []string{"0.5", "0.75", "x=1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error should contain %q: %s", want, msg)
		}
	}

	// Within tolerance the same input merges fine.
	if _, err := BuildMerged(records, [][2]int{{2, 3}}, 0.5); err != nil {
		t.Errorf("merge within tolerance failed: %v", err)
	}
	// And the unchecked variant skips the comparison entirely.
	if _, err := BuildMergedUnchecked(records, [][2]int{{2, 3}}); err != nil {
		t.Errorf("unchecked merge failed: %v", err)
	}
}

func TestMergedUndefinedPair(t *testing.T) {
	_, err := BuildMerged(branchRecords(), [][2]int{{2, 42}}, 1e-9)
	if err == nil {
		t.Fatal("expected undefined id error")
	}
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StructuralError, got %T", err)
	}
	if se.ID != 42 {
		t.Errorf("expected offending id 42, got %d", se.ID)
	}
}

func TestMergedSelfLoopDropped(t *testing.T) {
	// Merging a parent with its own child erases the edge between them.
	records := map[int]swc.Record{
		1: {N: 1, T: 1, X: 0, R: 1.0, Parent: -1, Line: 1},
		2: {N: 2, T: 3, X: 0, R: 1.0, Parent: 1, Line: 2},
	}
	m, err := BuildMerged(records, [][2]int{{1, 2}}, 1e-9)
	if err != nil {
		t.Fatalf("BuildMerged failed: %v", err)
	}
	if m.NodeCount() != 1 {
		t.Fatalf("expected 1 merged node, got %d", m.NodeCount())
	}
	if m.EdgeCount() != 0 {
		t.Errorf("expected self-loop to be dropped, got %d edges", m.EdgeCount())
	}
}

func TestMergedCollapsesParallelEdges(t *testing.T) {
	// Current observed behavior, not a guaranteed contract: when a merge
	// makes two directed edges land on the same representative pair, the
	// merged graph keeps a single undirected edge.
	records := map[int]swc.Record{
		1: {N: 1, T: 1, X: 0, R: 1.0, Parent: -1, Line: 1},
		2: {N: 2, T: 3, X: 1, R: 0.5, Parent: 1, Line: 2},
		3: {N: 3, T: 3, X: 1, R: 0.5, Parent: 1, Line: 3},
		4: {N: 4, T: 3, X: 2, R: 0.5, Parent: 2, Line: 4},
		5: {N: 5, T: 3, X: 2, R: 0.5, Parent: 3, Line: 5},
	}
	m, err := BuildMerged(records, [][2]int{{2, 3}, {4, 5}}, 1e-9)
	if err != nil {
		t.Fatalf("BuildMerged failed: %v", err)
	}
	if m.NodeCount() != 3 {
		t.Fatalf("expected 3 merged nodes, got %d", m.NodeCount())
	}
	// Edges (1,2) and the collapsed (2,4); the duplicates from 2->4 and
	// 3->5 fold into one.
	if m.EdgeCount() != 2 {
		t.Errorf("expected 2 edges after collapse, got %d: %v", m.EdgeCount(), m.Edges())
	}
}

func TestMergedChainOfUnions(t *testing.T) {
	// Three-way union through overlapping pairs lands in one class with
	// the smallest id as representative.
	records := map[int]swc.Record{
		1: {N: 1, T: 1, X: 0, R: 1, Parent: -1, Line: 1},
		5: {N: 5, T: 3, X: 1, R: 1, Parent: 1, Line: 2},
		6: {N: 6, T: 3, X: 1, R: 1, Parent: 1, Line: 3},
		7: {N: 7, T: 3, X: 1, R: 1, Parent: 1, Line: 4},
	}
	m, err := BuildMerged(records, [][2]int{{6, 7}, {5, 6}}, 1e-9)
	if err != nil {
		t.Fatalf("BuildMerged failed: %v", err)
	}
	n, ok := m.Node(5)
	if !ok {
		t.Fatal("expected representative 5")
	}
	if len(n.Members) != 3 {
		t.Errorf("expected 3 members, got %v", n.Members)
	}
}
