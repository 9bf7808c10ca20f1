package geometry

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestSphereCounts(t *testing.T) {
	const stacks, slices = 6, 12
	m, err := SphereMesh(v3.Vec{}, 1.0, stacks, slices)
	if err != nil {
		t.Fatalf("SphereMesh failed: %v", err)
	}

	wantV := (stacks-1)*slices + 2
	if m.VertexCount() != wantV {
		t.Errorf("expected %d vertices, got %d", wantV, m.VertexCount())
	}
	wantF := 2 * (stacks - 1) * slices
	if m.TriangleCount() != wantF {
		t.Errorf("expected %d faces, got %d", wantF, m.TriangleCount())
	}
	checkIndices(t, m)
}

func TestSphereMinimalResolution(t *testing.T) {
	// stacks=2, slices=3: one ring plus poles, fans only.
	m, err := SphereMesh(v3.Vec{}, 1.0, 2, 3)
	if err != nil {
		t.Fatalf("SphereMesh failed: %v", err)
	}
	if m.VertexCount() != 5 {
		t.Errorf("expected 5 vertices, got %d", m.VertexCount())
	}
	if m.TriangleCount() != 6 {
		t.Errorf("expected 6 faces, got %d", m.TriangleCount())
	}
	checkIndices(t, m)
}

func TestSphereVerticesOnSurface(t *testing.T) {
	center := v3.Vec{X: 1, Y: -2, Z: 3}
	const radius = 2.5
	m, err := SphereMesh(center, radius, DefaultStacks, DefaultSlices)
	if err != nil {
		t.Fatalf("SphereMesh failed: %v", err)
	}
	for i, v := range m.Vertices {
		if d := v.Sub(center).Length(); !almostEqual(d, radius) {
			t.Errorf("vertex %d at distance %v, want %v", i, d, radius)
		}
	}

	// Poles are the last two vertices.
	np := m.Vertices[m.VertexCount()-2]
	sp := m.Vertices[m.VertexCount()-1]
	if !almostEqual(np.Z, center.Z+radius) || !almostEqual(sp.Z, center.Z-radius) {
		t.Errorf("pole positions wrong: north %+v, south %+v", np, sp)
	}
}

func TestSphereResolutionBounds(t *testing.T) {
	if _, err := SphereMesh(v3.Vec{}, 1, 1, 12); err == nil {
		t.Error("expected error for stacks < 2")
	}
	if _, err := SphereMesh(v3.Vec{}, 1, 6, 2); err == nil {
		t.Error("expected error for slices < 3")
	}
}
