package geometry

import (
	"math"
	"testing"
)

func TestTorusKnotCounts(t *testing.T) {
	g := NewTorusKnot(DefaultTorusKnot)

	wantVerts := (128 + 1) * (32 + 1)
	if len(g.Positions) != wantVerts {
		t.Errorf("vertices = %d, want %d", len(g.Positions), wantVerts)
	}
	if len(g.Normals) != wantVerts {
		t.Errorf("normals = %d, want %d", len(g.Normals), wantVerts)
	}
	if want := 2 * 128 * 32; len(g.Tris) != want {
		t.Errorf("triangles = %d, want %d", len(g.Tris), want)
	}
}

func TestTorusKnotIndicesInRange(t *testing.T) {
	g := NewTorusKnot(DefaultTorusKnot)
	for i, tri := range g.Tris {
		for _, v := range tri {
			if v < 0 || v >= len(g.Positions) {
				t.Fatalf("tri %d index %d out of range", i, v)
			}
		}
	}
}

func TestTorusKnotNormalsAreUnit(t *testing.T) {
	g := NewTorusKnot(DefaultTorusKnot)
	for i, n := range g.Normals {
		if l := n.Len(); math.Abs(l-1) > 1e-9 {
			t.Fatalf("normal %d length = %f", i, l)
		}
	}
}

func TestTorusKnotBounds(t *testing.T) {
	g := NewTorusKnot(DefaultTorusKnot)
	// Curve radius is at most 1.5, tube adds 0.3.
	for _, p := range g.Positions {
		if p.Len() > 1.5+0.3+1e-9 {
			t.Fatalf("vertex %v outside expected radius", p)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewTorusKnot(TorusKnotParams{Radius: 1, Tube: 0.3, TubularSegments: 8, RadialSegments: 4, P: 2, Q: 3})
	c := g.Clone()

	if len(c.Positions) != len(g.Positions) || len(c.Tris) != len(g.Tris) {
		t.Fatalf("clone sizes differ")
	}
	orig := g.Positions[0]
	c.Positions[0][0] += 10
	c.Tris[0][0] = -1
	if g.Positions[0] != orig {
		t.Errorf("mutating clone positions changed original")
	}
	if g.Tris[0][0] == -1 {
		t.Errorf("mutating clone tris changed original")
	}
}

func TestEdgesAreUnique(t *testing.T) {
	g := NewTorusKnot(TorusKnotParams{Radius: 1, Tube: 0.3, TubularSegments: 8, RadialSegments: 4, P: 2, Q: 3})
	edges := g.Edges()

	seen := map[[2]int]bool{}
	for _, e := range edges {
		if e[0] >= e[1] {
			t.Fatalf("edge %v not ordered", e)
		}
		if seen[e] {
			t.Fatalf("duplicate edge %v", e)
		}
		seen[e] = true
	}

	// Each quad contributes its two new sides plus the diagonal; the last
	// row and column close the grid.
	tub, rad := 8, 4
	want := 3*tub*rad + tub + rad
	if len(edges) != want {
		t.Errorf("edges = %d, want %d", len(edges), want)
	}
}
