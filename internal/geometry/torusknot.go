package geometry

import (
	"math"

	"knotscene/internal/mathutil"
)

// Geometry is an indexed triangle mesh with per-vertex normals.
// Positions and Normals are parallel slices; Tris index into both.
type Geometry struct {
	Positions []mathutil.Vec3
	Normals   []mathutil.Vec3
	Tris      [][3]int
}

// TorusKnotParams describes a (p,q) torus knot swept by a circular tube.
type TorusKnotParams struct {
	Radius          float64
	Tube            float64
	TubularSegments int
	RadialSegments  int
	P               int
	Q               int
}

// DefaultTorusKnot is the knot shown on the page.
var DefaultTorusKnot = TorusKnotParams{
	Radius:          1,
	Tube:            0.3,
	TubularSegments: 128,
	RadialSegments:  32,
	P:               2,
	Q:               3,
}

// NewTorusKnot builds the knot mesh. The seam rows are duplicated so the
// grid is (TubularSegments+1) × (RadialSegments+1) vertices.
func NewTorusKnot(params TorusKnotParams) *Geometry {
	tub := params.TubularSegments
	rad := params.RadialSegments
	if tub < 3 {
		tub = 3
	}
	if rad < 3 {
		rad = 3
	}
	p := float64(params.P)
	q := float64(params.Q)

	n := (tub + 1) * (rad + 1)
	g := &Geometry{
		Positions: make([]mathutil.Vec3, 0, n),
		Normals:   make([]mathutil.Vec3, 0, n),
		Tris:      make([][3]int, 0, 2*tub*rad),
	}

	for i := 0; i <= tub; i++ {
		u := float64(i) / float64(tub) * p * math.Pi * 2

		// Frenet-like frame from two nearby curve samples
		p1 := curvePoint(u, p, q, params.Radius)
		p2 := curvePoint(u+0.01, p, q, params.Radius)
		tangent := p2.Sub(p1)
		normal := p2.Add(p1)
		binormal := tangent.Cross(normal)
		normal = binormal.Cross(tangent)
		binormal = binormal.Normalize()
		normal = normal.Normalize()

		for j := 0; j <= rad; j++ {
			v := float64(j) / float64(rad) * math.Pi * 2
			cx := -params.Tube * math.Cos(v)
			cy := params.Tube * math.Sin(v)

			vert := p1.Add(normal.Scale(cx)).Add(binormal.Scale(cy))
			g.Positions = append(g.Positions, vert)
			g.Normals = append(g.Normals, vert.Sub(p1).Normalize())
		}
	}

	for j := 1; j <= tub; j++ {
		for i := 1; i <= rad; i++ {
			a := (rad+1)*(j-1) + (i - 1)
			b := (rad+1)*j + (i - 1)
			c := (rad+1)*j + i
			d := (rad+1)*(j-1) + i
			g.Tris = append(g.Tris, [3]int{a, b, d}, [3]int{b, c, d})
		}
	}

	return g
}

func curvePoint(u, p, q, radius float64) mathutil.Vec3 {
	cu := math.Cos(u)
	su := math.Sin(u)
	quOverP := q / p * u
	cs := math.Cos(quOverP)
	return mathutil.Vec3{
		radius * (2 + cs) * 0.5 * cu,
		radius * (2 + cs) * su * 0.5,
		radius * math.Sin(quOverP) * 0.5,
	}
}

// Clone returns a deep copy that shares no backing arrays with g.
func (g *Geometry) Clone() *Geometry {
	c := &Geometry{
		Positions: make([]mathutil.Vec3, len(g.Positions)),
		Normals:   make([]mathutil.Vec3, len(g.Normals)),
		Tris:      make([][3]int, len(g.Tris)),
	}
	copy(c.Positions, g.Positions)
	copy(c.Normals, g.Normals)
	copy(c.Tris, g.Tris)
	return c
}
