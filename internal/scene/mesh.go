package scene

import (
	"knotscene/internal/geometry"
	"knotscene/internal/mathutil"
)

// Transform is position, Euler XYZ rotation (radians) and uniform scale.
type Transform struct {
	Position mathutil.Vec3
	Rotation mathutil.Vec3
	Scale    float64
}

// Matrix returns the local-to-world matrix T × R × S.
func (t Transform) Matrix() mathutil.Mat4 {
	return mathutil.Compose(t.Position, mathutil.EulerXYZ(t.Rotation), t.Scale)
}

// SolidMesh is the opaque knot.
type SolidMesh struct {
	Geometry *geometry.Geometry
	Material StandardMaterial
	Transform
}

// WireMesh is the translucent wireframe shell. Edges is derived from
// Geometry once at setup; the geometry never changes afterwards.
type WireMesh struct {
	Geometry *geometry.Geometry
	Edges    [][2]int
	Material BasicMaterial
	Transform
}
