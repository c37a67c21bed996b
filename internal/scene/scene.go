// Package scene builds the torus knot scene graph: camera, lights, the
// solid knot, its wireframe shell and the renderer settings.
package scene

import (
	"knotscene/internal/geometry"
	"knotscene/internal/mathutil"
)

// WireframeScale is the fixed ratio of the wireframe shell's scale to the
// solid knot's scale.
const WireframeScale = 1.02

// Viewport is the host surface size in logical units.
type Viewport struct {
	Width            int
	Height           int
	DevicePixelRatio float64
}

// Aspect returns Width/Height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float64 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}

// Scene is the whole mutable scene graph.
type Scene struct {
	Camera   Camera
	Renderer Renderer
	Ambient  AmbientLight
	Lights   []PointLight
	Solid    SolidMesh
	Wire     WireMesh
}

// Setup constructs the scene for the given viewport.
func Setup(vp Viewport) *Scene {
	cam := NewPerspectiveCamera(75, vp.Aspect(), 0.1, 1000)
	cam.Position = mathutil.Vec3{0, 0, 5}

	r := Renderer{Antialias: true, Alpha: true}
	r.SetSize(vp.Width, vp.Height)
	r.SetPixelRatio(vp.DevicePixelRatio)

	geom := geometry.NewTorusKnot(geometry.DefaultTorusKnot)
	shell := geom.Clone()
	home := mathutil.Vec3{2.5, 0, 0}

	return &Scene{
		Camera:   cam,
		Renderer: r,
		Ambient:  AmbientLight{Color: 0xffffff, Intensity: 0.5},
		Lights: []PointLight{
			{Color: 0xe11d48, Intensity: 2, Distance: 20, Position: mathutil.Vec3{5, 5, 5}},
			{Color: 0x7c3aed, Intensity: 1.5, Distance: 20, Position: mathutil.Vec3{-5, -3, 3}},
			{Color: 0x3b82f6, Intensity: 1, Distance: 15, Position: mathutil.Vec3{0, -5, 2}},
		},
		Solid: SolidMesh{
			Geometry: geom,
			Material: StandardMaterial{
				Color:     0x1a1a1a,
				Metalness: 0.9,
				Roughness: 0.1,
			},
			Transform: Transform{Position: home, Scale: 1},
		},
		Wire: WireMesh{
			Geometry: shell,
			Edges:    shell.Edges(),
			Material: BasicMaterial{
				Color:       0xe11d48,
				Wireframe:   true,
				Transparent: true,
				Opacity:     0.15,
			},
			Transform: Transform{Position: home, Scale: WireframeScale},
		},
	}
}

// Frame is an immutable snapshot of everything needed to draw one image.
// Geometry is shared with the scene and must be treated as read-only.
type Frame struct {
	TimeMillis float64
	Preset     string
	Camera     Camera
	Renderer   Renderer
	Ambient    AmbientLight
	Lights     []PointLight
	Solid      SolidMesh
	Wire       WireMesh
}

// Snapshot copies the current scene state into a Frame.
func (s *Scene) Snapshot() Frame {
	lights := make([]PointLight, len(s.Lights))
	copy(lights, s.Lights)
	return Frame{
		Camera:   s.Camera,
		Renderer: s.Renderer,
		Ambient:  s.Ambient,
		Lights:   lights,
		Solid:    s.Solid,
		Wire:     s.Wire,
	}
}
