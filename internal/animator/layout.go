package animator

import (
	"knotscene/internal/mathutil"
	"knotscene/internal/scene"
)

// Breakpoint is the viewport width below which the mobile preset applies.
const Breakpoint = 768

// Preset is a fixed placement of the knot.
type Preset struct {
	Name     string
	Position mathutil.Vec3
	Scale    float64
}

var (
	Desktop = Preset{Name: "desktop", Position: mathutil.Vec3{2.5, 0, 0}, Scale: 1}
	Mobile  = Preset{Name: "mobile", Position: mathutil.Vec3{0, 2, -1}, Scale: 0.7}
)

// PresetFor picks the preset for a viewport width.
func PresetFor(width int) Preset {
	if width < Breakpoint {
		return Mobile
	}
	return Desktop
}

// Resize reacts to a viewport change: camera aspect, renderer size and
// knot placement.
func (a *Animator) Resize(vp scene.Viewport) {
	a.viewport = vp
	s := a.scene

	s.Camera.Aspect = vp.Aspect()
	s.Camera.UpdateProjection()

	s.Renderer.SetSize(vp.Width, vp.Height)
	s.Renderer.SetPixelRatio(vp.DevicePixelRatio)

	a.applyPreset(PresetFor(vp.Width))
}

func (a *Animator) applyPreset(p Preset) {
	a.preset = p
	s := a.scene
	s.Solid.Position = p.Position
	s.Wire.Position = p.Position
	s.Solid.Scale = p.Scale
	s.Wire.Scale = p.Scale * scene.WireframeScale
}

// Preset returns the active layout preset.
func (a *Animator) Preset() Preset {
	return a.preset
}
