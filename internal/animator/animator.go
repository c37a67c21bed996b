// Package animator drives the knot: it tracks the pointer, smooths the
// tilt toward it, adds idle spin and bobbing, and keeps the wireframe shell
// locked to the solid knot.
//
// An Animator is not safe for concurrent use. Hosts call its methods from a
// single loop; the Frames it returns are immutable and may be rendered
// elsewhere.
package animator

import (
	"math"

	"knotscene/internal/scene"
)

const (
	// Smoothing is the per-frame fraction of the remaining distance the
	// tilt covers toward the pointer target.
	Smoothing = 0.05
	// PointerInfluence scales the pointer offset into a tilt angle (radians).
	PointerInfluence = 0.5
	// TimeScale converts host milliseconds into animation time.
	TimeScale = 0.0005

	SpinRateX = 0.3
	SpinRateY = 0.5

	BobAmplitude = 0.15
	BobRate      = 2
)

// Animator owns the scene and all per-frame mutable state.
type Animator struct {
	scene    *scene.Scene
	viewport scene.Viewport
	pointer  Pointer
	preset   Preset

	// smoothed tilt; targetX follows the pointer's Y axis and tilts about X
	targetX float64
	targetY float64
}

// New wraps s and applies the layout for vp before the first Tick.
func New(s *scene.Scene, vp scene.Viewport) *Animator {
	a := &Animator{scene: s}
	a.Resize(vp)
	return a
}

// Scene returns the animated scene.
func (a *Animator) Scene() *scene.Scene {
	return a.scene
}

// Targets returns the smoothed tilt about X and Y.
func (a *Animator) Targets() (x, y float64) {
	return a.targetX, a.targetY
}

// Tick advances one display frame at host time nowMillis and returns the
// frame to draw.
func (a *Animator) Tick(nowMillis float64) scene.Frame {
	a.targetX += (a.pointer.Y*PointerInfluence - a.targetX) * Smoothing
	a.targetY += (a.pointer.X*PointerInfluence - a.targetY) * Smoothing

	t := nowMillis * TimeScale
	s := a.scene

	s.Solid.Rotation[0] = t*SpinRateX + a.targetX
	s.Solid.Rotation[1] = t*SpinRateY + a.targetY
	s.Wire.Rotation = s.Solid.Rotation

	s.Solid.Position[1] = math.Sin(t*BobRate) * BobAmplitude
	s.Wire.Position[1] = s.Solid.Position[1]

	f := s.Snapshot()
	f.TimeMillis = nowMillis
	f.Preset = a.preset.Name
	return f
}
