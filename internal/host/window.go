package host

import (
	"image"

	"knotscene/internal/animator"
	"knotscene/internal/scene"
)

// Window feeds raw window input to an Animator. Window sizes are logical
// units; cursor and touch positions are in backing-buffer pixels, as a
// game loop reports them once the screen matches the device density.
type Window struct {
	anim     *animator.Animator
	viewport scene.Viewport
	cursor   image.Point
}

// NewWindow binds a window to an animator already laid out for vp.
func NewWindow(a *animator.Animator, vp scene.Viewport) *Window {
	return &Window{anim: a, viewport: vp}
}

// Layout resizes the animator when the logical size or device scale
// changed and returns the backing-buffer size frames are rendered at.
func (w *Window) Layout(width, height int, deviceScale float64) (int, int) {
	vp := scene.Viewport{Width: width, Height: height, DevicePixelRatio: deviceScale}
	if vp != w.viewport {
		w.viewport = vp
		w.anim.Resize(vp)
	}
	return w.anim.Scene().Renderer.PixelSize()
}

// Cursor forwards the cursor position when it moved since the last call.
// The cursor starts at the origin, so a window that never saw the mouse
// leaves the pointer centered.
func (w *Window) Cursor(x, y int) {
	p := image.Pt(x, y)
	if p == w.cursor {
		return
	}
	w.cursor = p
	cx, cy := w.toClient(p)
	w.anim.PointerMove(cx, cy)
}

// Touches forwards the active touch points; the animator uses the first.
func (w *Window) Touches(points []image.Point) {
	if len(points) == 0 {
		return
	}
	touches := make([]animator.Touch, len(points))
	for i, p := range points {
		cx, cy := w.toClient(p)
		touches[i] = animator.Touch{ClientX: cx, ClientY: cy}
	}
	w.anim.TouchMove(touches)
}

func (w *Window) toClient(p image.Point) (float64, float64) {
	r := w.anim.Scene().Renderer.PixelRatio
	if r <= 0 {
		r = 1
	}
	return float64(p.X) / r, float64(p.Y) / r
}
