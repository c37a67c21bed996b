package scene

import "math"

// MaxPixelRatio caps the device pixel ratio used for the backing buffer.
const MaxPixelRatio = 2.0

// Renderer holds output surface settings. Width and Height are logical
// (CSS-like) units; the backing buffer is Width×PixelRatio by Height×PixelRatio.
type Renderer struct {
	Width      int
	Height     int
	PixelRatio float64
	Antialias  bool
	Alpha      bool
}

// SetSize resizes the logical output.
func (r *Renderer) SetSize(w, h int) {
	r.Width = w
	r.Height = h
}

// SetPixelRatio stores dpr capped at MaxPixelRatio. Non-positive values mean 1.
func (r *Renderer) SetPixelRatio(dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	r.PixelRatio = math.Min(dpr, MaxPixelRatio)
}

// PixelSize returns the backing buffer dimensions, at least 1×1.
func (r Renderer) PixelSize() (int, int) {
	w := int(math.Round(float64(r.Width) * r.PixelRatio))
	h := int(math.Round(float64(r.Height) * r.PixelRatio))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
