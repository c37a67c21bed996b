package animator

// Pointer is the pointer offset from the viewport center, each axis in
// [-1, 1] while the pointer is inside the viewport.
type Pointer struct {
	X float64
	Y float64
}

// Touch is one active touch point in client coordinates.
type Touch struct {
	ClientX float64 `json:"clientX"`
	ClientY float64 `json:"clientY"`
}

// PointerMove records a pointer position in client coordinates.
func (a *Animator) PointerMove(clientX, clientY float64) {
	w, h := a.viewport.Width, a.viewport.Height
	if w <= 0 || h <= 0 {
		return
	}
	a.pointer = Pointer{
		X: (clientX/float64(w) - 0.5) * 2,
		Y: (clientY/float64(h) - 0.5) * 2,
	}
}

// TouchMove records the first touch point. Empty touch lists are ignored.
func (a *Animator) TouchMove(touches []Touch) {
	if len(touches) == 0 {
		return
	}
	a.PointerMove(touches[0].ClientX, touches[0].ClientY)
}

// Pointer returns the last normalized pointer position.
func (a *Animator) Pointer() Pointer {
	return a.pointer
}
