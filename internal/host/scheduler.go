// Package host adapts the animator to a frame-driven environment: it
// delivers input events, advances the tick chain and hands each frame to
// a sink.
package host

import (
	"context"

	"knotscene/internal/animator"
	"knotscene/internal/scene"
)

// FrameSink consumes one rendered-to-be frame. Returning an error stops the
// scheduler.
type FrameSink func(index int, f scene.Frame) error

// Scheduler replays a Script against an Animator one frame at a time.
type Scheduler struct {
	Animator *animator.Animator
	Clock    Clock
	Script   Script
}

// Run ticks frames 0..frames-1, or until ctx is done when frames <= 0.
// Each frame's events are dispatched before its tick, matching a browser
// delivering input between animation-frame callbacks.
func (s *Scheduler) Run(ctx context.Context, frames int, sink FrameSink) error {
	next := 0
	for i := 0; frames <= 0 || i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for next < len(s.Script) && s.Script[next].Frame <= i {
			s.Dispatch(s.Script[next])
			next++
		}
		f := s.Animator.Tick(s.Clock.Millis(i))
		if err := sink(i, f); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch delivers one event to the animator.
func (s *Scheduler) Dispatch(e Event) {
	switch e.Type {
	case PointerMove:
		s.Animator.PointerMove(e.X, e.Y)
	case TouchMove:
		s.Animator.TouchMove(e.Touches)
	case Resize:
		s.Animator.Resize(scene.Viewport{Width: e.Width, Height: e.Height, DevicePixelRatio: e.DPR})
	}
}
