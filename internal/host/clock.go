package host

import "time"

// Clock maps a frame index to host time in milliseconds.
type Clock interface {
	Millis(frame int) float64
}

// FixedClock advances exactly 1000/FPS ms per frame from StartMillis.
type FixedClock struct {
	StartMillis float64
	FPS         float64
}

func (c FixedClock) Millis(frame int) float64 {
	return c.StartMillis + float64(frame)*1000/c.FPS
}

// WallClock ignores the frame index and reads the system clock.
type WallClock struct{}

func (WallClock) Millis(int) float64 {
	return float64(time.Now().UnixNano()) / 1e6
}
