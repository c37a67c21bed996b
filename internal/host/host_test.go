package host

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"knotscene/internal/animator"
	"knotscene/internal/scene"
)

func newScheduler(script Script) *Scheduler {
	vp := scene.Viewport{Width: 1000, Height: 500, DevicePixelRatio: 1}
	return &Scheduler{
		Animator: animator.New(scene.Setup(vp), vp),
		Clock:    FixedClock{StartMillis: 0, FPS: 50},
		Script:   script,
	}
}

func TestFixedClock(t *testing.T) {
	c := FixedClock{StartMillis: 100, FPS: 50}
	if got := c.Millis(0); got != 100 {
		t.Errorf("Millis(0) = %v", got)
	}
	if got := c.Millis(5); got != 200 {
		t.Errorf("Millis(5) = %v, want 200", got)
	}
}

func TestRunTicksEveryFrame(t *testing.T) {
	s := newScheduler(nil)
	var times []float64
	err := s.Run(context.Background(), 4, func(i int, f scene.Frame) error {
		times = append(times, f.TimeMillis)
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []float64{0, 20, 40, 60}
	if len(times) != len(want) {
		t.Fatalf("frames = %d, want %d", len(times), len(want))
	}
	for i := range want {
		if times[i] != want[i] {
			t.Errorf("frame %d time = %v, want %v", i, times[i], want[i])
		}
	}
}

func TestRunDispatchesEventsBeforeTick(t *testing.T) {
	script := Script{
		{Frame: 2, Type: PointerMove, X: 1000, Y: 500},
		{Frame: 3, Type: Resize, Width: 500, Height: 800},
		{Frame: 4, Type: TouchMove, Touches: []animator.Touch{{ClientX: 0, ClientY: 0}}},
	}
	s := newScheduler(script)

	var frames []scene.Frame
	var pointers []animator.Pointer
	err := s.Run(context.Background(), 5, func(i int, f scene.Frame) error {
		frames = append(frames, f)
		pointers = append(pointers, s.Animator.Pointer())
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if pointers[1] != (animator.Pointer{}) {
		t.Errorf("frame 1 pointer = %+v, want zero", pointers[1])
	}
	if pointers[2] != (animator.Pointer{X: 1, Y: 1}) {
		t.Errorf("frame 2 pointer = %+v, want (1,1)", pointers[2])
	}
	if frames[2].Preset != "desktop" || frames[3].Preset != "mobile" {
		t.Errorf("presets = %q, %q", frames[2].Preset, frames[3].Preset)
	}
	if pointers[4] != (animator.Pointer{X: -1, Y: -1}) {
		t.Errorf("frame 4 pointer = %+v, want (-1,-1)", pointers[4])
	}
}

func TestRunStopsOnSinkError(t *testing.T) {
	s := newScheduler(nil)
	boom := errors.New("boom")
	n := 0
	err := s.Run(context.Background(), 10, func(i int, f scene.Frame) error {
		n++
		if i == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if n != 3 {
		t.Errorf("sink calls = %d, want 3", n)
	}
}

func TestRunUnboundedUntilCancelled(t *testing.T) {
	s := newScheduler(nil)
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	err := s.Run(ctx, 0, func(i int, f scene.Frame) error {
		n++
		if n == 25 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if n != 25 {
		t.Errorf("frames = %d, want 25", n)
	}
}

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.json")
	data := `[
		{"frame": 10, "type": "resize", "width": 500, "height": 900},
		{"frame": 3, "type": "pointermove", "x": 10, "y": 20},
		{"frame": 3, "type": "touchmove", "touches": [{"clientX": 5, "clientY": 6}]}
	]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(s) != 3 {
		t.Fatalf("events = %d", len(s))
	}
	if s[0].Type != PointerMove || s[1].Type != TouchMove || s[2].Type != Resize {
		t.Errorf("order = %s, %s, %s", s[0].Type, s[1].Type, s[2].Type)
	}
	if s[1].Touches[0].ClientX != 5 || s[1].Touches[0].ClientY != 6 {
		t.Errorf("touch = %+v", s[1].Touches[0])
	}
}

func TestScriptValidate(t *testing.T) {
	tests := []struct {
		name   string
		script Script
		want   string
	}{
		{"negative frame", Script{{Frame: -1, Type: PointerMove}}, "negative frame"},
		{"unknown type", Script{{Type: "click"}}, "unknown type"},
		{"empty resize", Script{{Type: Resize, Width: 0, Height: 10}}, "resize to"},
	}
	for _, tt := range tests {
		err := tt.script.Validate()
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: err = %v, want %q", tt.name, err, tt.want)
		}
	}
}

func newWindow(width, height int, scale float64) (*Window, *animator.Animator) {
	vp := scene.Viewport{Width: width, Height: height, DevicePixelRatio: scale}
	a := animator.New(scene.Setup(vp), vp)
	return NewWindow(a, vp), a
}

func TestWindowLayoutUsesDeviceScale(t *testing.T) {
	tests := []struct {
		scale        float64
		wantW, wantH int
	}{
		{1, 200, 100},
		{1.5, 300, 150},
		{2, 400, 200},
		{3, 400, 200},
	}
	for _, tt := range tests {
		w, a := newWindow(200, 100, 1)
		gotW, gotH := w.Layout(200, 100, tt.scale)
		if gotW != tt.wantW || gotH != tt.wantH {
			t.Errorf("scale %v: layout = %dx%d, want %dx%d", tt.scale, gotW, gotH, tt.wantW, tt.wantH)
		}
		if pw, ph := a.Scene().Renderer.PixelSize(); pw != gotW || ph != gotH {
			t.Errorf("scale %v: renderer %dx%d differs from layout", tt.scale, pw, ph)
		}
	}
}

func TestWindowLayoutResizesOnChange(t *testing.T) {
	w, a := newWindow(1000, 500, 1)
	w.Layout(500, 800, 2)

	if a.Preset().Name != animator.Mobile.Name {
		t.Errorf("preset = %q, want mobile", a.Preset().Name)
	}
	if got := a.Scene().Camera.Aspect; got != 500.0/800.0 {
		t.Errorf("aspect = %v, want %v", got, 500.0/800.0)
	}
}

func TestWindowCursorScaledToClient(t *testing.T) {
	w, a := newWindow(200, 100, 2)
	w.Layout(200, 100, 2)

	w.Cursor(400, 200)
	if p := a.Pointer(); p.X != 1 || p.Y != 1 {
		t.Errorf("pointer = %+v, want (1,1)", p)
	}
	w.Cursor(100, 50)
	if p := a.Pointer(); p.X != -0.5 || p.Y != -0.5 {
		t.Errorf("pointer = %+v, want (-0.5,-0.5)", p)
	}
}

func TestWindowCursorUnchangedNotForwarded(t *testing.T) {
	w, a := newWindow(200, 100, 1)

	w.Cursor(0, 0)
	if p := a.Pointer(); p != (animator.Pointer{}) {
		t.Errorf("untouched cursor moved pointer to %+v", p)
	}

	w.Cursor(200, 100)
	w.Touches([]image.Point{{X: 0, Y: 0}})
	w.Cursor(200, 100)
	if p := a.Pointer(); p.X != -1 || p.Y != -1 {
		t.Errorf("stale cursor overrode touch: pointer = %+v", p)
	}
}

func TestWindowTouchesUseFirstPoint(t *testing.T) {
	w, a := newWindow(200, 100, 2)

	w.Touches([]image.Point{{X: 400, Y: 0}, {X: 0, Y: 200}})
	if p := a.Pointer(); p.X != 1 || p.Y != -1 {
		t.Errorf("pointer = %+v, want (1,-1)", p)
	}

	w.Touches(nil)
	if p := a.Pointer(); p.X != 1 || p.Y != -1 {
		t.Errorf("empty touch list changed pointer to %+v", p)
	}
}
