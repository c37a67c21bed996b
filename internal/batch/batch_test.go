package batch

import (
	"encoding/json"
	"errors"
	"image"
	"io"
	"os"
	"strings"
	"path/filepath"
	"testing"

	"golang.org/x/image/webp"

	"knotscene/internal/animator"
	"knotscene/internal/scene"
)

func testFrames(n int) []scene.Frame {
	vp := scene.Viewport{Width: 96, Height: 54, DevicePixelRatio: 1}
	a := animator.New(scene.Setup(vp), vp)
	frames := make([]scene.Frame, n)
	for i := range frames {
		frames[i] = a.Tick(float64(i) * 100)
	}
	return frames
}

func TestRunWritesFrames(t *testing.T) {
	dir := t.TempDir()
	frames := testFrames(3)

	results := Run(Config{OutputDir: dir, Supersample: 2, Workers: 2}, frames)
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	for i, r := range results {
		if !r.Success {
			t.Fatalf("frame %d failed: %s", i, r.Error)
		}
		if r.Index != i || r.Image != FrameName(i) {
			t.Errorf("result %d = %+v", i, r)
		}

		f, err := os.Open(filepath.Join(dir, r.Image))
		if err != nil {
			t.Fatalf("open frame: %v", err)
		}
		cfg, err := webp.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode frame %d: %v", i, err)
		}
		if cfg.Width != 96 || cfg.Height != 54 {
			t.Errorf("frame %d size = %dx%d, want 96x54", i, cfg.Width, cfg.Height)
		}
	}
}

func TestRunEmpty(t *testing.T) {
	if r := Run(Config{OutputDir: t.TempDir(), Workers: 1}, nil); len(r) != 0 {
		t.Errorf("results = %d, want 0", len(r))
	}
}

func TestRunRemovesFrameOnEncodeFailure(t *testing.T) {
	orig := encodeFrame
	encodeFrame = func(w io.Writer, img image.Image) error {
		w.Write([]byte("RIFF"))
		return errors.New("disk full")
	}
	defer func() { encodeFrame = orig }()

	dir := t.TempDir()
	results := Run(Config{OutputDir: dir, Supersample: 1, Workers: 1}, testFrames(1))
	r := results[0]
	if r.Success {
		t.Fatalf("frame reported success despite encode failure")
	}
	if !strings.Contains(r.Error, "disk full") {
		t.Errorf("error = %q, want encode cause", r.Error)
	}
	if _, err := os.Stat(filepath.Join(dir, r.Image)); !os.IsNotExist(err) {
		t.Errorf("partial frame left on disk: stat err = %v", err)
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	frames := testFrames(2)
	if err := WriteManifest(path, frames); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d", len(entries))
	}
	e := entries[1]
	if e.Image != "frame_00001.webp" || e.TimeMillis != 100 || e.Preset != "mobile" || e.Width != 96 {
		t.Errorf("entry = %+v", e)
	}
}
