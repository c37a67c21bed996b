package batch

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"knotscene/internal/postprocess"
	"knotscene/internal/raster"
	"knotscene/internal/scene"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Backdrop    image.Image
	Supersample int
	Workers     int
	// Progress interval; zero disables progress output.
	Progress time.Duration
}

// Result holds the outcome of processing one frame.
type Result struct {
	Index   int
	Image   string
	Success bool
	Error   string
}

// encodeFrame writes img as lossless WebP.
var encodeFrame = func(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

// FrameName returns the file name for frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%05d.webp", i)
}

// Run renders and encodes all frames using a worker pool. Results are in
// frame order.
func Run(cfg Config, frames []scene.Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	if total == 0 {
		return results
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, idx, frames[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func processFrame(cfg Config, idx int, f scene.Frame) Result {
	name := FrameName(idx)
	fail := func(msg string) Result {
		return Result{Index: idx, Image: name, Error: msg}
	}

	img := raster.Render(f, raster.Options{Supersample: cfg.Supersample})

	// Anti-aliasing: supersample downsample
	if cfg.Supersample > 1 {
		w, h := f.Renderer.PixelSize()
		img = postprocess.Downsample(img, w, h)
	}

	img = postprocess.Composite(img, cfg.Backdrop)

	outPath := filepath.Join(cfg.OutputDir, name)
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fail(err.Error())
	}

	if err := writeFrame(outPath, img); err != nil {
		return fail(err.Error())
	}

	return Result{Index: idx, Image: name, Success: true}
}

// writeFrame encodes img to path. A partially written file is removed.
func writeFrame(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := encodeFrame(out, img); err != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("WebP encode: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
