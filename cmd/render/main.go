package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"knotscene/internal/animator"
	"knotscene/internal/backdrop"
	"knotscene/internal/batch"
	"knotscene/internal/config"
	"knotscene/internal/host"
	"knotscene/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 120)")
	fps := flag.Float64("fps", 0, "Simulated display refresh rate (default: 60)")
	width := flag.Int("width", 0, "Viewport width (default: 1280)")
	height := flag.Int("height", 0, "Viewport height (default: 720)")
	dpr := flag.Float64("dpr", 0, "Device pixel ratio, capped at 2 (default: 1)")
	script := flag.String("script", "", "JSON event script of pointer/touch/resize events")
	bg := flag.String("backdrop", "", "PNG/JPEG/TGA image composited behind the knot")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	supersample := flag.Int("supersample", 0, "Supersample factor for anti-aliasing (default: 2)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:        *outputDir,
		EventScript:      *script,
		Backdrop:         *bg,
		Width:            *width,
		Height:           *height,
		DevicePixelRatio: *dpr,
		Frames:           *frames,
		FPS:              *fps,
		Supersample:      *supersample,
		Workers:          *workers,
	})

	var events host.Script
	if cfg.EventScript != "" {
		var err error
		events, err = host.LoadScript(cfg.EventScript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading event script: %v\n", err)
			os.Exit(1)
		}
	}

	var bgImg image.Image
	if cfg.Backdrop != "" {
		img, err := backdrop.Load(cfg.Backdrop)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading backdrop: %v\n", err)
			os.Exit(1)
		}
		bgImg = img
	}

	vp := scene.Viewport{Width: cfg.Width, Height: cfg.Height, DevicePixelRatio: cfg.DevicePixelRatio}
	anim := animator.New(scene.Setup(vp), vp)

	fmt.Printf("Torus knot renderer → WebP\n")
	fmt.Printf("Viewport: %dx%d @%gx, Preset: %s\n", vp.Width, vp.Height, anim.Scene().Renderer.PixelRatio, anim.Preset().Name)
	fmt.Printf("Frames: %d @ %g fps, Events: %d, Workers: %d\n", cfg.Frames, cfg.FPS, len(events), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Simulate the animation-frame chain
	sched := &host.Scheduler{
		Animator: anim,
		Clock:    host.FixedClock{StartMillis: cfg.StartMillis, FPS: cfg.FPS},
		Script:   events,
	}
	timeline := make([]scene.Frame, 0, cfg.Frames)
	err := sched.Run(context.Background(), cfg.Frames, func(_ int, f scene.Frame) error {
		timeline = append(timeline, f)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running timeline: %v\n", err)
		os.Exit(1)
	}

	// Run batch
	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Backdrop:    bgImg,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Progress:    2 * time.Second,
	}, timeline)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Image, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: create output dir: %v\n", err)
	}
	if err := batch.WriteManifest(manifestPath, timeline); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
