package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds output paths, the simulated host and render settings.
type Config struct {
	// Paths
	OutputDir   string `json:"output_dir"`
	EventScript string `json:"event_script"`
	Backdrop    string `json:"backdrop"`

	// Simulated host viewport
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	DevicePixelRatio float64 `json:"device_pixel_ratio"`

	// Timeline
	Frames      int     `json:"frames"`
	FPS         float64 `json:"fps"`
	StartMillis float64 `json:"start_millis"`

	// Render settings
	Supersample int `json:"supersample"`
	Workers     int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// Relative paths in the file are relative to the file itself
	dir := filepath.Dir(path)
	cfg.EventScript = relTo(dir, cfg.EventScript)
	cfg.Backdrop = relTo(dir, cfg.Backdrop)

	return cfg, nil
}

func relTo(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.EventScript != "" {
		c.EventScript = flags.EventScript
	}
	if flags.Backdrop != "" {
		c.Backdrop = flags.Backdrop
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.DevicePixelRatio > 0 {
		c.DevicePixelRatio = flags.DevicePixelRatio
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.DevicePixelRatio <= 0 {
		c.DevicePixelRatio = 1
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir        string
	EventScript      string
	Backdrop         string
	Width            int
	Height           int
	DevicePixelRatio float64
	Frames           int
	FPS              float64
	Supersample      int
	Workers          int
}
