package batch

import (
	"encoding/json"
	"os"

	"knotscene/internal/scene"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index      int     `json:"index"`
	TimeMillis float64 `json:"time_millis"`
	Preset     string  `json:"preset"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Image      string  `json:"image"`
}

// WriteManifest writes manifest.json describing every frame.
func WriteManifest(path string, frames []scene.Frame) error {
	entries := make([]ManifestEntry, len(frames))
	for i, f := range frames {
		w, h := f.Renderer.PixelSize()
		entries[i] = ManifestEntry{
			Index:      i,
			TimeMillis: f.TimeMillis,
			Preset:     f.Preset,
			Width:      w,
			Height:     h,
			Image:      FrameName(i),
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
