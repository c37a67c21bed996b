package host

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"knotscene/internal/animator"
)

// Event types a script may contain.
const (
	PointerMove = "pointermove"
	TouchMove   = "touchmove"
	Resize      = "resize"
)

// Event is one host input delivered just before the tick of Frame.
type Event struct {
	Frame   int              `json:"frame"`
	Type    string           `json:"type"`
	X       float64          `json:"x,omitempty"`
	Y       float64          `json:"y,omitempty"`
	Touches []animator.Touch `json:"touches,omitempty"`
	Width   int              `json:"width,omitempty"`
	Height  int              `json:"height,omitempty"`
	DPR     float64          `json:"dpr,omitempty"`
}

// Script is an ordered list of events. Events sharing a frame keep their
// file order.
type Script []Event

// LoadScript reads and validates a JSON event script.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("host: read script %s: %w", path, err)
	}
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("host: parse script %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("host: script %s: %w", path, err)
	}
	s.sort()
	return s, nil
}

// Validate rejects unknown event types, negative frames and resizes to
// an empty viewport.
func (s Script) Validate() error {
	for i, e := range s {
		if e.Frame < 0 {
			return fmt.Errorf("event %d: negative frame %d", i, e.Frame)
		}
		switch e.Type {
		case PointerMove, TouchMove:
		case Resize:
			if e.Width <= 0 || e.Height <= 0 {
				return fmt.Errorf("event %d: resize to %dx%d", i, e.Width, e.Height)
			}
		default:
			return fmt.Errorf("event %d: unknown type %q", i, e.Type)
		}
	}
	return nil
}

func (s Script) sort() {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Frame < s[j].Frame })
}
