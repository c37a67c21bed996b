package scene

import "knotscene/internal/mathutil"

// AmbientLight lights every surface uniformly.
type AmbientLight struct {
	Color     Color
	Intensity float64
}

// PointLight emits from Position and fades to zero at Distance.
type PointLight struct {
	Color     Color
	Intensity float64
	Distance  float64
	Position  mathutil.Vec3
}

// Attenuation returns the falloff factor at distance d: (1 - d/Distance)²,
// zero beyond Distance. A zero Distance means no falloff.
func (l PointLight) Attenuation(d float64) float64 {
	if l.Distance <= 0 {
		return 1
	}
	f := 1 - d/l.Distance
	if f <= 0 {
		return 0
	}
	return f * f
}
