package raster

import (
	"math"

	"knotscene/internal/mathutil"
	"knotscene/internal/scene"
)

type pointLight struct {
	pos      mathutil.Vec3
	radiance mathutil.Vec3 // linear color × intensity
	light    scene.PointLight
}

// Shader evaluates the knot's metal/roughness surface under the frame's
// ambient and point lights. It is built once per frame.
type Shader struct {
	eye       mathutil.Vec3
	ambient   mathutil.Vec3
	lights    []pointLight
	diffuse   mathutil.Vec3
	f0        mathutil.Vec3
	shininess float64
	specNorm  float64
	Exposure  float64
	InvGamma  float64
}

// NewShader precomputes lighting terms for a material.
func NewShader(f scene.Frame, m scene.StandardMaterial) *Shader {
	base := m.Color.Linear()
	metal := clamp01(m.Metalness)

	// Blinn-Phong exponent roughly matching a GGX lobe of the same roughness
	rough := math.Max(m.Roughness, 0.05)
	alpha := rough * rough
	shininess := 2/(alpha*alpha) - 2
	// keep highlights wide enough to survive per-pixel interpolation
	shininess = math.Min(shininess, 512)

	s := &Shader{
		eye:       f.Camera.Position,
		ambient:   f.Ambient.Color.Linear().Scale(f.Ambient.Intensity),
		diffuse:   base.Scale(1 - metal),
		f0:        mathutil.Vec3{0.04, 0.04, 0.04}.Lerp(base, metal),
		shininess: shininess,
		specNorm:  (shininess + 8) / (8 * math.Pi),
		Exposure:  1.0,
		InvGamma:  1.0 / 2.2,
	}
	for _, l := range f.Lights {
		s.lights = append(s.lights, pointLight{
			pos:      l.Position,
			radiance: l.Color.Linear().Scale(l.Intensity),
			light:    l,
		})
	}
	return s
}

// Shade returns linear radiance at world point p with unit normal n.
func (s *Shader) Shade(p, n mathutil.Vec3) mathutil.Vec3 {
	view := s.eye.Sub(p).Normalize()
	out := s.ambient.Mul(s.diffuse)

	for i := range s.lights {
		l := &s.lights[i]
		toLight := l.pos.Sub(p)
		d := toLight.Len()
		atten := l.light.Attenuation(d)
		if atten == 0 || d < 1e-9 {
			continue
		}
		ld := toLight.Scale(1 / d)
		ndl := n.Dot(ld)
		if ndl <= 0 {
			continue
		}

		half := ld.Add(view).Normalize()
		ndh := n.Dot(half)
		if ndh < 0 {
			ndh = 0
		}
		spec := math.Pow(ndh, s.shininess) * s.specNorm

		term := s.diffuse.Add(s.f0.Scale(spec)).Scale(ndl * atten)
		out = out.Add(term.Mul(l.radiance))
	}
	return out
}

// Encode tone maps a linear color and converts it to 8-bit sRGB.
func (s *Shader) Encode(c mathutil.Vec3) (r, g, b uint8) {
	r = clamp255(math.Pow(ACESTonemap(c[0]*s.Exposure), s.InvGamma) * 255)
	g = clamp255(math.Pow(ACESTonemap(c[1]*s.Exposure), s.InvGamma) * 255)
	b = clamp255(math.Pow(ACESTonemap(c[2]*s.Exposure), s.InvGamma) * 255)
	return r, g, b
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
