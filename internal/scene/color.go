package scene

import (
	"math"

	"knotscene/internal/mathutil"
)

// Color is a 24-bit sRGB color written as 0xRRGGBB.
type Color uint32

// RGB returns the 8-bit sRGB channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Linear decodes the color into linear-light components in [0, 1].
func (c Color) Linear() mathutil.Vec3 {
	r, g, b := c.RGB()
	return mathutil.Vec3{
		math.Pow(float64(r)/255.0, 2.2),
		math.Pow(float64(g)/255.0, 2.2),
		math.Pow(float64(b)/255.0, 2.2),
	}
}
