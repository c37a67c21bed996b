package raster

import "math"

// depthBias lets lines lying on a surface pass the depth test.
const depthBias = 1e-4

// LineStyle is a flat translucent stroke.
type LineStyle struct {
	R, G, B uint8
	Opacity float64
	Width   int // pixels across the minor axis
}

// DrawLine strokes a segment with a depth test against the z-buffer and
// "over" blending. It never writes depth, so translucent strokes don't hide
// each other.
func DrawLine(fb *FrameBuffer, a, b *Vertex, st LineStyle) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps < 1 {
		steps = 1
	}
	width := st.Width
	if width < 1 {
		width = 1
	}
	xMajor := math.Abs(dx) >= math.Abs(dy)

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := a.X + dx*t
		y := a.Y + dy*t
		z := a.Depth + (b.Depth-a.Depth)*t

		px := int(math.Floor(x))
		py := int(math.Floor(y))
		for k := 0; k < width; k++ {
			off := k - width/2
			if xMajor {
				blendPixel(fb, px, py+off, z, st)
			} else {
				blendPixel(fb, px+off, py, z, st)
			}
		}
	}
}

func blendPixel(fb *FrameBuffer, x, y int, z float64, st LineStyle) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	idx := y*fb.Width + x
	if z+depthBias < fb.ZBuf[idx] {
		return
	}

	i := idx * 4
	sa := st.Opacity
	da := float64(fb.Color[i+3]) / 255.0
	outA := sa + da*(1-sa)
	if outA <= 0 {
		return
	}
	mix := func(s, d uint8) uint8 {
		return clamp255((float64(s)*sa + float64(d)*da*(1-sa)) / outA)
	}
	fb.Color[i] = mix(st.R, fb.Color[i])
	fb.Color[i+1] = mix(st.G, fb.Color[i+1])
	fb.Color[i+2] = mix(st.B, fb.Color[i+2])
	fb.Color[i+3] = clamp255(outA * 255)
}
