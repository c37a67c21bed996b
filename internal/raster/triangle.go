package raster

import (
	"math"

	"knotscene/internal/mathutil"
)

// Vertex is a vertex after projection: screen position and depth, plus the
// world-space position and normal used for per-pixel lighting.
type Vertex struct {
	X, Y  float64 // pixels, y down
	Depth float64 // larger is closer
	World mathutil.Vec3
	Norm  mathutil.Vec3
}

// RasterizeTriangle fills a triangle with per-pixel lighting and a z-buffer
// test. Normals and world positions are interpolated in screen space.
func RasterizeTriangle(fb *FrameBuffer, v0, v1, v2 *Vertex, sh *Shader) {
	x0, y0 := v0.X, v0.Y
	x1, y1 := v1.X, v1.Y
	x2, y2 := v2.X, v2.Y

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		// sample at pixel centers
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*v0.Depth + w1*v1.Depth + w2*v2.Depth
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			p := v0.World.Scale(w0).Add(v1.World.Scale(w1)).Add(v2.World.Scale(w2))
			n := v0.Norm.Scale(w0).Add(v1.Norm.Scale(w1)).Add(v2.Norm.Scale(w2)).Normalize()

			r, g, b := sh.Encode(sh.Shade(p, n))

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = r
			fb.Color[pxIdx+1] = g
			fb.Color[pxIdx+2] = b
			fb.Color[pxIdx+3] = 255
		}
	}
}
