// Package raster is a software renderer for scene frames: the solid knot
// is filled with per-pixel metal lighting, the wireframe shell is stroked
// over it with alpha blending, and the background stays transparent.
package raster

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"

	"knotscene/internal/geometry"
	"knotscene/internal/mathutil"
	"knotscene/internal/scene"
)

// Options tune a single render.
type Options struct {
	// Supersample multiplies the backing buffer size; callers downsample
	// the result for anti-aliasing. Values below 1 mean 1.
	Supersample int
}

// Render draws the frame into a new NRGBA image of the renderer's pixel
// size times the supersample factor.
func Render(f scene.Frame, opts Options) *image.NRGBA {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	w, h := f.Renderer.PixelSize()
	w *= ss
	h *= ss

	fb := NewFrameBuffer(w, h)
	viewProj := f.Camera.ViewProjection()

	if f.Solid.Geometry != nil {
		verts := project(f.Solid.Geometry, f.Solid.Transform, viewProj, f.Camera.Near, w, h)
		sh := NewShader(f, f.Solid.Material)
		for _, tri := range f.Solid.Geometry.Tris {
			v0, v1, v2 := &verts[tri[0]], &verts[tri[1]], &verts[tri[2]]
			if v0.clipped || v1.clipped || v2.clipped {
				continue
			}
			RasterizeTriangle(fb, &v0.Vertex, &v1.Vertex, &v2.Vertex, sh)
		}
	}

	if f.Wire.Geometry != nil && f.Wire.Material.Wireframe {
		verts := project(f.Wire.Geometry, f.Wire.Transform, viewProj, f.Camera.Near, w, h)
		r, g, b := f.Wire.Material.Color.RGB()
		opacity := 1.0
		if f.Wire.Material.Transparent {
			opacity = f.Wire.Material.Opacity
		}
		st := LineStyle{R: r, G: g, B: b, Opacity: opacity, Width: ss}
		for _, e := range f.Wire.Edges {
			va, vb := &verts[e[0]], &verts[e[1]]
			if va.clipped || vb.clipped {
				continue
			}
			DrawLine(fb, &va.Vertex, &vb.Vertex, st)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, fb.Color)
	return img
}

type projected struct {
	Vertex
	clipped bool
}

// project transforms geometry to world space and then to screen space.
// Vertices at or behind the near plane are flagged as clipped.
func project(g *geometry.Geometry, t scene.Transform, viewProj mgl64.Mat4, near float64, w, h int) []projected {
	model := t.Matrix()
	rot := mathutil.EulerXYZ(t.Rotation)

	out := make([]projected, len(g.Positions))
	for i, p := range g.Positions {
		world := model.MulPoint(p)
		clip := viewProj.Mul4x1(mgl64.Vec4{world[0], world[1], world[2], 1})

		pv := &out[i]
		pv.World = world
		pv.Norm = rot.MulVec3(g.Normals[i])
		if clip[3] <= near {
			pv.clipped = true
			continue
		}
		invW := 1 / clip[3]
		ndcX := clip[0] * invW
		ndcY := clip[1] * invW
		ndcZ := clip[2] * invW

		pv.X = (ndcX + 1) * 0.5 * float64(w)
		pv.Y = (1 - ndcY) * 0.5 * float64(h)
		pv.Depth = -ndcZ
	}
	return out
}
