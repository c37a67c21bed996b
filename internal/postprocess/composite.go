package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Composite draws frame over backdrop scaled to the frame's size. A nil
// backdrop returns frame unchanged.
func Composite(frame *image.NRGBA, backdrop image.Image) *image.NRGBA {
	if backdrop == nil {
		return frame
	}
	b := frame.Bounds()
	out := image.NewNRGBA(b)
	draw.BiLinear.Scale(out, b, backdrop, backdrop.Bounds(), draw.Src, nil)
	draw.Draw(out, b, frame, b.Min, draw.Over)
	return out
}

// Premultiply converts to premultiplied RGBA, the layout GPU uploads expect.
func Premultiply(img *image.NRGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
