package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"knotscene/internal/animator"
	"knotscene/internal/backdrop"
	"knotscene/internal/host"
	"knotscene/internal/postprocess"
	"knotscene/internal/raster"
	"knotscene/internal/scene"
)

// Game adapts the animator to ebiten's update/draw/layout callbacks.
type Game struct {
	anim     *animator.Animator
	window   *host.Window
	clock    host.WallClock
	backdrop image.Image
	touches  []ebiten.TouchID
}

func (g *Game) Update() error {
	g.window.Cursor(ebiten.CursorPosition())

	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		points := make([]image.Point, len(g.touches))
		for i, id := range g.touches {
			points[i] = image.Pt(ebiten.TouchPosition(id))
		}
		g.window.Touches(points)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.anim.Tick(g.clock.Millis(0))
	img := raster.Render(f, raster.Options{Supersample: 1})
	img = postprocess.Composite(img, g.backdrop)

	b := screen.Bounds()
	if img.Bounds().Dx() != b.Dx() || img.Bounds().Dy() != b.Dy() {
		// layout changed between Tick and Draw; skip this frame
		return
	}
	screen.WritePixels(postprocess.Premultiply(img).Pix)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.window.Layout(outsideWidth, outsideHeight, deviceScale())
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func main() {
	width := flag.Int("width", 1280, "Initial window width")
	height := flag.Int("height", 720, "Initial window height")
	bg := flag.String("backdrop", "", "PNG/JPEG/TGA image drawn behind the knot")
	flag.Parse()

	g := &Game{}
	if *bg != "" {
		img, err := backdrop.Load(*bg)
		if err != nil {
			log.Fatalf("Failed to load backdrop: %v", err)
		}
		g.backdrop = img
	}

	vp := scene.Viewport{Width: *width, Height: *height, DevicePixelRatio: deviceScale()}
	g.anim = animator.New(scene.Setup(vp), vp)
	g.window = host.NewWindow(g.anim, vp)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("knotscene")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
