// Package display hosts the windowed frontend for the orrery renderer.
package display

import (
	"image"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/render"
	"github.com/taigrr/orrery/pkg/scene"
)

const (
	panSpeed   = 1.0
	orbitSpeed = math.Pi / 50
	zoomSpeed  = 0.1
)

// RunWindow opens a desktop window rendering the system at the given
// framebuffer resolution. It blocks until the window closes or Escape is
// pressed.
func RunWindow(sys *scene.System, width, height, tps int, background render.Color) error {
	fb := render.NewFramebuffer(width, height)
	fb.SetBackground(background)
	g := &game{
		sys: sys,
		fb:  fb,
		rng: rand.New(rand.NewSource(1)),
	}
	ebiten.SetWindowTitle("orrery")
	ebiten.SetWindowSize(width, height)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}
	return ebiten.RunGame(g)
}

type game struct {
	sys *scene.System
	fb  *render.Framebuffer
	rng *rand.Rand

	focused int
	img     *image.RGBA
	fbImg   *ebiten.Image
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	cam := g.sys.Camera
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		cam.Orbit(orbitSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		cam.Orbit(-orbitSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		cam.Orbit(0, -orbitSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		cam.Orbit(0, orbitSpeed)
	}

	var pan math3d.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		pan.X -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		pan.X += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		pan.Y += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		pan.Y -= panSpeed
	}
	if pan.LenSq() > 0 {
		cam.MoveCenter(pan)
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		cam.Zoom(zoomSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		cam.Zoom(-zoomSpeed)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.focused = (g.focused + 1) % len(g.sys.Bodies)
		g.sys.FocusBody(g.focused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.sys.ShowOrbits = !g.sys.ShowOrbits
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.focused = 0
		g.sys.Camera = render.NewCamera(
			math3d.V3(0, 0, 10),
			math3d.Zero3(),
			math3d.Up(),
		)
	}

	g.sys.Advance()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.sys.RenderFrame(g.fb, g.rng)

	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.fb.Width, g.fb.Height))
		g.fbImg = ebiten.NewImage(g.fb.Width, g.fb.Height)
	}

	dst := g.img.Pix
	for y := 0; y < g.fb.Height; y++ {
		for x := 0; x < g.fb.Width; x++ {
			c := g.fb.ColorAt(x, y)
			i := (y*g.fb.Width + x) * 4
			dst[i+0] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = 0xFF
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}
