// orrery - Software-rendered planetary system
// A toy solar system drawn by a pure-CPU pipeline, in the terminal or a window.
//
// Controls:
//
//	Left/Right  - Orbit camera around the focus
//	W/S         - Pitch camera up/down
//	A/D         - Pan focus left/right
//	Q/E         - Pan focus up/down
//	Up/Down     - Zoom in/out
//	N           - Focus the next body
//	O           - Toggle orbit rings
//	R           - Reset the camera
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/orrery/pkg/display"
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/models"
	"github.com/taigrr/orrery/pkg/render"
	"github.com/taigrr/orrery/pkg/scene"
)

var (
	targetFPS  = flag.Int("fps", 60, "Target FPS")
	bgColor    = flag.String("bg", "0,0,0", "Background color (R,G,B)")
	starCount  = flag.Int("stars", 15, "Background stars per frame (0 disables)")
	showOrbits = flag.Bool("orbits", false, "Draw orbit rings")
	windowed   = flag.Bool("window", false, "Render into a desktop window instead of the terminal")
	winWidth   = flag.Int("width", 800, "Framebuffer width in windowed mode")
	winHeight  = flag.Int("height", 600, "Framebuffer height in windowed mode")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "orrery - Software-rendered planetary system\n\n")
		fmt.Fprintf(os.Stderr, "Usage: orrery [options] [model.obj|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Without a model argument a procedural sphere is used.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Left/Right  - Orbit camera\n")
		fmt.Fprintf(os.Stderr, "  W/S         - Pitch camera\n")
		fmt.Fprintf(os.Stderr, "  A/D/Q/E     - Pan focus\n")
		fmt.Fprintf(os.Stderr, "  Up/Down     - Zoom\n")
		fmt.Fprintf(os.Stderr, "  N           - Focus next body\n")
		fmt.Fprintf(os.Stderr, "  O           - Toggle orbit rings\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset camera\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadBodyMesh loads the mesh shared by every body, or builds a procedural
// sphere when no path is given.
func loadBodyMesh(path string) (*models.Mesh, error) {
	if path == "" {
		return models.UVSphere(24, 48), nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	var mesh *models.Mesh
	var err error
	switch ext {
	case ".glb", ".gltf":
		mesh, err = models.LoadGLB(path)
	case ".obj":
		mesh, err = models.LoadOBJ(path)
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj or .glb)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	mesh.Normalize()
	return mesh, nil
}

// orbitAxis tracks one camera rotation axis with spring-decayed velocity so
// held keys feel like momentum rather than stepping.
type orbitAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

func newOrbitAxis(fps int) orbitAxis {
	return orbitAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update decays velocity toward zero and returns the step to apply this frame.
func (a *orbitAxis) Update() float64 {
	step := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return step
}

func parseBackground(s string) render.Color {
	var r, g, b uint8
	fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b)
	return render.RGB(r, g, b)
}

func run(modelPath string) error {
	mesh, err := loadBodyMesh(modelPath)
	if err != nil {
		return err
	}

	sys := scene.NewSystem(mesh.VertexArray(render.RGB(100, 100, 100)), scene.DefaultBodies())
	sys.Stars = *starCount
	sys.ShowOrbits = *showOrbits

	background := parseBackground(*bgColor)
	if *windowed {
		return display.RunWindow(sys, *winWidth, *winHeight, *targetFPS, background)
	}
	return runTerminal(sys, background)
}

func runTerminal(sys *scene.System, background render.Color) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)
	fb.SetBackground(background)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	const (
		orbitStrength = math.Pi / 50
		panStrength   = 1.0
		zoomStrength  = 0.1
	)

	yaw := newOrbitAxis(*targetFPS)
	pitch := newOrbitAxis(*targetFPS)
	focused := 0

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.FramebufferSize()
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				fb.SetBackground(background)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("left"):
					yaw.Velocity = orbitStrength
				case ev.MatchString("right"):
					yaw.Velocity = -orbitStrength
				case ev.MatchString("w"):
					pitch.Velocity = -orbitStrength
				case ev.MatchString("s"):
					pitch.Velocity = orbitStrength
				case ev.MatchString("a"):
					sys.Camera.MoveCenter(math3d.V3(-panStrength, 0, 0))
				case ev.MatchString("d"):
					sys.Camera.MoveCenter(math3d.V3(panStrength, 0, 0))
				case ev.MatchString("q"):
					sys.Camera.MoveCenter(math3d.V3(0, panStrength, 0))
				case ev.MatchString("e"):
					sys.Camera.MoveCenter(math3d.V3(0, -panStrength, 0))
				case ev.MatchString("up"):
					sys.Camera.Zoom(zoomStrength)
				case ev.MatchString("down"):
					sys.Camera.Zoom(-zoomStrength)
				case ev.MatchString("n"):
					focused = (focused + 1) % len(sys.Bodies)
					sys.FocusBody(focused)
				case ev.MatchString("r"):
					focused = 0
					sys.Camera = render.NewCamera(
						math3d.V3(0, 0, 10),
						math3d.Zero3(),
						math3d.Up(),
					)
				case ev.MatchString("o"):
					sys.ShowOrbits = !sys.ShowOrbits
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()

		dy := yaw.Update()
		dp := pitch.Update()
		if dy != 0 || dp != 0 {
			sys.Camera.Orbit(dy, dp)
		}

		sys.Advance()
		sys.RenderFrame(fb, rng)

		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
