package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// TerminalRenderer presents a framebuffer on the terminal. Each terminal cell
// shows two vertically stacked pixels using the upper-half-block character,
// so the framebuffer height is twice the terminal row count.
type TerminalRenderer struct {
	term *uv.Terminal
	cols int
	rows int
}

// NewTerminalRenderer creates a renderer for a terminal of cols×rows cells.
func NewTerminalRenderer(term *uv.Terminal, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{term: term, cols: cols, rows: rows}
}

// FramebufferSize returns the pixel dimensions the framebuffer should have.
func (r *TerminalRenderer) FramebufferSize() (width, height int) {
	return r.cols, r.rows * 2
}

// Render converts the framebuffer to terminal cells.
func (r *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(r.term, uv.Rect(0, 0, r.cols, r.rows))
}

// Flush displays the prepared cells.
func (r *TerminalRenderer) Flush() error {
	return r.term.Display()
}

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. Each terminal row covers 2 framebuffer rows: ▀ with fg = top pixel
// and bg = bottom pixel.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			top := fb.ColorAt(col, topY)
			bot := fb.ColorAt(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: color.RGBA{top.R, top.G, top.B, 255},
					Bg: color.RGBA{bot.R, bot.G, bot.B, 255},
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}
