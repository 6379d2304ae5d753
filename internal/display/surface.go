// Package display provides drawing surfaces for the scoreboard: an in-memory
// framebuffer (exportable as PNG) and a colored console renderer.
package display

import "image/color"

const (
	// Width is the pixel width of the LED panel.
	Width = 64
	// Height is the pixel height of the LED panel.
	Height = 32
)

// Surface accepts drawing primitives for one frame. Nothing drawn becomes
// visible until Swap; a frame is a Clear followed by draws and a Swap.
type Surface interface {
	Width() int
	Height() int
	Clear()
	// DrawText draws text with its baseline at y.
	DrawText(f Font, x, y int, c color.RGBA, text string)
	SetPixel(x, y int, c color.RGBA)
	Swap() error
}
