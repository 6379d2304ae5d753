package display

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FrameBuffer is a double-buffered in-memory panel. Draw calls land on the back
// buffer; Swap publishes it. The front buffer can be exported as PNG at any time.
type FrameBuffer struct {
	mu     sync.Mutex
	back   *image.RGBA
	front  *image.RGBA
	frames int
}

// NewFrameBuffer allocates a width x height panel, falling back to the LED panel size.
func NewFrameBuffer(width, height int) *FrameBuffer {
	if width <= 0 || height <= 0 {
		width, height = Width, Height
	}
	rect := image.Rect(0, 0, width, height)
	fb := &FrameBuffer{
		back:  image.NewRGBA(rect),
		front: image.NewRGBA(rect),
	}
	fb.Clear()
	xdraw.Draw(fb.front, rect, image.Black, image.Point{}, xdraw.Src)
	return fb
}

func (fb *FrameBuffer) Width() int {
	return fb.back.Bounds().Dx()
}

func (fb *FrameBuffer) Height() int {
	return fb.back.Bounds().Dy()
}

func (fb *FrameBuffer) Clear() {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	xdraw.Draw(fb.back, fb.back.Bounds(), image.Black, image.Point{}, xdraw.Src)
}

func (fb *FrameBuffer) DrawText(f Font, x, y int, c color.RGBA, text string) {
	if f.Face == nil || text == "" {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	d := font.Drawer{
		Dst:  fb.back,
		Src:  image.NewUniform(c),
		Face: f.Face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// SetPixel ignores coordinates outside the panel.
func (fb *FrameBuffer) SetPixel(x, y int, c color.RGBA) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if !(image.Point{X: x, Y: y}).In(fb.back.Bounds()) {
		return
	}
	fb.back.SetRGBA(x, y, c)
}

func (fb *FrameBuffer) Swap() error {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	copy(fb.front.Pix, fb.back.Pix)
	fb.frames++
	return nil
}

// Frames returns how many frames have been swapped in.
func (fb *FrameBuffer) Frames() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.frames
}

// At returns the visible color at x, y.
func (fb *FrameBuffer) At(x, y int) color.RGBA {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.front.RGBAAt(x, y)
}

// Snapshot returns a copy of the visible frame.
func (fb *FrameBuffer) Snapshot() *image.RGBA {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := image.NewRGBA(fb.front.Bounds())
	copy(out.Pix, fb.front.Pix)
	return out
}

// WritePNG encodes the visible frame, enlarged by scale with nearest-neighbour sampling.
func (fb *FrameBuffer) WritePNG(w io.Writer, scale int) error {
	src := fb.Snapshot()
	if scale <= 1 {
		return png.Encode(w, src)
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return png.Encode(w, dst)
}
