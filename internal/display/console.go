package display

import (
	"fmt"
	"image/color"
	"io"
	"sort"
	"strings"
	"sync"

	fcolor "github.com/fatih/color"
)

type consoleText struct {
	x, y int
	c    color.RGBA
	text string
}

// Console renders each swapped frame as colored text lines, one per distinct
// baseline, in the nearest ANSI color. Identical consecutive frames are printed once.
type Console struct {
	mu        sync.Mutex
	out       io.Writer
	width     int
	height    int
	useColors bool
	pending   []consoleText
	pixels    int
	last      string
}

// NewConsole writes frames to out. useColors=false strips ANSI codes.
func NewConsole(out io.Writer, useColors bool) *Console {
	return &Console{out: out, width: Width, height: Height, useColors: useColors}
}

func (c *Console) Width() int {
	return c.width
}

func (c *Console) Height() int {
	return c.height
}

func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = c.pending[:0]
	c.pixels = 0
}

func (c *Console) DrawText(_ Font, x, y int, col color.RGBA, text string) {
	if text == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, consoleText{x: x, y: y, c: col, text: text})
}

func (c *Console) SetPixel(x, y int, _ color.RGBA) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pixels++
}

func (c *Console) Swap() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	frame := c.renderLocked()
	if frame == c.last {
		return nil
	}
	c.last = frame
	_, err := io.WriteString(c.out, frame)
	return err
}

func (c *Console) renderLocked() string {
	items := append([]consoleText(nil), c.pending...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].y != items[j].y {
			return items[i].y < items[j].y
		}
		return items[i].x < items[j].x
	})

	var b strings.Builder
	b.WriteString("+" + strings.Repeat("-", 20) + "\n")
	row := -1
	for _, it := range items {
		if it.y != row {
			if row != -1 {
				b.WriteString("\n")
			}
			b.WriteString("| ")
			row = it.y
		} else {
			b.WriteString(" ")
		}
		b.WriteString(c.paint(it.c, it.text))
	}
	if row != -1 {
		b.WriteString("\n")
	}
	if c.pixels > 0 {
		fmt.Fprintf(&b, "| * %d pixels\n", c.pixels)
	}
	return b.String()
}

func (c *Console) paint(col color.RGBA, text string) string {
	if !c.useColors {
		return text
	}
	p := fcolor.New(NearestANSI(col))
	p.EnableColor()
	return p.Sprint(text)
}

var ansiPalette = []struct {
	attr fcolor.Attribute
	rgb  color.RGBA
}{
	{fcolor.FgBlack, color.RGBA{A: 255}},
	{fcolor.FgRed, color.RGBA{R: 205, A: 255}},
	{fcolor.FgGreen, color.RGBA{G: 205, A: 255}},
	{fcolor.FgYellow, color.RGBA{R: 205, G: 205, A: 255}},
	{fcolor.FgBlue, color.RGBA{B: 238, A: 255}},
	{fcolor.FgMagenta, color.RGBA{R: 205, B: 205, A: 255}},
	{fcolor.FgCyan, color.RGBA{G: 205, B: 205, A: 255}},
	{fcolor.FgWhite, color.RGBA{R: 229, G: 229, B: 229, A: 255}},
	{fcolor.FgHiBlack, color.RGBA{R: 127, G: 127, B: 127, A: 255}},
	{fcolor.FgHiRed, color.RGBA{R: 255, A: 255}},
	{fcolor.FgHiGreen, color.RGBA{G: 255, A: 255}},
	{fcolor.FgHiYellow, color.RGBA{R: 255, G: 255, A: 255}},
	{fcolor.FgHiBlue, color.RGBA{R: 92, G: 92, B: 255, A: 255}},
	{fcolor.FgHiMagenta, color.RGBA{R: 255, B: 255, A: 255}},
	{fcolor.FgHiCyan, color.RGBA{G: 255, B: 255, A: 255}},
	{fcolor.FgHiWhite, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
}

// NearestANSI maps an RGB color onto the closest of the 16 terminal colors.
func NearestANSI(c color.RGBA) fcolor.Attribute {
	best := ansiPalette[0].attr
	bestDist := -1
	for _, p := range ansiPalette {
		dr := int(c.R) - int(p.rgb.R)
		dg := int(c.G) - int(p.rgb.G)
		db := int(c.B) - int(p.rgb.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.attr, d
		}
	}
	return best
}
