package testutil

import (
	"image/color"
	"sync"

	"github.com/preston-bernstein/nhl-scoreboard/internal/display"
)

// TextCall is one DrawText invocation.
type TextCall struct {
	X, Y  int
	Color color.RGBA
	Text  string
}

// Frame is everything drawn between a Clear and a Swap.
type Frame struct {
	Texts  []TextCall
	Pixels map[color.RGBA]int
}

// PixelCount returns the total SetPixel calls in the frame.
func (f Frame) PixelCount() int {
	total := 0
	for _, n := range f.Pixels {
		total += n
	}
	return total
}

// RecordingSurface is a display.Surface that keeps every swapped frame.
type RecordingSurface struct {
	mu      sync.Mutex
	W, H    int
	SwapErr error
	current Frame
	frames  []Frame
}

// NewRecordingSurface returns a surface the size of the LED panel.
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{W: display.Width, H: display.Height}
}

func (s *RecordingSurface) Width() int {
	return s.W
}

func (s *RecordingSurface) Height() int {
	return s.H
}

func (s *RecordingSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Frame{}
}

func (s *RecordingSurface) DrawText(_ display.Font, x, y int, c color.RGBA, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Texts = append(s.current.Texts, TextCall{X: x, Y: y, Color: c, Text: text})
}

func (s *RecordingSurface) SetPixel(_, _ int, c color.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current.Pixels == nil {
		s.current.Pixels = map[color.RGBA]int{}
	}
	s.current.Pixels[c]++
}

func (s *RecordingSurface) Swap() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SwapErr != nil {
		return s.SwapErr
	}
	s.frames = append(s.frames, s.current)
	return nil
}

// Frames returns a copy of the swapped frames.
func (s *RecordingSurface) Frames() []Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Frame(nil), s.frames...)
}

// Last returns the most recently swapped frame.
func (s *RecordingSurface) Last() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		return Frame{}
	}
	return s.frames[len(s.frames)-1]
}

// Reset drops recorded frames.
func (s *RecordingSurface) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = nil
	s.current = Frame{}
}
