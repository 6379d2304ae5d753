// Package rotator sequences screens: next game, each game in turn, then hype and confetti.
package rotator

// Screen is one renderable unit.
type Screen int

const (
	ScreenNextGame Screen = iota
	ScreenGame
	ScreenHype
	ScreenConfetti
	ScreenPlaceholder
)

func (s Screen) String() string {
	switch s {
	case ScreenNextGame:
		return "next_game"
	case ScreenGame:
		return "game"
	case ScreenHype:
		return "hype"
	case ScreenConfetti:
		return "confetti"
	case ScreenPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Step is one screen to render. GameIndex is only meaningful for ScreenGame.
type Step struct {
	Screen    Screen
	GameIndex int
}

// Rotator holds the monotonically increasing position counter.
// The counter is never reset when the game list changes; it is reduced modulo
// the current list length on every step.
type Rotator struct {
	idx int
}

// New returns a Rotator at position zero.
func New() *Rotator {
	return &Rotator{}
}

// Advance plans one rotation step for a list of n games and moves the counter.
// The next-game screen leads a cycle and hype plus confetti close it.
// n <= 0 yields no steps and leaves the counter untouched.
func (r *Rotator) Advance(n int) []Step {
	if n <= 0 {
		return nil
	}
	steps := make([]Step, 0, 4)
	if r.idx%n == 0 {
		steps = append(steps, Step{Screen: ScreenNextGame})
	}
	steps = append(steps, Step{Screen: ScreenGame, GameIndex: r.idx % n})
	r.idx++
	if r.idx%n == 0 {
		steps = append(steps, Step{Screen: ScreenHype}, Step{Screen: ScreenConfetti})
	}
	return steps
}

// Index returns the raw counter.
func (r *Rotator) Index() int {
	return r.idx
}
