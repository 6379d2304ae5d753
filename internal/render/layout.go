package render

import (
	"fmt"
	"time"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/display"
	"github.com/preston-bernstein/nhl-scoreboard/internal/timeutil"
)

// ScoreLine picks the widest separator variant that fits width, truncating the
// spaced variant when none fit.
func ScoreLine(f display.Font, away string, awayScore int, home string, homeScore int, width int) string {
	variants := []string{
		fmt.Sprintf("%s%d @ %s%d", away, awayScore, home, homeScore),
		fmt.Sprintf("%s%d@%s%d", away, awayScore, home, homeScore),
		fmt.Sprintf("%s%d-%s%d", away, awayScore, home, homeScore),
	}
	for _, v := range variants {
		if f.Width(v) <= width {
			return v
		}
	}
	return display.FitText(f, variants[0], width)
}

// StatusLine is the second line of a game screen.
func StatusLine(g domaingames.Game, loc *time.Location) string {
	switch {
	case g.State == domaingames.StateLive:
		switch {
		case g.Period > 0 && g.Clock != "":
			return fmt.Sprintf("P%d %s", g.Period, g.Clock)
		case g.Period > 0:
			return fmt.Sprintf("P%d", g.Period)
		default:
			return "LIVE"
		}
	case g.State.Upcoming():
		if g.StartTime.IsZero() {
			return ""
		}
		return timeutil.FormatClock(g.StartTime, loc)
	default:
		return "FINAL"
	}
}

// centerX returns the x offset that centers text, never negative.
func centerX(f display.Font, text string, width int) int {
	x := (width - f.Width(text)) / 2
	if x < 0 {
		return 0
	}
	return x
}
