// Package printer writes a one-line summary of the favorite club's current game.
package printer

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/preston-bernstein/nhl-scoreboard/internal/display"
	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/domain/teams"
	"github.com/preston-bernstein/nhl-scoreboard/internal/providers"
)

// Printer formats feed data for a terminal.
type Printer struct {
	out       io.Writer
	useColors bool
}

// New returns a Printer writing to out.
func New(out io.Writer, useColors bool) *Printer {
	return &Printer{out: out, useColors: useColors}
}

// PrintFavorite fetches the live slate and prints the first game involving team.
func (p *Printer) PrintFavorite(ctx context.Context, source providers.GameProvider, team string) error {
	games, err := source.FetchLiveGames(ctx)
	if err != nil {
		return fmt.Errorf("fetch live games: %w", err)
	}
	team = strings.ToUpper(team)
	for _, g := range games {
		if g.Involves(team) {
			_, err := fmt.Fprintln(p.out, p.paint(team, Line(g)))
			return err
		}
	}
	_, err = fmt.Fprintln(p.out, NoGameLine(team))
	return err
}

// Line renders "{away} {as} @ {home} {hs} | {state} P{period} {clock}".
func Line(g domaingames.Game) string {
	period := ""
	if g.Period > 0 {
		period = strconv.Itoa(g.Period)
	}
	line := fmt.Sprintf("%s %d @ %s %d | %s P%s %s",
		g.AwayTeam.DisplayName(), g.Score.Away,
		g.HomeTeam.DisplayName(), g.Score.Home,
		g.State, period, g.Clock,
	)
	return strings.TrimRight(line, " ")
}

// NoGameLine is printed when the club has no game on the current slate.
func NoGameLine(team string) string {
	return fmt.Sprintf("No %s game right now.", teams.Nickname(team))
}

func (p *Printer) paint(team, text string) string {
	c := color.New(display.NearestANSI(teams.PrimaryColor(team)), color.Bold)
	if p.useColors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}
