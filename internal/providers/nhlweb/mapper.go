package nhlweb

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/domain/teams"
)

// parseGames decodes either feed shape into a flat list of games.
func parseGames(body []byte) ([]games.Game, error) {
	var payload feedResponse
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}

	var raw []gameResponse
	switch {
	case payload.Games != nil:
		raw = *payload.Games
	case payload.GamesByDate != nil:
		for _, day := range *payload.GamesByDate {
			raw = append(raw, day.Games...)
		}
	}

	out := make([]games.Game, 0, len(raw))
	for _, g := range raw {
		out = append(out, mapGame(g))
	}
	return out, nil
}

func mapGame(g gameResponse) games.Game {
	home := mapTeam(g.HomeTeam)
	away := mapTeam(g.AwayTeam)

	game := games.Game{
		ID:       gameID(g, away.Abbreviation, home.Abbreviation),
		Provider: providerName,
		HomeTeam: home,
		AwayTeam: away,
		Score: games.Score{
			Home: scoreOf(g.HomeTeam),
			Away: scoreOf(g.AwayTeam),
		},
		State:     games.ParseState(g.GameState),
		StartTime: parseStartTime(g),
	}
	if g.PeriodDescriptor != nil {
		game.Period = g.PeriodDescriptor.Number
	}
	if g.Clock != nil {
		game.Clock = strings.TrimSpace(g.Clock.TimeRemaining)
	}
	return game
}

func mapTeam(t teamResponse) teams.Team {
	code := t.Abbrev
	if strings.TrimSpace(code) == "" {
		code = t.TriCode
	}
	team := teams.Team{Abbreviation: teams.NormalizeAbbreviation(code)}
	if t.Name != nil {
		team.Name = t.Name.Default
	}
	return team
}

func scoreOf(t teamResponse) int {
	if t.Score == nil {
		return 0
	}
	return *t.Score
}

func gameID(g gameResponse, away, home string) string {
	for _, n := range []json.Number{g.ID, g.GameID} {
		if id := n.String(); id != "" && id != "0" {
			return id
		}
	}
	return games.SynthesizeID(away, home)
}

func parseStartTime(g gameResponse) time.Time {
	for _, ts := range []string{g.StartTimeUTC, g.GameStartTimeUTC, g.StartTime} {
		if ts == "" {
			continue
		}
		for _, layout := range startTimeLayouts {
			if parsed, err := time.Parse(layout, ts); err == nil {
				return parsed.UTC()
			}
		}
	}
	return time.Time{}
}
