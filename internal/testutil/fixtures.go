package testutil

import (
	"time"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/domain/teams"
)

// SampleGame returns a live STL @ NYR fixture with the provided id.
func SampleGame(id string) domaingames.Game {
	return LiveGame(id, "STL", "NYR", 0, 0)
}

// LiveGame builds a live game in the second period.
func LiveGame(id, away, home string, awayScore, homeScore int) domaingames.Game {
	return domaingames.Game{
		ID:       id,
		Provider: "test",
		AwayTeam: teams.Team{Abbreviation: away},
		HomeTeam: teams.Team{Abbreviation: home},
		Score:    domaingames.Score{Away: awayScore, Home: homeScore},
		State:    domaingames.StateLive,
		Period:   2,
		Clock:    "12:34",
	}
}

// UpcomingGame builds a future game starting at start.
func UpcomingGame(id, away, home string, start time.Time) domaingames.Game {
	return domaingames.Game{
		ID:        id,
		Provider:  "test",
		AwayTeam:  teams.Team{Abbreviation: away},
		HomeTeam:  teams.Team{Abbreviation: home},
		State:     domaingames.StateFuture,
		StartTime: start,
	}
}
