package nhlweb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/domain/teams"
)

func TestParseGamesSynthesizesMissingID(t *testing.T) {
	got, err := parseGames([]byte(`{"games": [{"gameState": "OFF", "awayTeam": {"abbrev": "bos"}, "homeTeam": {"abbrev": "TOR"}}]}`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "BOS@TOR", got[0].ID)
	assert.Equal(t, games.StateFinal, got[0].State)
}

func TestParseGamesZeroIDFallsBackToGameID(t *testing.T) {
	got, err := parseGames([]byte(`{"games": [{"id": 0, "gameId": 99}]}`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "99", got[0].ID)
}

func TestParseGamesMissingFieldsUseDefaults(t *testing.T) {
	got, err := parseGames([]byte(`{"games": [{"id": 5}]}`))
	require.NoError(t, err)
	require.Len(t, got, 1)

	g := got[0]
	assert.Equal(t, teams.UnknownAbbreviation, g.AwayTeam.Abbreviation)
	assert.Equal(t, teams.UnknownAbbreviation, g.HomeTeam.Abbreviation)
	assert.Equal(t, games.Score{}, g.Score)
	assert.Zero(t, g.Period)
	assert.Empty(t, g.Clock)
	assert.True(t, g.StartTime.IsZero())
}

func TestParseGamesUnknownShapeIsEmpty(t *testing.T) {
	got, err := parseGames([]byte(`{"other": []}`))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseStartTimeKeyOrder(t *testing.T) {
	g := gameResponse{
		StartTimeUTC:     "",
		GameStartTimeUTC: "2024-02-01T01:30:00Z",
		StartTime:        "2024-03-01T01:30:00Z",
	}
	assert.Equal(t, time.Date(2024, 2, 1, 1, 30, 0, 0, time.UTC), parseStartTime(g))

	g = gameResponse{StartTimeUTC: "garbage", StartTime: "2024-03-01T01:30:00-05:00"}
	assert.Equal(t, time.Date(2024, 3, 1, 6, 30, 0, 0, time.UTC), parseStartTime(g))
}

func TestMapTeamPrefersAbbrev(t *testing.T) {
	team := mapTeam(teamResponse{Abbrev: "stl", TriCode: "XXX"})
	assert.Equal(t, "STL", team.Abbreviation)
	team = mapTeam(teamResponse{TriCode: "chi"})
	assert.Equal(t, "CHI", team.Abbreviation)
}
