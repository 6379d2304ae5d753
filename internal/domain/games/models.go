package games

import (
	"strings"
	"time"

	"github.com/preston-bernstein/nhl-scoreboard/internal/domain/teams"
)

// GameState mirrors the feed's lifecycle states after normalization.
type GameState string

const (
	StatePre    GameState = "PRE"
	StateFuture GameState = "FUT"
	StateLive   GameState = "LIVE"
	StateFinal  GameState = "FINAL"
)

// ParseState maps a raw feed state onto GameState.
// CRIT is the feed's late-game live state; unknown values are treated as final.
func ParseState(raw string) GameState {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PRE":
		return StatePre
	case "FUT":
		return StateFuture
	case "LIVE", "CRIT":
		return StateLive
	default:
		return StateFinal
	}
}

// Upcoming reports whether the game has not started yet.
func (s GameState) Upcoming() bool {
	return s == StatePre || s == StateFuture
}

// Score captures home and away goals.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Game is one poll's normalized view of a game.
type Game struct {
	ID        string     `json:"id"`
	Provider  string     `json:"provider,omitempty"`
	HomeTeam  teams.Team `json:"homeTeam"`
	AwayTeam  teams.Team `json:"awayTeam"`
	Score     Score      `json:"score"`
	State     GameState  `json:"state"`
	Period    int        `json:"period,omitempty"`
	Clock     string     `json:"clock,omitempty"`
	StartTime time.Time  `json:"startTime,omitempty"`
}

// SynthesizeID builds the fallback key used when the feed carries no game id.
// Two games between the same clubs inside one polling window share this key.
func SynthesizeID(away, home string) string {
	return away + "@" + home
}

// Involves reports whether the club plays in this game.
func (g Game) Involves(abbrev string) bool {
	code := strings.ToUpper(abbrev)
	return g.HomeTeam.Abbreviation == code || g.AwayTeam.Abbreviation == code
}

// Opponent returns the club facing abbrev; the home club when abbrev is away.
func (g Game) Opponent(abbrev string) teams.Team {
	if g.HomeTeam.Abbreviation == strings.ToUpper(abbrev) {
		return g.AwayTeam
	}
	return g.HomeTeam
}

// ListResponse is the payload returned by the status API's /games route.
type ListResponse struct {
	FetchedAt time.Time `json:"fetchedAt"`
	Games     []Game    `json:"games"`
}

// NewListResponse builds a ListResponse payload.
func NewListResponse(fetchedAt time.Time, games []Game) ListResponse {
	if games == nil {
		games = []Game{}
	}
	return ListResponse{
		FetchedAt: fetchedAt,
		Games:     games,
	}
}
