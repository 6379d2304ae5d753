// Package events publishes score changes to an MQTT broker for other household displays.
package events

import (
	"context"
	"encoding/json"
	"time"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
)

// DefaultTopic is used when no topic is configured.
const DefaultTopic = "scoreboard/nhl/events"

// Publisher publishes score-change events.
type Publisher interface {
	// PublishScoreChange sends one event for a game whose score just changed.
	// Errors are reported to the caller and must never stop the scoreboard.
	PublishScoreChange(ctx context.Context, g domaingames.Game) error

	// Close disconnects from the broker.
	Close() error
}

// Payload is the JSON body of a score-change message.
type Payload struct {
	Goal GoalPayload `json:"goal"`
}

// GoalPayload describes the game at the moment a score change was observed.
type GoalPayload struct {
	Timestamp string `json:"timestamp"`
	GameID    string `json:"gameId"`
	Away      string `json:"away"`
	Home      string `json:"home"`
	AwayScore int    `json:"awayScore"`
	HomeScore int    `json:"homeScore"`
	State     string `json:"state"`
	Period    int    `json:"period,omitempty"`
	Clock     string `json:"clock,omitempty"`
}

// FormatPayload creates the JSON payload for a score change observed at ts.
func FormatPayload(g domaingames.Game, ts time.Time) ([]byte, error) {
	return json.Marshal(Payload{
		Goal: GoalPayload{
			Timestamp: ts.UTC().Format(time.RFC3339),
			GameID:    g.ID,
			Away:      g.AwayTeam.Abbreviation,
			Home:      g.HomeTeam.Abbreviation,
			AwayScore: g.Score.Away,
			HomeScore: g.Score.Home,
			State:     string(g.State),
			Period:    g.Period,
			Clock:     g.Clock,
		},
	})
}

// Noop discards every event. Used when no broker is configured.
type Noop struct{}

func (Noop) PublishScoreChange(context.Context, domaingames.Game) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
