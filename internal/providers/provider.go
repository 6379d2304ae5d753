package providers

import (
	"context"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
)

// GameProvider defines how upstream game data is fetched and normalized.
// Implementations never retry; callers decide how to degrade on error.
type GameProvider interface {
	// FetchLiveGames returns the feed's current scoreboard.
	FetchLiveGames(ctx context.Context) ([]domaingames.Game, error)
	// FetchSchedule returns the club's upcoming schedule window.
	FetchSchedule(ctx context.Context, team string) ([]domaingames.Game, error)
}

// Named is implemented by providers that report a stable name for logs and metrics.
type Named interface {
	Name() string
}

// NameOf returns the provider's reported name, or fallback.
func NameOf(p GameProvider, fallback string) string {
	if n, ok := p.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return fallback
}
