package testutil

import (
	"context"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/providers"
)

// GoodProvider returns the provided games with no error.
type GoodProvider struct {
	Live     []domaingames.Game
	Schedule []domaingames.Game
}

func (p GoodProvider) FetchLiveGames(context.Context) ([]domaingames.Game, error) {
	return p.Live, nil
}

func (p GoodProvider) FetchSchedule(context.Context, string) ([]domaingames.Game, error) {
	return p.Schedule, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchLiveGames(context.Context) ([]domaingames.Game, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchSchedule(context.Context, string) ([]domaingames.Game, error) {
	return nil, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchLiveGames(context.Context) ([]domaingames.Game, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchSchedule(context.Context, string) ([]domaingames.Game, error) {
	return nil, providers.ErrProviderUnavailable
}
