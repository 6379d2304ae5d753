package teststubs

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
)

// StubProvider is a test double for providers.GameProvider.
type StubProvider struct {
	mu            sync.Mutex
	Live          []domaingames.Game
	Schedule      []domaingames.Game
	LiveErr       error
	ScheduleErr   error
	LiveCalls     atomic.Int32
	ScheduleCalls atomic.Int32
	Teams         []string
	Notify        chan struct{}
}

// FetchLiveGames returns configured live games and error while tracking calls.
func (s *StubProvider) FetchLiveGames(ctx context.Context) ([]domaingames.Game, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.LiveCalls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Live, s.LiveErr
}

// FetchSchedule returns configured schedule entries and records the requested team.
func (s *StubProvider) FetchSchedule(ctx context.Context, team string) ([]domaingames.Game, error) {
	_ = ctx
	s.ScheduleCalls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Teams = append(s.Teams, team)
	return s.Schedule, s.ScheduleErr
}

// SetLive swaps the live games returned by subsequent polls.
func (s *StubProvider) SetLive(games []domaingames.Game, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Live = games
	s.LiveErr = err
}

// StubRenderer records every screen it is asked to draw.
type StubRenderer struct {
	mu    sync.Mutex
	Calls []string
	Err   error
}

func (r *StubRenderer) record(call string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, call)
	return r.Err
}

func (r *StubRenderer) Game(_ context.Context, g domaingames.Game, flash bool) error {
	if flash {
		return r.record("game:" + g.ID + ":flash")
	}
	return r.record("game:" + g.ID)
}

func (r *StubRenderer) NextGame(_ context.Context, team string, g *domaingames.Game) error {
	if g == nil {
		return r.record("next:" + team + ":none")
	}
	return r.record("next:" + team + ":" + g.ID)
}

func (r *StubRenderer) Hype(_ context.Context, team string) error {
	return r.record("hype:" + team)
}

func (r *StubRenderer) Confetti(_ context.Context, team string) error {
	return r.record("confetti:" + team)
}

func (r *StubRenderer) Placeholder(context.Context) error {
	return r.record("placeholder")
}

// Recorded returns a copy of the calls seen so far.
func (r *StubRenderer) Recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Calls...)
}

// Reset drops recorded calls.
func (r *StubRenderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = nil
}

// StubPublisher captures score-change events.
type StubPublisher struct {
	mu       sync.Mutex
	Messages []string
	Err      error
	Closed   bool
}

func (p *StubPublisher) PublishScoreChange(_ context.Context, g domaingames.Game) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Messages = append(p.Messages, fmt.Sprintf("%s %d-%d", g.ID, g.Score.Away, g.Score.Home))
	return p.Err
}

func (p *StubPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Closed = true
	return nil
}

// Published returns a copy of captured messages.
func (p *StubPublisher) Published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.Messages...)
}

// StubFavorite returns a fixed team code.
type StubFavorite struct {
	Code string
}

func (f StubFavorite) Team(context.Context) string {
	return f.Code
}
