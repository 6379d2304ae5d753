// Package scheduler drives the scoreboard: poll, diff, refresh the schedule, rotate, render.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/events"
	"github.com/preston-bernstein/nhl-scoreboard/internal/favorite"
	"github.com/preston-bernstein/nhl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nhl-scoreboard/internal/metrics"
	"github.com/preston-bernstein/nhl-scoreboard/internal/providers"
	"github.com/preston-bernstein/nhl-scoreboard/internal/render"
	"github.com/preston-bernstein/nhl-scoreboard/internal/rotator"
	"github.com/preston-bernstein/nhl-scoreboard/internal/schedule"
	"github.com/preston-bernstein/nhl-scoreboard/internal/tracker"
)

const (
	defaultRefresh = 30 * time.Second
	errorPause     = time.Second
	readyFailures  = 3
)

// Renderer draws one screen and blocks for its hold.
type Renderer interface {
	Game(ctx context.Context, g domaingames.Game, flash bool) error
	NextGame(ctx context.Context, team string, g *domaingames.Game) error
	Hype(ctx context.Context, team string) error
	Confetti(ctx context.Context, team string) error
	Placeholder(ctx context.Context) error
}

// Board receives what the loop is showing, for read-only consumers such as the status API.
type Board interface {
	SetGames(fetchedAt time.Time, games []domaingames.Game)
	SetNextGame(team string, g *domaingames.Game)
}

// Deps are the collaborators of a Loop. Source, Favorites and Renderer are required.
type Deps struct {
	Source    providers.GameProvider
	Favorites favorite.Source
	Renderer  Renderer
	Schedule  *schedule.Cache
	Publisher events.Publisher
	Board     Board
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	Refresh   time.Duration
	Now       func() time.Time
	Sleep     render.SleepFunc
}

// Status describes the recent health of the live-games poll.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the loop has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailures
}

// Loop is a single-threaded cooperative scheduler. All scoreboard state below
// the status mutex is owned by the goroutine running Run.
type Loop struct {
	source    providers.GameProvider
	favorites favorite.Source
	renderer  Renderer
	schedule  *schedule.Cache
	publisher events.Publisher
	board     Board
	logger    *slog.Logger
	metrics   *metrics.Recorder
	refresh   time.Duration
	now       func() time.Time
	sleep     render.SleepFunc

	tracker  *tracker.Tracker
	rotator  *rotator.Rotator
	games    []domaingames.Game
	lastPoll time.Time
	team     string

	statusMu sync.RWMutex
	status   Status
}

// New constructs a Loop with sane defaults.
func New(deps Deps) *Loop {
	l := &Loop{
		source:    deps.Source,
		favorites: deps.Favorites,
		renderer:  deps.Renderer,
		schedule:  deps.Schedule,
		publisher: deps.Publisher,
		board:     deps.Board,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		refresh:   deps.Refresh,
		now:       deps.Now,
		sleep:     deps.Sleep,
		tracker:   tracker.New(),
		rotator:   rotator.New(),
	}
	if l.refresh <= 0 {
		l.refresh = defaultRefresh
	}
	if l.now == nil {
		l.now = time.Now
	}
	if l.sleep == nil {
		l.sleep = render.Sleep
	}
	if l.schedule == nil {
		l.schedule = schedule.New(deps.Source, schedule.DefaultTTL, deps.Logger, deps.Metrics)
	}
	if l.publisher == nil {
		l.publisher = events.Noop{}
	}
	return l
}

// Run ticks until ctx is cancelled. It never returns an error for data or render failures.
func (l *Loop) Run(ctx context.Context) error {
	logging.Info(l.logger, "scheduler started", slog.Int64(logging.FieldDurationMS, l.refresh.Milliseconds()))
	defer logging.Info(l.logger, "scheduler stopped")

	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := l.Tick(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logging.Warn(l.logger, "render failed", "error", err)
			if err := l.sleep(ctx, errorPause); err != nil {
				return nil
			}
		}
	}
}

// Tick runs one iteration: poll when due, refresh the favorite's schedule, then
// render either the placeholder or one rotation step. The returned error is the
// first render failure; data failures are absorbed.
func (l *Loop) Tick(ctx context.Context) error {
	now := l.now()
	if len(l.games) == 0 || now.Sub(l.lastPoll) > l.refresh {
		l.poll(ctx, now)
	}

	team := l.favorites.Team(ctx)
	if team != l.team {
		if l.team != "" {
			logging.Info(l.logger, "favorite team changed", logging.FieldTeam, team, "previous", l.team)
		}
		l.schedule.Invalidate()
		l.team = team
	}
	next, _ := l.schedule.Get(ctx, team, now)
	if l.board != nil {
		l.board.SetNextGame(team, next)
	}

	if len(l.games) == 0 {
		return l.renderer.Placeholder(ctx)
	}

	var firstErr error
	for _, step := range l.rotator.Advance(len(l.games)) {
		err := l.renderStep(ctx, step, team, next)
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (l *Loop) renderStep(ctx context.Context, step rotator.Step, team string, next *domaingames.Game) error {
	switch step.Screen {
	case rotator.ScreenNextGame:
		return l.renderer.NextGame(ctx, team, next)
	case rotator.ScreenGame:
		g := l.games[step.GameIndex]
		return l.renderer.Game(ctx, g, l.tracker.TakeFlash(g.ID))
	case rotator.ScreenHype:
		return l.renderer.Hype(ctx, team)
	case rotator.ScreenConfetti:
		return l.renderer.Confetti(ctx, team)
	default:
		return errors.New("unknown screen " + step.Screen.String())
	}
}

func (l *Loop) poll(ctx context.Context, now time.Time) {
	start := time.Now()
	l.recordAttempt(now)
	fresh, err := l.source.FetchLiveGames(ctx)
	l.metrics.RecordPoll(time.Since(start), err)
	if err != nil {
		logging.Error(l.logger, "live games poll failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
			logging.FieldCount, len(l.games),
		)
		l.recordFailure(err, now)
		return
	}

	changes := l.tracker.Observe(fresh)
	l.games = fresh
	l.lastPoll = now
	l.recordSuccess(now)
	if l.board != nil {
		l.board.SetGames(now, fresh)
	}

	for _, c := range changes {
		logging.Info(l.logger, "score changed",
			logging.FieldGameID, c.ID,
			"away", c.Curr.Away,
			"home", c.Curr.Home,
		)
		if err := l.publisher.PublishScoreChange(ctx, c.Game); err != nil {
			logging.Warn(l.logger, "score change publish failed", logging.FieldGameID, c.ID, "error", err)
		}
	}
	logging.Debug(l.logger, "live games refreshed",
		logging.FieldCount, len(fresh),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (l *Loop) recordAttempt(at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.LastAttempt = at
}

func (l *Loop) recordSuccess(at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.ConsecutiveFailures = 0
	l.status.LastError = ""
	l.status.LastSuccess = at
}

func (l *Loop) recordFailure(err error, at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.ConsecutiveFailures++
	if err != nil {
		l.status.LastError = err.Error()
	}
	l.status.LastAttempt = at
}

// Status returns a snapshot of the loop's recent poll health.
func (l *Loop) Status() Status {
	l.statusMu.RLock()
	defer l.statusMu.RUnlock()
	return l.status
}

// Ready reports Status().IsReady().
func (l *Loop) Ready() bool {
	return l.Status().IsReady()
}
