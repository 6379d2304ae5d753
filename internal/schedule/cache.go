// Package schedule caches the favorite club's next upcoming game.
package schedule

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nhl-scoreboard/internal/metrics"
)

// DefaultTTL is how long a successful lookup is reused.
const DefaultTTL = 900 * time.Second

// Fetcher returns a club's upcoming schedule window.
type Fetcher interface {
	FetchSchedule(ctx context.Context, team string) ([]domaingames.Game, error)
}

// Entry is the cached lookup for one club. A nil NextGame is a valid result.
type Entry struct {
	Team      string
	NextGame  *domaingames.Game
	FetchedAt time.Time
}

// Cache holds one Entry and refreshes it when stale or when the club changes.
// It is owned by the scheduler loop and is not safe for concurrent use.
type Cache struct {
	source  Fetcher
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Recorder
	entry   Entry
	warm    bool
}

// New builds a Cache. A non-positive ttl selects DefaultTTL.
func New(source Fetcher, ttl time.Duration, logger *slog.Logger, recorder *metrics.Recorder) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{source: source, ttl: ttl, logger: logger, metrics: recorder}
}

// Get returns the next game for team at now, refetching when cold or stale.
// On fetch failure the previous value is returned along with the error and
// FetchedAt is left untouched so the next call retries.
func (c *Cache) Get(ctx context.Context, team string, now time.Time) (*domaingames.Game, error) {
	team = strings.ToUpper(team)
	if c.entry.Team != team {
		c.Invalidate()
		c.entry.Team = team
	}
	if c.warm && now.Sub(c.entry.FetchedAt) <= c.ttl {
		return c.entry.NextGame, nil
	}

	start := time.Now()
	scheduled, err := c.source.FetchSchedule(ctx, team)
	c.metrics.RecordScheduleFetch(time.Since(start), err)
	if err != nil {
		logging.Warn(c.logger, "schedule refresh failed", logging.FieldTeam, team, "error", err)
		return c.entry.NextGame, err
	}

	c.entry.NextGame = NextAfter(scheduled, now)
	c.entry.FetchedAt = now
	c.warm = true
	if c.entry.NextGame != nil {
		logging.Debug(c.logger, "schedule refreshed", logging.FieldTeam, team, logging.FieldGameID, c.entry.NextGame.ID)
	} else {
		logging.Debug(c.logger, "schedule refreshed with no upcoming game", logging.FieldTeam, team)
	}
	return c.entry.NextGame, nil
}

// Invalidate drops the cached value so the next Get refetches.
func (c *Cache) Invalidate() {
	c.entry = Entry{}
	c.warm = false
}

// Entry returns a copy of the cached entry.
func (c *Cache) Entry() Entry {
	e := c.entry
	if e.NextGame != nil {
		g := *e.NextGame
		e.NextGame = &g
	}
	return e
}

// NextAfter returns the game with the earliest start strictly after now.
// Games without a start time are skipped; on ties the first in feed order wins.
func NextAfter(scheduled []domaingames.Game, now time.Time) *domaingames.Game {
	var best *domaingames.Game
	for i := range scheduled {
		g := scheduled[i]
		if g.StartTime.IsZero() || !g.StartTime.After(now) {
			continue
		}
		if best == nil || g.StartTime.Before(best.StartTime) {
			best = &g
		}
	}
	return best
}
