package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nhl-scoreboard/internal/metrics"
)

// instrumentedProvider wraps a GameProvider with latency/error metrics and logging.
// It makes exactly one upstream call per request.
type instrumentedProvider struct {
	inner        GameProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps inner so every fetch is recorded under providerName.
func NewInstrumentedProvider(inner GameProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) GameProvider {
	if providerName == "" {
		providerName = NameOf(inner, "provider")
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) Name() string {
	return p.providerName
}

func (p *instrumentedProvider) FetchLiveGames(ctx context.Context) ([]domaingames.Game, error) {
	if p.inner == nil {
		p.log(ctx, slog.LevelWarn, "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	games, err := p.inner.FetchLiveGames(ctx)
	p.observe(ctx, "live games", start, len(games), err)
	return games, err
}

func (p *instrumentedProvider) FetchSchedule(ctx context.Context, team string) ([]domaingames.Game, error) {
	if p.inner == nil {
		p.log(ctx, slog.LevelWarn, "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	games, err := p.inner.FetchSchedule(ctx, team)
	p.observe(ctx, "schedule", start, len(games), err, slog.String(logging.FieldTeam, team))
	return games, err
}

func (p *instrumentedProvider) observe(ctx context.Context, op string, start time.Time, count int, err error, extra ...any) {
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.providerName, elapsed, err)

	args := append([]any{
		slog.String("op", op),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}, extra...)

	if err != nil {
		if rl, ok := AsRateLimitError(err); ok {
			p.metrics.RecordRateLimit(p.providerName, rl.RetryAfter)
		}
		p.log(ctx, slog.LevelWarn, "provider fetch failed", append(args, "error", err)...)
		return
	}
	p.log(ctx, slog.LevelDebug, "provider fetch", append(args, slog.Int(logging.FieldCount, count))...)
}

func (p *instrumentedProvider) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	logger := logging.FromContext(ctx, p.logger)
	if logger == nil {
		return
	}
	logger.Log(ctx, level, msg, append(args, slog.String(logging.FieldProvider, p.providerName))...)
}
