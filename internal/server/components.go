package server

import (
	"io"
	"log/slog"
	"os"

	"github.com/preston-bernstein/nhl-scoreboard/internal/config"
	"github.com/preston-bernstein/nhl-scoreboard/internal/display"
	"github.com/preston-bernstein/nhl-scoreboard/internal/events"
	"github.com/preston-bernstein/nhl-scoreboard/internal/favorite"
	"github.com/preston-bernstein/nhl-scoreboard/internal/http/handlers"
	"github.com/preston-bernstein/nhl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nhl-scoreboard/internal/metrics"
	"github.com/preston-bernstein/nhl-scoreboard/internal/render"
	"github.com/preston-bernstein/nhl-scoreboard/internal/timeutil"
)

// Overridable for tests.
var (
	dialRedis = favorite.DialRedis
	dialMQTT  = func(cfg events.MQTTConfig) (events.Publisher, error) { return events.NewMQTTPublisher(cfg) }
)

var stdout io.Writer = os.Stdout

// buildSurface returns the panel surface and, for the framebuffer, the frame exporter for /frame.png.
func buildSurface(cfg config.Config) (display.Surface, handlers.FrameSource) {
	if cfg.Display.Mode == "console" {
		return display.NewConsole(stdout, cfg.Display.Colors), nil
	}
	fb := display.NewFrameBuffer(display.Width, display.Height)
	return fb, fb
}

// NewFavorites returns the configured favorite-team store and its closer.
func NewFavorites(cfg config.Config, logger *slog.Logger) (favorite.Store, func() error) {
	return buildFavorites(cfg, logger)
}

// buildFavorites prefers the Redis key when REDIS_URL is set and falls back to the file.
// The returned closer releases the Redis client and is never nil.
func buildFavorites(cfg config.Config, logger *slog.Logger) (favorite.Store, func() error) {
	fav := cfg.Favorite
	if fav.RedisURL != "" {
		client, err := dialRedis(fav.RedisURL)
		if err == nil {
			logging.Info(logger, "favorite team backed by redis", "key", fav.RedisKey)
			return favorite.NewRedisSource(client, fav.RedisKey, fav.Default, logger), client.Close
		}
		logging.Warn(logger, "redis unavailable, using favorite team file", "error", err)
	}
	return favorite.NewFileSource(fav.File, fav.Default, logger), func() error { return nil }
}

// buildPublisher connects to the MQTT broker when one is configured.
func buildPublisher(cfg config.Config, logger *slog.Logger) events.Publisher {
	if cfg.MQTT.Broker == "" {
		return events.Noop{}
	}
	pub, err := dialMQTT(events.MQTTConfig{
		Broker:   cfg.MQTT.Broker,
		Topic:    cfg.MQTT.Topic,
		ClientID: cfg.MQTT.ClientID,
	})
	if err != nil {
		logging.Warn(logger, "mqtt unavailable, score events disabled", "broker", cfg.MQTT.Broker, "error", err)
		return events.Noop{}
	}
	logging.Info(logger, "publishing score events", "broker", cfg.MQTT.Broker, "topic", cfg.MQTT.Topic)
	return pub
}

func buildRenderer(cfg config.Config, surface display.Surface, logger *slog.Logger, recorder *metrics.Recorder) *render.Dispatcher {
	fonts, err := display.LoadFonts(cfg.Display.FontPath)
	if err != nil {
		logging.Warn(logger, "font unavailable, using embedded face", "error", err)
	}
	loc, err := timeutil.LoadLocation(cfg.Timezone)
	if err != nil {
		logging.Warn(logger, "unknown display timezone, using local time", "tz", cfg.Timezone, "error", err)
	}
	timings := render.DefaultTimings()
	if cfg.Display.SecondsPerGame > 0 {
		timings.GameHold = cfg.Display.SecondsPerGame
	}
	if cfg.Display.PlaceholderHold > 0 {
		timings.Placeholder = cfg.Display.PlaceholderHold
	}

	return render.New(render.Config{
		Surface:  surface,
		Fonts:    fonts,
		Logos:    render.NewLogoCache(cfg.Display.LogoDir, cfg.Display.FallbackLogo, logger),
		Location: loc,
		Timings:  timings,
		Logger:   logger,
		Metrics:  recorder,
	})
}
