package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nhl-scoreboard/internal/config"
	"github.com/preston-bernstein/nhl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nhl-scoreboard/internal/metrics"
	"github.com/preston-bernstein/nhl-scoreboard/internal/providers"
	"github.com/preston-bernstein/nhl-scoreboard/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-scoreboard/internal/providers/nhlweb"
)

// providerFactory assembles the data source with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.GameProvider {
	base := selectProvider(cfg, f.logger)
	return f.wrap(cfg, base)
}

func (f providerFactory) wrap(cfg config.Config, base providers.GameProvider) providers.GameProvider {
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, providerLabel(cfg.Provider, base))
}

// providerLabel names the source in logs and metrics. The instance wins over the
// configured name so an unknown PROVIDER that fell back to fixtures is labelled "fixture".
func providerLabel(configured string, base providers.GameProvider) string {
	if base != nil {
		if name := providers.NameOf(base, ""); name != "" {
			return name
		}
	}
	if configured = strings.ToLower(strings.TrimSpace(configured)); configured != "" {
		return configured
	}
	return "provider"
}

// selectProvider maps PROVIDER onto a source. Unknown names get fixtures so a
// typo still lights the panel.
func selectProvider(cfg config.Config, logger *slog.Logger) providers.GameProvider {
	switch name := strings.ToLower(strings.TrimSpace(cfg.Provider)); name {
	case "", "nhlweb":
		return nhlweb.NewClient(nhlweb.Config{
			BaseURL: cfg.NHL.BaseURL,
			Timeout: cfg.NHL.HTTPTimeout,
		})
	case "fixture":
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", logging.FieldProvider, cfg.Provider)
		return fixture.New()
	}
}

// NewProvider returns the configured data source without instrumentation, for one-shot commands.
func NewProvider(cfg config.Config, logger *slog.Logger) providers.GameProvider {
	return selectProvider(cfg, logger)
}
