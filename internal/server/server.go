package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	appgames "github.com/preston-bernstein/nhl-scoreboard/internal/app/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/config"
	"github.com/preston-bernstein/nhl-scoreboard/internal/favorite"
	httpserver "github.com/preston-bernstein/nhl-scoreboard/internal/http"
	"github.com/preston-bernstein/nhl-scoreboard/internal/http/handlers"
	"github.com/preston-bernstein/nhl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nhl-scoreboard/internal/metrics"
	"github.com/preston-bernstein/nhl-scoreboard/internal/providers"
	"github.com/preston-bernstein/nhl-scoreboard/internal/schedule"
	"github.com/preston-bernstein/nhl-scoreboard/internal/scheduler"
	"github.com/preston-bernstein/nhl-scoreboard/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns the render loop plus the optional status and metrics listeners.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	board         *store.MemoryStore
	loop          Loop
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	closers       []func() error
}

// New constructs a server with the configured provider, display, and favorite source.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.GameProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, nil)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	board := store.NewMemoryStore()
	surface, frames := buildSurface(cfg)
	favorites, closeFavorites := buildFavorites(cfg, logger)
	publisher := buildPublisher(cfg, logger)

	loop := scheduler.New(scheduler.Deps{
		Source:    provider,
		Favorites: favorites,
		Renderer:  buildRenderer(cfg, surface, logger, recorder),
		Schedule:  schedule.New(provider, cfg.ScheduleTTL, logger, recorder),
		Publisher: publisher,
		Board:     board,
		Logger:    logger,
		Metrics:   recorder,
		Refresh:   cfg.RefreshInterval,
	})

	var httpSrv httpServer
	if cfg.Status.Enabled {
		httpSrv = buildHTTPServer(cfg, board, frames, favorites, logger, recorder, loop.Status)
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		board:         board,
		loop:          loop,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		closers:       []func() error{publisher.Close, closeFavorites},
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, loop Loop, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics.NewRecorder(),
		board:      store.NewMemoryStore(),
		loop:       loop,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, board *store.MemoryStore, frames handlers.FrameSource, favorites favorite.Store, logger *slog.Logger, recorder *metrics.Recorder, statusFn func() scheduler.Status) httpServer {
	handler := handlers.NewHandler(appgames.NewService(board), frames, cfg.Display.FrameScale, logger, statusFn)
	var admin *handlers.AdminHandler
	if cfg.Status.AdminToken != "" {
		admin = handlers.NewAdminHandler(favorites, cfg.Status.AdminToken, logger)
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	return newNetHTTPServer(cfg.Status.Port, httpserver.NewRouter(handler, admin, logger, recorder))
}

// Run drives the loop and listeners until ctx is cancelled or one of them fails,
// then shuts everything down. A listener failure is returned; a clean stop returns nil.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.loop.Run(gctx)
	})
	if s.httpServer != nil {
		g.Go(func() error {
			logging.Info(s.logger, "status server starting", slog.String("addr", s.httpServer.Addr()))
			return serve("status", s.httpServer)
		})
	}
	if s.metricsServer != nil {
		g.Go(func() error {
			logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
			return serve("metrics", s.metricsServer)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logging.Info(s.logger, "shutdown signal received")
		s.gracefulShutdown()
		return nil
	})

	err := g.Wait()
	s.closeAll()
	logging.Info(s.logger, "shutdown complete")
	return err
}

func serve(name string, srv httpServer) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server: %w", name, err)
	}
	return nil
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			logging.Error(s.logger, "graceful shutdown failed", err)
		}
	}
}

func (s *Server) closeAll() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			logging.Warn(s.logger, "close failed", "error", err)
		}
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,

		ExportInterval: cfg.Metrics.ExportInterval,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

// Handler exposes the status HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler()
}
