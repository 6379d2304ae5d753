package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/nhl-scoreboard/internal/http/handlers"
	"github.com/preston-bernstein/nhl-scoreboard/internal/http/middleware"
	"github.com/preston-bernstein/nhl-scoreboard/internal/metrics"
)

// NewRouter registers the status routes. admin may be nil, in which case PUT /favorite is not mounted.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return middleware.LoggingMiddleware(logger, recorder, next)
	})

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/games", handler.Games)
	r.Get("/games/{id}", handler.GameByID)
	r.Get("/next", handler.NextGame)
	r.Get("/frame.png", handler.Frame)
	if admin != nil {
		r.Put("/favorite", admin.SetFavorite)
	}
	return r
}
