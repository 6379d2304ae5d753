package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nhl-scoreboard/internal/favorite"
	"github.com/preston-bernstein/nhl-scoreboard/internal/http/requestutil"
	"github.com/preston-bernstein/nhl-scoreboard/internal/logging"
)

const maxFavoriteBody = 1 << 10

// FavoriteRequest is the body accepted by PUT /favorite.
type FavoriteRequest struct {
	Team string `json:"team"`
}

// AdminHandler exposes operator-only endpoints.
type AdminHandler struct {
	favorites favorite.Store
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(favorites favorite.Store, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		favorites: favorites,
		token:     token,
		logger:    logger,
	}
}

// SetFavorite replaces the favorite club. The loop picks it up on its next tick.
// Guarded by ADMIN_TOKEN; returns 401 if missing or invalid.
func (h *AdminHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if !h.authorize(r) {
		logging.Warn(logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", logger)
		return
	}
	if h.favorites == nil {
		writeError(w, r, http.StatusServiceUnavailable, "favorite store not configured", logger)
		return
	}

	var req FavoriteRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxFavoriteBody)).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body", logger)
		return
	}
	code, err := favorite.Validate(req.Team)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}
	if err := h.favorites.SetTeam(r.Context(), code); err != nil {
		if errors.Is(err, favorite.ErrInvalidTeam) {
			writeError(w, r, http.StatusBadRequest, err.Error(), logger)
			return
		}
		logging.Error(logger, "favorite update failed", err, logging.FieldTeam, code)
		writeError(w, r, http.StatusInternalServerError, "failed to store favorite team", logger)
		return
	}

	logging.Info(logger, "favorite team updated", logging.FieldTeam, code)
	writeJSON(w, http.StatusOK, FavoriteRequest{Team: code}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
