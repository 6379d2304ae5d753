package handlers

import (
	"bytes"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nhl-scoreboard/internal/scheduler"
)

const defaultFrameScale = 8

// Board answers queries about the games the scoreboard is currently showing.
type Board interface {
	Games(team string) domaingames.ListResponse
	GameByID(id string) (domaingames.Game, bool)
	NextGame() (string, *domaingames.Game)
}

// FrameSource exports the visible panel frame.
type FrameSource interface {
	WritePNG(w io.Writer, scale int) error
}

// NextGameResponse is the payload of /next. Game is null when no upcoming game is known.
type NextGameResponse struct {
	Team string            `json:"team"`
	Game *domaingames.Game `json:"game"`
}

// Handler wires the read-only status routes to the scoreboard state.
type Handler struct {
	board      Board
	frames     FrameSource
	frameScale int
	logger     *slog.Logger
	statusFn   func() scheduler.Status
}

// NewHandler constructs a Handler. frames and statusFn may be nil.
func NewHandler(board Board, frames FrameSource, frameScale int, logger *slog.Logger, statusFn func() scheduler.Status) *Handler {
	if frameScale <= 0 {
		frameScale = defaultFrameScale
	}
	return &Handler{
		board:      board,
		frames:     frames,
		frameScale: frameScale,
		logger:     logger,
		statusFn:   statusFn,
	}
}

// Health reports liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the live-games poll has succeeded recently.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Games returns the games from the last successful poll, optionally filtered by ?team=.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	team := strings.TrimSpace(r.URL.Query().Get("team"))
	resp := h.board.Games(team)
	logging.Debug(loggerFromContext(r, h.logger), "served games", logging.FieldTeam, team, logging.FieldCount, len(resp.Games))
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// GameByID returns one game from the last successful poll.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil || strings.TrimSpace(id) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}
	game, ok := h.board.GameByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

// NextGame returns the favorite club and its cached next game.
func (h *Handler) NextGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	team, game := h.board.NextGame()
	writeJSON(w, nethttp.StatusOK, NextGameResponse{Team: team, Game: game}, h.logger)
}

// Frame serves the visible panel frame as a PNG.
func (h *Handler) Frame(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.frames == nil {
		writeError(w, r, nethttp.StatusNotFound, "frame export not available", h.logger)
		return
	}
	var buf bytes.Buffer
	if err := h.frames.WritePNG(&buf, h.frameScale); err != nil {
		logging.Error(loggerFromContext(r, h.logger), "frame encode failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "frame encode failed", h.logger)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
