package logging

import "log/slog"

// Structured log keys shared by the loop, providers and the status API.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldMode       = "display_mode"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldGameID     = "game_id"
	FieldTeam       = "team"
	FieldScreen     = "screen"
)

// baseAttrs are attached to every record the process emits. Empty values are skipped.
func baseAttrs(cfg Config) []slog.Attr {
	var attrs []slog.Attr
	for _, kv := range [][2]string{
		{FieldService, cfg.Service},
		{FieldVersion, cfg.Version},
		{FieldMode, cfg.Mode},
	} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}
	return attrs
}
