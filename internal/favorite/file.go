package favorite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/nhl-scoreboard/internal/logging"
)

// FileSource reads the favorite club from a small text file.
type FileSource struct {
	path     string
	fallback string
	logger   *slog.Logger
}

// NewFileSource reads path on every call to Team.
func NewFileSource(path, fallback string, logger *slog.Logger) *FileSource {
	return &FileSource{path: path, fallback: fallback, logger: logger}
}

func (s *FileSource) Team(context.Context) string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn(s.logger, "favorite team file unreadable", "path", s.path, "error", err)
		}
		return s.fallback
	}
	return Normalize(string(data), s.fallback)
}

// SetTeam writes code to the file atomically.
func (s *FileSource) SetTeam(_ context.Context, code string) error {
	normalized, err := Validate(code)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create favorite dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".favorite-*")
	if err != nil {
		return fmt.Errorf("create temp favorite file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(normalized + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write favorite file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close favorite file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace favorite file: %w", err)
	}
	return nil
}
