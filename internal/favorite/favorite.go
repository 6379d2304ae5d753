// Package favorite resolves the favorite club code, re-read on every tick.
package favorite

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/preston-bernstein/nhl-scoreboard/internal/domain/teams"
)

// ErrInvalidTeam is returned when a code is not a known 3-letter club code.
var ErrInvalidTeam = errors.New("favorite team must be a known 3-letter club code")

// Source returns the current favorite club code. Implementations never fail;
// missing or invalid values yield their configured default.
type Source interface {
	Team(ctx context.Context) string
}

// Store is a Source that can also be updated.
type Store interface {
	Source
	SetTeam(ctx context.Context, code string) error
}

// Normalize trims and upper-cases raw, returning fallback unless the result is a known club.
func Normalize(raw, fallback string) string {
	code, ok := parse(raw)
	if !ok {
		return fallback
	}
	return code
}

// Validate returns the normalized code or ErrInvalidTeam.
func Validate(raw string) (string, error) {
	code, ok := parse(raw)
	if !ok {
		return "", ErrInvalidTeam
	}
	return code, nil
}

func parse(raw string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 3 {
		return "", false
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}
	if !teams.Known(code) {
		return "", false
	}
	return code, true
}

// Static always returns the same code.
type Static string

func (s Static) Team(context.Context) string {
	return string(s)
}
