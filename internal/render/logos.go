package render

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/preston-bernstein/nhl-scoreboard/internal/display"
	"github.com/preston-bernstein/nhl-scoreboard/internal/logging"
)

const (
	// LogoWidth and LogoHeight bound the next-game logo box.
	LogoWidth  = 32
	LogoHeight = 26
)

// LogoSource returns a logo already sized to the logo box, or nil when none is available.
type LogoSource interface {
	Logo(team string) image.Image
}

// LogoCache loads {dir}/{TEAM}.png, falling back to a fixed image, and keeps
// the last club's decoded logo.
type LogoCache struct {
	dir      string
	fallback string
	logger   *slog.Logger

	mu   sync.Mutex
	team string
	img  image.Image
}

// NewLogoCache builds a cache over dir with a fallback image path.
func NewLogoCache(dir, fallback string, logger *slog.Logger) *LogoCache {
	return &LogoCache{dir: dir, fallback: fallback, logger: logger}
}

// Logo returns the resized logo for team. A miss is logged and retried on the next call.
func (c *LogoCache) Logo(team string) image.Image {
	team = strings.ToUpper(team)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.team == team && c.img != nil {
		return c.img
	}

	img, err := c.load(team)
	if err != nil {
		logging.Warn(c.logger, "logo unavailable", logging.FieldTeam, team, "error", err)
	}
	c.team = team
	c.img = img
	return img
}

func (c *LogoCache) load(team string) (image.Image, error) {
	path := filepath.Join(c.dir, team+".png")
	if _, err := os.Stat(path); err != nil {
		path = c.fallback
	}
	img, err := decodePNG(path)
	if err != nil {
		return nil, &display.AssetMissingError{Asset: "logo", Path: path, Err: err}
	}
	return Resize(img, LogoWidth, LogoHeight), nil
}

func decodePNG(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("no logo path configured")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// Resize scales img to w x h with nearest-neighbour sampling.
func Resize(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}
