// Package render turns screens into drawing calls on a display.Surface.
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/domain/teams"
	"github.com/preston-bernstein/nhl-scoreboard/internal/display"
	"github.com/preston-bernstein/nhl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nhl-scoreboard/internal/metrics"
	"github.com/preston-bernstein/nhl-scoreboard/internal/rotator"
	"github.com/preston-bernstein/nhl-scoreboard/internal/timeutil"
)

const (
	line1Baseline = 12
	line2Baseline = 28
)

// Timings are the holds and animation cadences of every screen.
type Timings struct {
	GameHold         time.Duration
	NextGameExtra    time.Duration
	Placeholder      time.Duration
	FlashOn          time.Duration
	FlashOff         time.Duration
	FlashCount       int
	HypeFrame        time.Duration
	ConfettiDuration time.Duration
	ConfettiFrame    time.Duration
	ConfettiPrimary  int
	ConfettiAccent   int
}

// DefaultTimings mirrors the LED panel's tuned cadence.
func DefaultTimings() Timings {
	return Timings{
		GameHold:         4 * time.Second,
		NextGameExtra:    2 * time.Second,
		Placeholder:      2 * time.Second,
		FlashOn:          100 * time.Millisecond,
		FlashOff:         60 * time.Millisecond,
		FlashCount:       3,
		HypeFrame:        50 * time.Millisecond,
		ConfettiDuration: 900 * time.Millisecond,
		ConfettiFrame:    60 * time.Millisecond,
		ConfettiPrimary:  85,
		ConfettiAccent:   25,
	}
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the wall-clock SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Config wires a Dispatcher. Zero values pick sensible defaults.
type Config struct {
	Surface  display.Surface
	Fonts    display.Fonts
	Logos    LogoSource
	Location *time.Location
	Timings  Timings
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	Now      func() time.Time
	Sleep    SleepFunc
	Rand     *rand.Rand
}

// Dispatcher draws one screen at a time and blocks for that screen's hold.
// It is owned by the scheduler loop and is not safe for concurrent use.
type Dispatcher struct {
	surface display.Surface
	fonts   display.Fonts
	logos   LogoSource
	loc     *time.Location
	timings Timings
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
	sleep   SleepFunc
	rand    *rand.Rand
}

// New builds a Dispatcher from cfg.
func New(cfg Config) *Dispatcher {
	d := &Dispatcher{
		surface: cfg.Surface,
		fonts:   cfg.Fonts,
		logos:   cfg.Logos,
		loc:     cfg.Location,
		timings: cfg.Timings,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		now:     cfg.Now,
		sleep:   cfg.Sleep,
		rand:    cfg.Rand,
	}
	if d.fonts.Regular.Face == nil {
		d.fonts = display.FixedFonts()
	}
	if d.timings == (Timings{}) {
		d.timings = DefaultTimings()
	}
	if d.loc == nil {
		d.loc = time.Local
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.sleep == nil {
		d.sleep = Sleep
	}
	if d.rand == nil {
		d.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return d
}

// Game draws one game screen, preceded by a flash burst when flash is set.
func (d *Dispatcher) Game(ctx context.Context, g domaingames.Game, flash bool) error {
	width := d.surface.Width()
	regular := d.fonts.Regular
	l1 := ScoreLine(regular, g.AwayTeam.Abbreviation, g.Score.Away, g.HomeTeam.Abbreviation, g.Score.Home, width)
	l2 := display.FitText(regular, StatusLine(g, d.loc), width)
	c := teams.PrimaryColor(g.HomeTeam.Abbreviation)

	if flash {
		d.metrics.RecordFlash()
		logging.Debug(d.logger, "flashing score change", logging.FieldGameID, g.ID)
		for i := 0; i < d.timings.FlashCount; i++ {
			if err := d.drawCentered(l1, l2, teams.White, teams.White); err != nil {
				return err
			}
			if err := d.sleep(ctx, d.timings.FlashOn); err != nil {
				return err
			}
			if err := d.drawCentered(l1, l2, teams.Black, teams.Black); err != nil {
				return err
			}
			if err := d.sleep(ctx, d.timings.FlashOff); err != nil {
				return err
			}
		}
	}

	if err := d.drawCentered(l1, l2, c, c); err != nil {
		return err
	}
	d.shown(rotator.ScreenGame)
	return d.sleep(ctx, d.timings.GameHold)
}

// NextGame draws the favorite club's logo beside its next opponent and start, or TBD.
func (d *Dispatcher) NextGame(ctx context.Context, team string, g *domaingames.Game) error {
	width, height := d.surface.Width(), d.surface.Height()
	small := d.fonts.Small

	d.surface.Clear()
	if d.logos != nil {
		if logo := d.logos.Logo(team); logo != nil {
			d.drawImage(logo, 0, (height-LogoHeight)/2)
		}
	}

	tx := LogoWidth + 2
	avail := width - tx
	d.surface.DrawText(small, tx, 7, teams.White, "NEXT")
	d.surface.DrawText(small, tx, 14, teams.White, "GAME")

	if g == nil {
		d.surface.DrawText(small, tx, 26, teams.White, "TBD")
	} else {
		opp := g.Opponent(team).Abbreviation
		when := ""
		if !g.StartTime.IsZero() {
			when = timeutil.FormatDayHour(g.StartTime, d.loc)
		}
		d.surface.DrawText(small, tx, 21, teams.PrimaryColor(opp), display.FitText(small, "vs "+opp, avail))
		d.surface.DrawText(small, tx, 28, teams.White, display.FitText(small, when, avail))
	}
	if err := d.swap(); err != nil {
		return err
	}
	d.shown(rotator.ScreenNextGame)
	return d.sleep(ctx, d.timings.GameHold+d.timings.NextGameExtra)
}

// Hype scrolls "{NICKNAME}!!!!" right to left under a fixed "LETS GO" until it leaves the panel.
func (d *Dispatcher) Hype(ctx context.Context, team string) error {
	width := d.surface.Width()
	regular := d.fonts.Regular
	c := teams.PrimaryColor(team)

	top := "LETS GO"
	bottom := teams.Nickname(team) + "!!!!"
	topX := centerX(regular, top, width)
	bottomW := regular.Width(bottom)

	for x := width; x >= -bottomW; x-- {
		d.surface.Clear()
		d.surface.DrawText(regular, topX, line1Baseline, c, top)
		d.surface.DrawText(regular, x, line2Baseline, c, bottom)
		if err := d.swap(); err != nil {
			return err
		}
		if err := d.sleep(ctx, d.timings.HypeFrame); err != nil {
			return err
		}
	}
	d.shown(rotator.ScreenHype)
	return nil
}

// Confetti scatters the club's primary and accent colors at random for a fixed duration.
func (d *Dispatcher) Confetti(ctx context.Context, team string) error {
	width, height := d.surface.Width(), d.surface.Height()
	primary, accent := teams.ConfettiColors(team)

	end := d.now().Add(d.timings.ConfettiDuration)
	for d.now().Before(end) {
		d.surface.Clear()
		d.scatter(d.timings.ConfettiPrimary, width, height, primary)
		d.scatter(d.timings.ConfettiAccent, width, height, accent)
		if err := d.swap(); err != nil {
			return err
		}
		if err := d.sleep(ctx, d.timings.ConfettiFrame); err != nil {
			return err
		}
	}
	d.shown(rotator.ScreenConfetti)
	return nil
}

// Placeholder draws the "no games" screen.
func (d *Dispatcher) Placeholder(ctx context.Context) error {
	if err := d.drawCentered("NO NHL", "GAMES", teams.White, teams.White); err != nil {
		return err
	}
	d.shown(rotator.ScreenPlaceholder)
	return d.sleep(ctx, d.timings.Placeholder)
}

func (d *Dispatcher) drawCentered(l1, l2 string, c1, c2 color.RGBA) error {
	width := d.surface.Width()
	regular := d.fonts.Regular
	d.surface.Clear()
	d.surface.DrawText(regular, centerX(regular, l1, width), line1Baseline, c1, l1)
	d.surface.DrawText(regular, centerX(regular, l2, width), line2Baseline, c2, l2)
	return d.swap()
}

func (d *Dispatcher) scatter(count, width, height int, c color.RGBA) {
	for i := 0; i < count; i++ {
		d.surface.SetPixel(d.rand.Intn(width), d.rand.Intn(height), c)
	}
}

func (d *Dispatcher) drawImage(img image.Image, x, y int) {
	b := img.Bounds()
	for iy := b.Min.Y; iy < b.Max.Y; iy++ {
		for ix := b.Min.X; ix < b.Max.X; ix++ {
			r, g, bl, _ := img.At(ix, iy).RGBA()
			d.surface.SetPixel(x+ix-b.Min.X, y+iy-b.Min.Y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: 255})
		}
	}
}

func (d *Dispatcher) shown(screen rotator.Screen) {
	d.metrics.RecordScreen(screen.String())
	logging.Debug(d.logger, "screen drawn", logging.FieldScreen, screen.String())
}

func (d *Dispatcher) swap() error {
	if err := d.surface.Swap(); err != nil {
		return fmt.Errorf("swap frame: %w", err)
	}
	return nil
}
