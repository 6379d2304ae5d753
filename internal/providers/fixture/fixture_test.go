package fixture

import (
	"context"
	"testing"
	"time"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
)

func TestFetchLiveGamesReturnsDeterministicGames(t *testing.T) {
	p := New()

	games, err := p.FetchLiveGames(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}

	first := games[0]
	if first.ID != "fixture-1" || first.Provider != "fixture" {
		t.Fatalf("unexpected first game: %+v", first)
	}
	if first.State != domaingames.StateLive || first.Period != 2 || first.Clock != "05:13" {
		t.Fatalf("unexpected live fields: %+v", first)
	}
}

func TestFetchLiveGamesScoresEveryFewPolls(t *testing.T) {
	p := New()
	ctx := context.Background()

	total := func(gs []domaingames.Game) int {
		sum := 0
		for _, g := range gs {
			sum += g.Score.Home + g.Score.Away
		}
		return sum
	}

	first, _ := p.FetchLiveGames(ctx)
	second, _ := p.FetchLiveGames(ctx)
	if total(first) != total(second) {
		t.Fatalf("expected no goal before the third poll")
	}
	third, _ := p.FetchLiveGames(ctx)
	if total(third) != total(second)+1 {
		t.Fatalf("expected exactly one goal on the third poll, got %d -> %d", total(second), total(third))
	}
	if third[2].Score != second[2].Score {
		t.Fatalf("final game must not change score")
	}
}

func TestFetchLiveGamesReturnsCopies(t *testing.T) {
	p := New()
	games, _ := p.FetchLiveGames(context.Background())
	games[0].Score.Home = 99

	again, _ := p.FetchLiveGames(context.Background())
	if again[0].Score.Home == 99 {
		t.Fatalf("expected caller mutation not to leak into provider state")
	}
}

func TestFetchScheduleIncludesFutureGames(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)
	p := New()
	p.now = func() time.Time { return fixed }

	games, err := p.FetchSchedule(context.Background(), "stl")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("expected 3 schedule entries, got %d", len(games))
	}
	future := 0
	for _, g := range games {
		if !g.Involves("STL") {
			t.Fatalf("expected every entry to involve STL: %+v", g)
		}
		if g.StartTime.After(fixed) {
			future++
		}
	}
	if future != 2 {
		t.Fatalf("expected 2 future games, got %d", future)
	}
	if want := fixed.Truncate(time.Hour).Add(26 * time.Hour); !games[1].StartTime.Equal(want) {
		t.Fatalf("unexpected start %v", games[1].StartTime)
	}
}
