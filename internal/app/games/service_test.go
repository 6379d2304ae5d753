package games

import (
	"testing"
	"time"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/store"
	"github.com/preston-bernstein/nhl-scoreboard/internal/testutil"
)

var fetchedAt = time.Date(2024, 1, 10, 19, 0, 0, 0, time.UTC)

func newService() (*Service, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	ms.SetGames(fetchedAt, []domaingames.Game{
		testutil.LiveGame("g1", "STL", "NYR", 3, 2),
		testutil.LiveGame("g2", "BOS", "TOR", 0, 1),
	})
	return NewService(ms), ms
}

func TestServiceGamesUnfiltered(t *testing.T) {
	svc, _ := newService()

	resp := svc.Games("")
	if len(resp.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(resp.Games))
	}
	if !resp.FetchedAt.Equal(fetchedAt) {
		t.Fatalf("expected fetchedAt preserved, got %s", resp.FetchedAt)
	}
}

func TestServiceGamesFiltersByTeam(t *testing.T) {
	svc, _ := newService()

	resp := svc.Games("tor")
	if len(resp.Games) != 1 || resp.Games[0].ID != "g2" {
		t.Fatalf("expected only g2, got %+v", resp.Games)
	}
	if !resp.FetchedAt.Equal(fetchedAt) {
		t.Fatalf("expected fetchedAt preserved on filter")
	}

	resp = svc.Games("SEA")
	if resp.Games == nil || len(resp.Games) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", resp.Games)
	}
}

func TestServiceGameByIDAndNextGame(t *testing.T) {
	svc, ms := newService()

	if g, ok := svc.GameByID("g1"); !ok || g.AwayTeam.Abbreviation != "STL" {
		t.Fatalf("expected g1, got %+v ok=%v", g, ok)
	}
	if _, ok := svc.GameByID("nope"); ok {
		t.Fatalf("expected miss for unknown id")
	}

	next := testutil.UpcomingGame("n1", "STL", "CHI", fetchedAt.Add(24*time.Hour))
	ms.SetNextGame("STL", &next)
	team, g := svc.NextGame()
	if team != "STL" || g == nil || g.ID != "n1" {
		t.Fatalf("unexpected next game %s %+v", team, g)
	}
}
