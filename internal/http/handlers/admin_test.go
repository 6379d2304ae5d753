package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/nhl-scoreboard/internal/favorite"
	"github.com/preston-bernstein/nhl-scoreboard/internal/testutil"
)

type brokenFavorites struct{}

func (brokenFavorites) Team(context.Context) string { return "STL" }

func (brokenFavorites) SetTeam(context.Context, string) error {
	return errors.New("disk full")
}

func putFavorite(h *AdminHandler, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/favorite", strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return testutil.ServeRequest(http.HandlerFunc(h.SetFavorite), req)
}

func TestSetFavoriteRequiresAuth(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)

	testutil.AssertStatus(t, putFavorite(h, `{"team":"BOS"}`, ""), http.StatusUnauthorized)
	testutil.AssertStatus(t, putFavorite(h, `{"team":"BOS"}`, "wrong"), http.StatusUnauthorized)

	h = NewAdminHandler(nil, "", nil)
	testutil.AssertStatus(t, putFavorite(h, `{"team":"BOS"}`, ""), http.StatusUnauthorized)
}

func TestSetFavoriteWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorite_team.txt")
	src := favorite.NewFileSource(path, "STL", nil)
	h := NewAdminHandler(src, "secret", nil)

	rr := putFavorite(h, `{"team":" nyr "}`, "secret")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp FavoriteRequest
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Team != "NYR" {
		t.Fatalf("expected normalized team, got %q", resp.Team)
	}
	if got := src.Team(context.Background()); got != "NYR" {
		t.Fatalf("expected stored team NYR, got %q", got)
	}
}

func TestSetFavoriteRejectsBadInput(t *testing.T) {
	src := favorite.NewFileSource(filepath.Join(t.TempDir(), "fav.txt"), "STL", nil)
	h := NewAdminHandler(src, "secret", nil)

	testutil.AssertStatus(t, putFavorite(h, `not json`, "secret"), http.StatusBadRequest)
	testutil.AssertStatus(t, putFavorite(h, `{"team":"TOOLONG"}`, "secret"), http.StatusBadRequest)
	testutil.AssertStatus(t, putFavorite(h, `{"team":"N1R"}`, "secret"), http.StatusBadRequest)
	testutil.AssertStatus(t, putFavorite(h, `{"team":"ZZZ"}`, "secret"), http.StatusBadRequest)
	if got := src.Team(context.Background()); got != "STL" {
		t.Fatalf("expected rejected codes not stored, got %q", got)
	}
}

func TestSetFavoriteStoreFailure(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	h := NewAdminHandler(brokenFavorites{}, "secret", logger)

	testutil.AssertStatus(t, putFavorite(h, `{"team":"BOS"}`, "secret"), http.StatusInternalServerError)
	if !strings.Contains(buf.String(), "disk full") {
		t.Fatalf("expected failure logged, got %s", buf.String())
	}
}

func TestSetFavoriteWithoutStore(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)
	testutil.AssertStatus(t, putFavorite(h, `{"team":"BOS"}`, "secret"), http.StatusServiceUnavailable)
}
