package store

import (
	"sync"
	"time"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
)

// MemoryStore keeps a thread-safe copy of what the scoreboard is showing so the
// status API can read it without touching loop-owned state.
type MemoryStore struct {
	mu        sync.RWMutex
	fetchedAt time.Time
	games     []domaingames.Game
	byID      map[string]int
	team      string
	nextGame  *domaingames.Game
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]int),
	}
}

// ListGames returns the current games in feed order.
func (s *MemoryStore) ListGames() domaingames.ListResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domaingames.Game, len(s.games))
	copy(result, s.games)
	return domaingames.NewListResponse(s.fetchedAt, result)
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (domaingames.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return domaingames.Game{}, false
	}
	return s.games[i], true
}

// SetGames replaces the existing games with a new poll result.
// When ids collide the later game wins lookups by id.
func (s *MemoryStore) SetGames(fetchedAt time.Time, games []domaingames.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fetchedAt = fetchedAt
	s.games = make([]domaingames.Game, len(games))
	copy(s.games, games)
	s.byID = make(map[string]int, len(games))
	for i, g := range s.games {
		s.byID[g.ID] = i
	}
}

// SetNextGame records the favorite club and its cached next game.
func (s *MemoryStore) SetNextGame(team string, g *domaingames.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.team = team
	if g == nil {
		s.nextGame = nil
		return
	}
	cp := *g
	s.nextGame = &cp
}

// NextGame returns the favorite club and a copy of its next game, if any.
func (s *MemoryStore) NextGame() (string, *domaingames.Game) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.nextGame == nil {
		return s.team, nil
	}
	cp := *s.nextGame
	return s.team, &cp
}
