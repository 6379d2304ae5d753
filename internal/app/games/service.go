package games

import domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"

// Store is the read side of what the scoreboard last polled.
type Store interface {
	ListGames() domaingames.ListResponse
	GetGame(id string) (domaingames.Game, bool)
	NextGame() (string, *domaingames.Game)
}

// Service answers status queries over a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Games returns the last polled games, limited to those involving team when it is set.
func (s *Service) Games(team string) domaingames.ListResponse {
	resp := s.store.ListGames()
	if team == "" {
		return resp
	}
	filtered := make([]domaingames.Game, 0, len(resp.Games))
	for _, g := range resp.Games {
		if g.Involves(team) {
			filtered = append(filtered, g)
		}
	}
	return domaingames.NewListResponse(resp.FetchedAt, filtered)
}

// GameByID returns a single game if present.
func (s *Service) GameByID(id string) (domaingames.Game, bool) {
	return s.store.GetGame(id)
}

// NextGame returns the favorite club and its cached next game.
func (s *Service) NextGame() (string, *domaingames.Game) {
	return s.store.NextGame()
}
