package fixture

import (
	"context"
	"strings"
	"sync"
	"time"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/domain/teams"
)

const (
	providerName     = "fixture"
	defaultGoalEvery = 3
)

// Provider returns a deterministic slate of games useful for local runs without network access.
// Every goalEvery live polls one of the live games scores, so flashes can be seen on a bench.
type Provider struct {
	mu        sync.Mutex
	now       func() time.Time
	polls     int
	goalEvery int
	live      []domaingames.Game
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now:       time.Now,
		goalEvery: defaultGoalEvery,
		live: []domaingames.Game{
			liveGame("fixture-1", "STL", "Blues", "NYR", "Rangers", 2, 1, 2, "05:13"),
			liveGame("fixture-2", "BOS", "Bruins", "TOR", "Maple Leafs", 0, 0, 1, "17:40"),
			{
				ID:       "fixture-3",
				Provider: providerName,
				AwayTeam: teams.Team{Abbreviation: "CHI", Name: "Blackhawks"},
				HomeTeam: teams.Team{Abbreviation: "DAL", Name: "Stars"},
				Score:    domaingames.Score{Away: 1, Home: 4},
				State:    domaingames.StateFinal,
				Period:   3,
			},
		},
	}
}

// Name reports the provider name.
func (p *Provider) Name() string {
	return providerName
}

// FetchLiveGames returns the fixture slate, scoring a goal every few polls.
func (p *Provider) FetchLiveGames(ctx context.Context) ([]domaingames.Game, error) {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()

	p.polls++
	if p.goalEvery > 0 && p.polls%p.goalEvery == 0 {
		p.scoreLocked(p.polls / p.goalEvery)
	}

	out := make([]domaingames.Game, len(p.live))
	copy(out, p.live)
	return out, nil
}

func (p *Provider) scoreLocked(goal int) {
	var live []int
	for i, g := range p.live {
		if g.State == domaingames.StateLive {
			live = append(live, i)
		}
	}
	if len(live) == 0 {
		return
	}
	g := &p.live[live[goal%len(live)]]
	if goal%2 == 0 {
		g.Score.Home++
	} else {
		g.Score.Away++
	}
}

// FetchSchedule returns one past and two upcoming games for team.
func (p *Provider) FetchSchedule(ctx context.Context, team string) ([]domaingames.Game, error) {
	_ = ctx
	code := teams.NormalizeAbbreviation(team)
	start := p.now().UTC().Truncate(time.Hour)

	return []domaingames.Game{
		scheduled("fixture-s1", code, "CHI", start.Add(-24*time.Hour), domaingames.StateFinal),
		scheduled("fixture-s2", "DAL", code, start.Add(26*time.Hour), domaingames.StateFuture),
		scheduled("fixture-s3", code, "COL", start.Add(74*time.Hour), domaingames.StateFuture),
	}, nil
}

func liveGame(id, away, awayName, home, homeName string, awayScore, homeScore, period int, clock string) domaingames.Game {
	return domaingames.Game{
		ID:       id,
		Provider: providerName,
		AwayTeam: teams.Team{Abbreviation: away, Name: awayName},
		HomeTeam: teams.Team{Abbreviation: home, Name: homeName},
		Score:    domaingames.Score{Away: awayScore, Home: homeScore},
		State:    domaingames.StateLive,
		Period:   period,
		Clock:    clock,
	}
}

func scheduled(id, away, home string, start time.Time, state domaingames.GameState) domaingames.Game {
	return domaingames.Game{
		ID:        id + "-" + strings.ToLower(away+home),
		Provider:  providerName,
		AwayTeam:  teams.Team{Abbreviation: away},
		HomeTeam:  teams.Team{Abbreviation: home},
		State:     state,
		StartTime: start,
	}
}
