package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
)

func game(id string, away, home int) domaingames.Game {
	return domaingames.Game{ID: id, Score: domaingames.Score{Away: away, Home: home}}
}

func TestDiffFirstSightingNeverChanges(t *testing.T) {
	state, changes := Diff(nil, []domaingames.Game{game("g1", 5, 4)})
	assert.Empty(t, changes)
	assert.Equal(t, Tuple{Away: 5, Home: 4}, state["g1"])
}

func TestDiffDetectsChange(t *testing.T) {
	prev := ScoreState{"g1": {Away: 2, Home: 1}}
	state, changes := Diff(prev, []domaingames.Game{game("g1", 3, 1)})

	require.Len(t, changes, 1)
	assert.Equal(t, "g1", changes[0].ID)
	assert.Equal(t, Tuple{Away: 2, Home: 1}, changes[0].Prev)
	assert.Equal(t, Tuple{Away: 3, Home: 1}, changes[0].Curr)
	assert.Equal(t, Tuple{Away: 3, Home: 1}, state["g1"])
	assert.Equal(t, Tuple{Away: 2, Home: 1}, prev["g1"], "prev must not be mutated")
}

func TestDiffKeepsAbsentGames(t *testing.T) {
	prev := ScoreState{"gone": {Away: 1, Home: 1}}
	state, changes := Diff(prev, []domaingames.Game{game("g1", 0, 0)})
	assert.Empty(t, changes)
	assert.Len(t, state, 2)
	assert.Equal(t, Tuple{Away: 1, Home: 1}, state["gone"])
}

func TestDiffIsOrderIndependent(t *testing.T) {
	prev := ScoreState{"a": {}, "b": {}}
	snaps := []domaingames.Game{game("a", 1, 0), game("b", 0, 0)}
	reversed := []domaingames.Game{snaps[1], snaps[0]}

	s1, c1 := Diff(prev, snaps)
	s2, c2 := Diff(prev, reversed)
	assert.Equal(t, s1, s2)
	require.Len(t, c1, 1)
	require.Len(t, c2, 1)
	assert.Equal(t, c1[0].ID, c2[0].ID)
}

func TestObserveIsIdempotent(t *testing.T) {
	tr := New()
	snaps := []domaingames.Game{game("g1", 2, 1), game("g2", 0, 0)}
	tr.Observe(snaps)
	assert.Empty(t, tr.Observe(snaps))
	assert.Empty(t, tr.Observe(snaps))
	assert.False(t, tr.Pending("g1"))
}

func TestFlashIsOneShotPerChange(t *testing.T) {
	tr := New()
	tr.Observe([]domaingames.Game{game("g1", 2, 1)})
	changes := tr.Observe([]domaingames.Game{game("g1", 3, 1)})
	require.Len(t, changes, 1)

	assert.True(t, tr.Pending("g1"))
	assert.True(t, tr.TakeFlash("g1"))
	assert.False(t, tr.TakeFlash("g1"))

	tr.Observe([]domaingames.Game{game("g1", 3, 1)})
	assert.False(t, tr.Pending("g1"))

	tr.Observe([]domaingames.Game{game("g1", 3, 2)})
	assert.True(t, tr.TakeFlash("g1"))
}

func TestPendingFlashSurvivesUntilRendered(t *testing.T) {
	tr := New()
	tr.Observe([]domaingames.Game{game("g1", 0, 0)})
	tr.Observe([]domaingames.Game{game("g1", 1, 0)})
	tr.Observe([]domaingames.Game{game("g1", 2, 0)})

	assert.True(t, tr.TakeFlash("g1"))
	assert.False(t, tr.TakeFlash("g1"), "two changes before a render still flash once")
}

func TestScoresReturnsCopy(t *testing.T) {
	tr := New()
	tr.Observe([]domaingames.Game{game("g1", 1, 0)})
	scores := tr.Scores()
	scores["g1"] = Tuple{Away: 9}
	assert.Equal(t, Tuple{Away: 1}, tr.Scores()["g1"])
}
