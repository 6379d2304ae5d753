// Package tracker detects score changes between polls and queues one-shot flashes.
package tracker

import (
	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
)

// Tuple is the (away, home) score last observed for a game.
type Tuple struct {
	Away int
	Home int
}

// TupleOf returns the score tuple of g.
func TupleOf(g domaingames.Game) Tuple {
	return Tuple{Away: g.Score.Away, Home: g.Score.Home}
}

// ScoreState maps game id to its last observed tuple. Entries are never evicted.
type ScoreState map[string]Tuple

// Change records a score delta for one game.
type Change struct {
	ID   string
	Prev Tuple
	Curr Tuple
	Game domaingames.Game
}

// Diff compares snaps against prev and returns the updated state plus the changes found.
// prev is not modified. The first sighting of an id never yields a change.
func Diff(prev ScoreState, snaps []domaingames.Game) (ScoreState, []Change) {
	next := make(ScoreState, len(prev)+len(snaps))
	for id, t := range prev {
		next[id] = t
	}

	var changes []Change
	for _, g := range snaps {
		curr := TupleOf(g)
		old, seen := next[g.ID]
		next[g.ID] = curr
		if seen && old != curr {
			changes = append(changes, Change{ID: g.ID, Prev: old, Curr: curr, Game: g})
		}
	}
	return next, changes
}

// Tracker owns the ScoreState and the pending flash set for the scheduler loop.
// It is not safe for concurrent use.
type Tracker struct {
	scores  ScoreState
	pending map[string]struct{}
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{
		scores:  ScoreState{},
		pending: map[string]struct{}{},
	}
}

// Observe folds a successful poll into the tracker and queues a flash per changed game.
func (t *Tracker) Observe(snaps []domaingames.Game) []Change {
	next, changes := Diff(t.scores, snaps)
	t.scores = next
	for _, c := range changes {
		t.pending[c.ID] = struct{}{}
	}
	return changes
}

// TakeFlash reports whether id has a pending flash and clears it.
func (t *Tracker) TakeFlash(id string) bool {
	if _, ok := t.pending[id]; !ok {
		return false
	}
	delete(t.pending, id)
	return true
}

// Pending reports whether id has a flash queued.
func (t *Tracker) Pending(id string) bool {
	_, ok := t.pending[id]
	return ok
}

// Scores returns a copy of the current ScoreState.
func (t *Tracker) Scores() ScoreState {
	out := make(ScoreState, len(t.scores))
	for id, tuple := range t.scores {
		out[id] = tuple
	}
	return out
}
