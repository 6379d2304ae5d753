package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaingames "github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/metrics"
	"github.com/preston-bernstein/nhl-scoreboard/internal/teststubs"
	"github.com/preston-bernstein/nhl-scoreboard/internal/testutil"
)

var base = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func upcoming(id string, offset time.Duration) domaingames.Game {
	return testutil.UpcomingGame(id, "STL", "CHI", base.Add(offset))
}

func TestNextAfterPicksEarliestStrictlyFuture(t *testing.T) {
	games := []domaingames.Game{
		upcoming("past", -time.Hour),
		upcoming("now", 0),
		upcoming("later", 48*time.Hour),
		upcoming("soon", 2*time.Hour),
		{ID: "no-start"},
	}
	got := NextAfter(games, base)
	require.NotNil(t, got)
	assert.Equal(t, "soon", got.ID)
}

func TestNextAfterTiesKeepFeedOrder(t *testing.T) {
	games := []domaingames.Game{upcoming("first", time.Hour), upcoming("second", time.Hour)}
	assert.Equal(t, "first", NextAfter(games, base).ID)
}

func TestNextAfterNone(t *testing.T) {
	assert.Nil(t, NextAfter([]domaingames.Game{upcoming("past", -time.Hour)}, base))
	assert.Nil(t, NextAfter(nil, base))
}

func TestGetReusesWithinTTL(t *testing.T) {
	src := &teststubs.StubProvider{Schedule: []domaingames.Game{upcoming("g1", time.Hour)}}
	c := New(src, 0, nil, nil)

	got, err := c.Get(context.Background(), "STL", base)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "g1", got.ID)

	_, err = c.Get(context.Background(), "STL", base.Add(900*time.Second))
	require.NoError(t, err)
	assert.EqualValues(t, 1, src.ScheduleCalls.Load())

	_, err = c.Get(context.Background(), "STL", base.Add(901*time.Second))
	require.NoError(t, err)
	assert.EqualValues(t, 2, src.ScheduleCalls.Load())
}

func TestGetCachesNilResult(t *testing.T) {
	src := &teststubs.StubProvider{}
	c := New(src, time.Minute, nil, nil)

	got, err := c.Get(context.Background(), "STL", base)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = c.Get(context.Background(), "STL", base.Add(30*time.Second))
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.EqualValues(t, 1, src.ScheduleCalls.Load())
}

func TestGetTeamSwitchForcesRefetch(t *testing.T) {
	src := &teststubs.StubProvider{Schedule: []domaingames.Game{upcoming("g1", time.Hour)}}
	c := New(src, 0, nil, nil)

	_, _ = c.Get(context.Background(), "STL", base)
	_, _ = c.Get(context.Background(), "nyr", base.Add(time.Second))

	assert.EqualValues(t, 2, src.ScheduleCalls.Load())
	assert.Equal(t, []string{"STL", "NYR"}, src.Teams)
	assert.Equal(t, "NYR", c.Entry().Team)
}

func TestGetErrorKeepsValueAndRetriesNextCall(t *testing.T) {
	rec := metrics.NewRecorder()
	src := &teststubs.StubProvider{Schedule: []domaingames.Game{upcoming("g1", 2*time.Hour)}}
	c := New(src, time.Minute, nil, rec)

	_, err := c.Get(context.Background(), "STL", base)
	require.NoError(t, err)

	src.ScheduleErr = errors.New("boom")
	later := base.Add(2 * time.Minute)
	got, err := c.Get(context.Background(), "STL", later)
	require.Error(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "g1", got.ID)
	assert.Equal(t, base, c.Entry().FetchedAt)

	_, _ = c.Get(context.Background(), "STL", later.Add(time.Second))
	assert.EqualValues(t, 3, src.ScheduleCalls.Load())
	assert.Equal(t, 2, rec.ScheduleErrors())
}

func TestGetColdErrorReturnsNil(t *testing.T) {
	src := &teststubs.StubProvider{ScheduleErr: errors.New("boom")}
	c := New(src, 0, nil, nil)

	got, err := c.Get(context.Background(), "STL", base)
	assert.Error(t, err)
	assert.Nil(t, got)

	_, _ = c.Get(context.Background(), "STL", base)
	assert.EqualValues(t, 2, src.ScheduleCalls.Load())
}

func TestInvalidateClearsEntry(t *testing.T) {
	src := &teststubs.StubProvider{Schedule: []domaingames.Game{upcoming("g1", time.Hour)}}
	c := New(src, 0, nil, nil)
	_, _ = c.Get(context.Background(), "STL", base)

	c.Invalidate()
	assert.Equal(t, Entry{}, c.Entry())

	_, _ = c.Get(context.Background(), "STL", base)
	assert.EqualValues(t, 2, src.ScheduleCalls.Load())
}
