package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nhl-scoreboard/internal/config"
	"github.com/preston-bernstein/nhl-scoreboard/internal/display"
	"github.com/preston-bernstein/nhl-scoreboard/internal/events"
	"github.com/preston-bernstein/nhl-scoreboard/internal/favorite"
	"github.com/preston-bernstein/nhl-scoreboard/internal/metrics"
	"github.com/preston-bernstein/nhl-scoreboard/internal/providers"
	"github.com/preston-bernstein/nhl-scoreboard/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-scoreboard/internal/providers/nhlweb"
	"github.com/preston-bernstein/nhl-scoreboard/internal/teststubs"
	"github.com/preston-bernstein/nhl-scoreboard/internal/testutil"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Provider: "fixture",
		Display:  config.DisplayConfig{Mode: "framebuffer", FrameScale: 1},
		Favorite: config.FavoriteConfig{File: filepath.Join(t.TempDir(), "favorite_team.txt"), Default: "STL"},
		Status:   config.StatusConfig{Enabled: true, Port: "0"},
		Metrics:  config.MetricsConfig{Enabled: false},
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	loop := &testutil.StubLoop{}
	httpSrv := &testutil.StubHTTPServer{AddrVal: ":0", Block: true}
	srv := newServerWithDeps(config.Config{}, nil, loop, httpSrv)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("run did not return after cancel")
	}
	assert.Equal(t, 1, loop.Calls())
	assert.Equal(t, 1, httpSrv.ListenCalls())
	assert.Equal(t, 1, httpSrv.ShutdownCalls())
}

func TestRunReturnsListenerFailureAndStopsLoop(t *testing.T) {
	loop := &testutil.StubLoop{}
	httpSrv := &testutil.StubHTTPServer{ListenErr: errors.New("listen failure")}
	srv := newServerWithDeps(config.Config{}, nil, loop, httpSrv)

	err := srv.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status server: listen failure")
	assert.Equal(t, 1, httpSrv.ShutdownCalls())
}

func TestRunIgnoresServerClosed(t *testing.T) {
	loop := &testutil.StubLoop{}
	httpSrv := &testutil.StubHTTPServer{ListenErr: http.ErrServerClosed}
	srv := newServerWithDeps(config.Config{}, nil, loop, httpSrv)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.NoError(t, srv.Run(ctx))
}

func TestRunReturnsLoopError(t *testing.T) {
	loop := &testutil.StubLoop{Err: errors.New("loop crashed")}
	srv := newServerWithDeps(config.Config{}, nil, loop, nil)

	require.EqualError(t, srv.Run(context.Background()), "loop crashed")
}

func TestGracefulShutdownHonorsTimeout(t *testing.T) {
	orig := shutdownTimeout
	shutdownTimeout = 10 * time.Millisecond
	defer func() { shutdownTimeout = orig }()

	logger, buf := testutil.NewBufferLogger()
	httpSrv := &testutil.StubHTTPServer{Block: true, Hold: make(chan struct{})}
	srv := newServerWithDeps(config.Config{}, logger, &testutil.StubLoop{}, httpSrv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, srv.Run(ctx))
	assert.Equal(t, 1, httpSrv.ShutdownCalls())
	assert.Contains(t, buf.String(), "graceful shutdown failed")
}

func TestRunClosesResources(t *testing.T) {
	pub := &teststubs.StubPublisher{}
	srv := newServerWithDeps(config.Config{}, nil, &testutil.StubLoop{}, nil)
	srv.closers = []func() error{pub.Close, func() error { return errors.New("already closed") }}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, srv.Run(ctx))
	assert.True(t, pub.Closed)
}

func TestNewServesStatusRoutes(t *testing.T) {
	srv := New(testConfig(t), nil)

	h := srv.Handler()
	require.NotNil(t, h)
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/health", nil), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/games", nil), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/ready", nil), http.StatusServiceUnavailable)
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/frame.png", nil), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodPut, "/favorite", nil), http.StatusNotFound)
}

func TestNewMountsFavoriteRouteWithAdminToken(t *testing.T) {
	cfg := testConfig(t)
	cfg.Status.AdminToken = "secret"
	srv := New(cfg, nil)

	req := httptest.NewRequest(http.MethodPut, "/favorite", bytes.NewBufferString(`{"team":"bos"}`))
	req.Header.Set("Authorization", "Bearer secret")
	testutil.AssertStatus(t, testutil.ServeRequest(srv.Handler(), req), http.StatusOK)

	got := favorite.NewFileSource(cfg.Favorite.File, "STL", nil).Team(context.Background())
	assert.Equal(t, "BOS", got)
}

func TestNewWithStatusDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Status.Enabled = false
	srv := New(cfg, nil)
	assert.Nil(t, srv.Handler())
}

func TestNewRunsFixtureOnConsole(t *testing.T) {
	var out bytes.Buffer
	orig := stdout
	stdout = &out
	defer func() { stdout = orig }()

	cfg := testConfig(t)
	cfg.Display.Mode = "console"
	cfg.Display.Colors = false
	srv := New(cfg, nil)
	testutil.AssertStatus(t, testutil.Serve(srv.Handler(), http.MethodGet, "/frame.png", nil), http.StatusNotFound)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, srv.Run(ctx))

	assert.NotEmpty(t, out.String())
	assert.NotEmpty(t, srv.board.ListGames().Games)
	total, _ := srv.metrics.Polls()
	assert.GreaterOrEqual(t, total, 1)
}

func TestBuildMetricsFallsBackOnSetupFailure(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(context.Context, metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, nil, nil)
	assert.NotNil(t, rec)
	assert.Nil(t, srv)
	assert.Nil(t, stop)
}

func TestBuildMetricsSuccessSetsServer(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(context.Context, metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { return nil }, nil
	}

	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true, Port: "9999"}}, nil, nil)
	require.NotNil(t, rec)
	require.NotNil(t, srv)
	require.NotNil(t, stop)
	assert.Equal(t, ":9999", srv.Addr())
}

func TestBuildMetricsUsesInjectedRecorder(t *testing.T) {
	injected := metrics.NewRecorder()
	rec, srv, stop := buildMetrics(config.Config{}, nil, injected)
	assert.Same(t, injected, rec)
	assert.Nil(t, srv)
	assert.Nil(t, stop)
}

func TestSelectProvider(t *testing.T) {
	_, ok := selectProvider(config.Config{Provider: "nhlweb"}, nil).(*nhlweb.Client)
	assert.True(t, ok)
	_, ok = selectProvider(config.Config{}, nil).(*nhlweb.Client)
	assert.True(t, ok)
	_, ok = selectProvider(config.Config{Provider: "fixture"}, nil).(*fixture.Provider)
	assert.True(t, ok)
	_, ok = selectProvider(config.Config{Provider: " NHLWeb "}, nil).(*nhlweb.Client)
	assert.True(t, ok)

	logger, buf := testutil.NewBufferLogger()
	_, ok = selectProvider(config.Config{Provider: "espn"}, logger).(*fixture.Provider)
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "unknown provider")
}

func TestProviderFactoryWrapsWithInstrumentation(t *testing.T) {
	rec := metrics.NewRecorder()
	prov := newProviderFactory(nil, rec).build(config.Config{Provider: "fixture"})

	_, err := prov.FetchLiveGames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rec.ProviderCalls("fixture"))
	assert.Equal(t, "fixture", providers.NameOf(prov, ""))
}

func TestProviderLabel(t *testing.T) {
	assert.Equal(t, "fixture", providerLabel("bogus", fixture.New()))
	assert.Equal(t, "nhlweb", providerLabel(" NHLWeb ", nil))
	assert.Equal(t, "custom", providerLabel("custom", testutil.GoodProvider{}))
	assert.Equal(t, "provider", providerLabel("", testutil.GoodProvider{}))
}

func TestBuildFavoritesPrefersRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.Favorite.RedisURL = "redis://" + mr.Addr()
	cfg.Favorite.RedisKey = "scoreboard:favorite_team"

	store, closeFn := buildFavorites(cfg, nil)
	defer func() { _ = closeFn() }()

	_, isRedis := store.(*favorite.RedisSource)
	require.True(t, isRedis)
	require.NoError(t, store.SetTeam(context.Background(), "tor"))
	got, err := mr.Get("scoreboard:favorite_team")
	require.NoError(t, err)
	assert.Equal(t, "TOR", got)
}

func TestBuildFavoritesFallsBackToFile(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	cfg := testConfig(t)
	cfg.Favorite.RedisURL = "mysql://nope"

	store, closeFn := buildFavorites(cfg, logger)
	require.NoError(t, closeFn())

	_, isFile := store.(*favorite.FileSource)
	assert.True(t, isFile)
	assert.Contains(t, buf.String(), "redis unavailable")
	assert.Equal(t, "STL", store.Team(context.Background()))
}

func TestBuildPublisher(t *testing.T) {
	_, isNoop := buildPublisher(config.Config{}, nil).(events.Noop)
	assert.True(t, isNoop)

	orig := dialMQTT
	defer func() { dialMQTT = orig }()

	stub := &teststubs.StubPublisher{}
	dialMQTT = func(events.MQTTConfig) (events.Publisher, error) { return stub, nil }
	cfg := config.Config{MQTT: config.MQTTConfig{Broker: "tcp://broker:1883", Topic: "t"}}
	assert.Same(t, stub, buildPublisher(cfg, nil))

	dialMQTT = func(events.MQTTConfig) (events.Publisher, error) { return nil, errors.New("refused") }
	_, isNoop = buildPublisher(cfg, nil).(events.Noop)
	assert.True(t, isNoop)
}

func TestBuildSurface(t *testing.T) {
	surface, frames := buildSurface(config.Config{})
	_, isFB := surface.(*display.FrameBuffer)
	assert.True(t, isFB)
	assert.NotNil(t, frames)

	surface, frames = buildSurface(config.Config{Display: config.DisplayConfig{Mode: "console"}})
	_, isConsole := surface.(*display.Console)
	assert.True(t, isConsole)
	assert.Nil(t, frames)
}
