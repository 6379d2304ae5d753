package nhlweb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nhl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nhl-scoreboard/internal/providers"
)

// Config controls how the client reaches api-web.nhle.com.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches the live scoreboard and club schedules from the NHL web API.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs an NHL web API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Name reports the provider name used in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchLiveGames retrieves the current scoreboard.
func (c *Client) FetchLiveGames(ctx context.Context) ([]games.Game, error) {
	return c.fetch(ctx, "live games", c.baseURL+scorePath)
}

// FetchSchedule retrieves the current week of the club's schedule.
func (c *Client) FetchSchedule(ctx context.Context, team string) ([]games.Game, error) {
	code := strings.ToUpper(strings.TrimSpace(team))
	return c.fetch(ctx, "schedule", c.baseURL+fmt.Sprintf(schedulePathFmt, url.PathEscape(code)))
}

func (c *Client) fetch(ctx context.Context, op, endpoint string) ([]games.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    providerName + " rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.FetchError{
			Provider:   providerName,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, Op: op, Err: err}
	}
	parsed, err := parseGames(body)
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, Op: op, Err: fmt.Errorf("decode: %w", err)}
	}
	return parsed, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
