package favorite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/nhl-scoreboard/internal/logging"
)

const redisTimeout = 500 * time.Millisecond

// RedisSource reads the favorite club from a Redis string key.
type RedisSource struct {
	client   redis.Cmdable
	key      string
	fallback string
	logger   *slog.Logger
}

// NewRedisSource wraps an existing client.
func NewRedisSource(client redis.Cmdable, key, fallback string, logger *slog.Logger) *RedisSource {
	return &RedisSource{client: client, key: key, fallback: fallback, logger: logger}
}

// DialRedis builds a client from a redis:// URL.
func DialRedis(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (s *RedisSource) Team(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logging.Warn(s.logger, "favorite team lookup failed", "key", s.key, "error", err)
		}
		return s.fallback
	}
	return Normalize(val, s.fallback)
}

func (s *RedisSource) SetTeam(ctx context.Context, code string) error {
	normalized, err := Validate(code)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()
	if err := s.client.Set(ctx, s.key, normalized, 0).Err(); err != nil {
		return fmt.Errorf("store favorite team: %w", err)
	}
	return nil
}
