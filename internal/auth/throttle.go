package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LoginThrottle limits repeated failed logins for the same username.
type LoginThrottle interface {
	Allow(ctx context.Context, username string) bool
	Fail(ctx context.Context, username string)
	Reset(ctx context.Context, username string)
}

// NopThrottle never blocks.
type NopThrottle struct{}

func (NopThrottle) Allow(context.Context, string) bool { return true }
func (NopThrottle) Fail(context.Context, string)       {}
func (NopThrottle) Reset(context.Context, string)      {}

// RedisThrottle counts failures in Redis. It fails open: when Redis is
// unreachable logins are allowed and the error is logged.
type RedisThrottle struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
	logger      *zap.Logger
}

// NewRedisThrottle builds a throttle allowing maxFailures failures per window.
func NewRedisThrottle(client *redis.Client, maxFailures int, window time.Duration, logger *zap.Logger) *RedisThrottle {
	if maxFailures <= 0 {
		maxFailures = 10
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RedisThrottle{client: client, maxFailures: int64(maxFailures), window: window, logger: logger}
}

func (t *RedisThrottle) Allow(ctx context.Context, username string) bool {
	count, err := t.client.Get(ctx, throttleKey(username)).Int64()
	if err == redis.Nil {
		return true
	}
	if err != nil {
		t.logger.Warn("login throttle unavailable", zap.Error(err))
		return true
	}
	return count < t.maxFailures
}

func (t *RedisThrottle) Fail(ctx context.Context, username string) {
	key := throttleKey(username)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		t.logger.Warn("record login failure", zap.Error(err))
	}
}

func (t *RedisThrottle) Reset(ctx context.Context, username string) {
	if err := t.client.Del(ctx, throttleKey(username)).Err(); err != nil {
		t.logger.Warn("reset login failures", zap.Error(err))
	}
}

// throttleKey uses the username verbatim since emails are matched
// case-sensitively at login.
func throttleKey(username string) string {
	return "login:failures:" + username
}
