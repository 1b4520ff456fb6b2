package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles login attempts per email over a sliding window.
type LoginLimiter interface {
	CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error)
}

// redisLoginLimiter keeps one sorted set per email. Every attempt is a
// member scored with its time in milliseconds; members must be unique or
// attempts in the same instant collapse into one.
type redisLoginLimiter struct {
	client    *redis.Client
	cfg       *config.RateConfig
	now       func() time.Time
	newMember func() string
}

func NewLoginLimiter(client *redis.Client, cfg *config.RateConfig) LoginLimiter {
	return &redisLoginLimiter{client: client, cfg: cfg, now: time.Now, newMember: uuid.NewString}
}

func loginAttemptsKey(email string) string {
	return "login_attempts:" + email
}

// Returns isAllowed, attempts left, seconds to wait, error
func (r *redisLoginLimiter) CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := loginAttemptsKey(email)
	nowMs := r.now().UnixMilli()
	windowMs := r.cfg.WindowSize.Milliseconds()

	pipe := r.client.Pipeline()

	// attempts at or before the window start no longer count
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(nowMs-windowMs, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: r.newMember()})
	count := pipe.ZCard(ctx, key)
	pipe.PExpire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Rate limit pipeline failed", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()

	if attempts <= r.cfg.MaxAttempts {
		remaining := r.cfg.MaxAttempts - attempts
		logger.Debug("Rate limit check passed", slog.String("email", email), slog.Int64("attempts", attempts), slog.Int64("remaining", remaining))
		return true, int(remaining), 0, nil
	}

	oldest, err := r.client.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil || len(oldest) == 0 {
		logger.Error("Failed to read oldest login attempt", slog.String("key", key), slog.Any("error", err))
		return false, 0, int(r.cfg.WindowSize.Seconds()), fmt.Errorf("failed to get oldest attempt time: %w", err)
	}

	waitMs := max(int64(oldest[0].Score)+windowMs-nowMs, 0)
	retryAfter := int((waitMs + 999) / 1000)

	logger.Warn("Rate limit exceeded for login", slog.String("email", email), slog.Int64("attempts", attempts), slog.Int("retryAfter", retryAfter))
	return false, 0, retryAfter, nil
}
