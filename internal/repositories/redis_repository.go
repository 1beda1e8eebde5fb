package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/superadmin-catalog/internal/api/middleware"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/config"
	"github.com/redis/go-redis/v9"
)

const loginAttemptsPrefix = "login_attempts:"

// RateLimitResult describes one login attempt against the sliding window.
type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type RateLimitRepository interface {
	CheckLoginRateLimit(ctx context.Context, email string) (*RateLimitResult, error)
}

type redisRateLimiter struct {
	client *redis.Client
	cfg    config.RateConfig
	now    func() time.Time
}

func NewRedisClient(cfg *config.RedisConnect) (*redis.Client, error) {
	slog.Info("Connecting to Redis", slog.String("url", fmt.Sprintf("redis://%s:<password>@%s:%s", cfg.Username, cfg.Host, cfg.Port)))

	opt, err := redis.ParseURL(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")

	return client, nil
}

func NewRateLimitRepo(client *redis.Client, cfg config.RateConfig) RateLimitRepository {
	return &redisRateLimiter{client: client, cfg: cfg, now: time.Now}
}

// CheckLoginRateLimit records an attempt for email and reports whether it fits
// in the window. Attempts are members of a sorted set scored by unix milliseconds.
func (r *redisRateLimiter) CheckLoginRateLimit(ctx context.Context, email string) (*RateLimitResult, error) {
	logger := middleware.LoggerFromContext(ctx)

	key := loginAttemptsPrefix + email
	now := r.now()
	windowStart := now.Add(-r.cfg.WindowSize).UnixMilli()

	pipe := r.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixMilli()), Member: now.UnixMilli()})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return nil, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()

	if attempts <= r.cfg.MaxAttempts {
		logger.Debug("Rate limit check passed", slog.String("email", email), slog.Int64("attempts", attempts))
		return &RateLimitResult{Allowed: true, Remaining: int(r.cfg.MaxAttempts - attempts)}, nil
	}

	oldest, err := r.client.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil || len(oldest) == 0 {
		logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
		return &RateLimitResult{Allowed: false, RetryAfter: r.cfg.WindowSize}, nil
	}

	retryAfter := time.UnixMilli(int64(oldest[0].Score)).Add(r.cfg.WindowSize).Sub(now)

	logger.Warn("Rate limit exceeded", slog.String("email", email), slog.Int64("attempts", attempts))

	return &RateLimitResult{Allowed: false, RetryAfter: max(retryAfter, 0)}, nil
}
