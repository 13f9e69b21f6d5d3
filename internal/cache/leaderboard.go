package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"learnroute/internal/model"
)

const leaderboardKeyPrefix = "learnroute:leaderboard:"

// LeaderboardCache stores ranked leaderboard pages keyed by limit.
// Get reports a miss with ok=false and a nil error.
type LeaderboardCache interface {
	Get(ctx context.Context, limit int) (entries []model.LeaderboardEntry, ok bool, err error)
	Set(ctx context.Context, limit int, entries []model.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}

type redisLeaderboardCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisLeaderboardCache connects to addr and pings it once.
func NewRedisLeaderboardCache(ctx context.Context, addr, password string, db int, ttl time.Duration) (LeaderboardCache, func() error, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisLeaderboardCacheFromClient(rdb, ttl), rdb.Close, nil
}

func NewRedisLeaderboardCacheFromClient(rdb *goredis.Client, ttl time.Duration) LeaderboardCache {
	return &redisLeaderboardCache{rdb: rdb, ttl: ttl}
}

func leaderboardKey(limit int) string {
	return fmt.Sprintf("%s%d", leaderboardKeyPrefix, limit)
}

func (c *redisLeaderboardCache) Get(ctx context.Context, limit int) ([]model.LeaderboardEntry, bool, error) {
	raw, err := c.rdb.Get(ctx, leaderboardKey(limit)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redisLeaderboardCache.Get: %w", err)
	}
	var entries []model.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("redisLeaderboardCache.Get: decode: %w", err)
	}
	return entries, true, nil
}

func (c *redisLeaderboardCache) Set(ctx context.Context, limit int, entries []model.LeaderboardEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("redisLeaderboardCache.Set: encode: %w", err)
	}
	if err := c.rdb.Set(ctx, leaderboardKey(limit), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redisLeaderboardCache.Set: %w", err)
	}
	return nil
}

// Invalidate drops every cached page regardless of limit.
func (c *redisLeaderboardCache) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, leaderboardKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redisLeaderboardCache.Invalidate: scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redisLeaderboardCache.Invalidate: %w", err)
	}
	return nil
}

// NoopLeaderboardCache is used when redis is not configured. Every Get misses.
type NoopLeaderboardCache struct{}

func (NoopLeaderboardCache) Get(context.Context, int) ([]model.LeaderboardEntry, bool, error) {
	return nil, false, nil
}

func (NoopLeaderboardCache) Set(context.Context, int, []model.LeaderboardEntry) error { return nil }

func (NoopLeaderboardCache) Invalidate(context.Context) error { return nil }
