package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gif-contest/internal/logger"
	"github.com/sbilibin2017/gif-contest/internal/models"
)

const (
	// leaderboardGenerationKey is bumped by every invalidation.
	leaderboardGenerationKey = "contest:leaderboard:generation"
	// leaderboardKeyPrefix plus the generation names a hash with one field per requested limit.
	leaderboardKeyPrefix = "contest:leaderboard:"
)

func leaderboardKey(generation int64) string {
	return leaderboardKeyPrefix + strconv.FormatInt(generation, 10)
}

// LeaderboardCacheRepository caches ranked leaderboards in Redis.
// Pages are stored under the generation they were read in, so a fill that loses a race
// with Invalidate lands in a hash no reader looks at and expires with the TTL.
type LeaderboardCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of each generation hash
}

// NewLeaderboardCacheRepository creates a new cache repository with the given TTL
func NewLeaderboardCacheRepository(client *redis.Client, expiration time.Duration) *LeaderboardCacheRepository {
	return &LeaderboardCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Generation returns the current cache generation, 0 before the first invalidation.
func (r *LeaderboardCacheRepository) Generation(ctx context.Context) (int64, error) {
	generation, err := r.client.Get(ctx, leaderboardGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

// Get returns the cached leaderboard for limit in the current generation.
// ok is false on a cache miss; generation is set either way.
func (r *LeaderboardCacheRepository) Get(ctx context.Context, limit int) (entries []models.LeaderboardEntry, generation int64, ok bool, err error) {
	generation, err = r.Generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}

	key, field := leaderboardKey(generation), strconv.Itoa(limit)
	data, err := r.client.HGet(ctx, key, field).Bytes()
	logger.Log.Debugw("cache get",
		"key", key,
		"field", field,
		"size", len(data),
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return nil, generation, false, nil
	}
	if err != nil {
		return nil, 0, false, err
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, 0, false, err
	}
	return entries, generation, true, nil
}

// Set stores the leaderboard for limit under generation and refreshes that hash's TTL.
func (r *LeaderboardCacheRepository) Set(ctx context.Context, generation int64, limit int, entries []models.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	key, field := leaderboardKey(generation), strconv.Itoa(limit)
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, field, data)
	pipe.Expire(ctx, key, r.exp)
	_, err = pipe.Exec(ctx)

	logger.Log.Debugw("cache set",
		"key", key,
		"field", field,
		"entries", len(entries),
		"error", err,
	)
	return err
}

// Invalidate starts a new generation, hiding every cached leaderboard.
func (r *LeaderboardCacheRepository) Invalidate(ctx context.Context) error {
	generation, err := r.client.Incr(ctx, leaderboardGenerationKey).Result()
	logger.Log.Debugw("cache invalidate",
		"key", leaderboardGenerationKey,
		"generation", generation,
		"error", err,
	)
	return err
}
