package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

// StatsCache keeps computed habit statistics in Redis so repeated stat reads
// don't replay the whole completion history. Entries are invalidated whenever
// a completion is recorded.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

var GlobalStatsCache *StatsCache

// NewStatsCache connects to Redis and verifies the connection.
func NewStatsCache(redisURL string, ttl time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &StatsCache{client: client, ttl: ttl}, nil
}

func statsKey(habitID string) string {
	return fmt.Sprintf("habit_stats:%s", habitID)
}

// SetStats caches the statistics for a habit.
func (sc *StatsCache) SetStats(ctx context.Context, habitID string, stats model.HabitStats) error {
	if habitID == "" {
		return fmt.Errorf("habitID cannot be empty")
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %v", err)
	}

	if err := sc.client.Set(ctx, statsKey(habitID), data, sc.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache stats: %v", err)
	}
	return nil
}

// GetStats retrieves cached statistics for a habit. A nil result with no
// error is a cache miss.
func (sc *StatsCache) GetStats(ctx context.Context, habitID string) (*model.HabitStats, error) {
	if habitID == "" {
		return nil, fmt.Errorf("habitID cannot be empty")
	}

	data, err := sc.client.Get(ctx, statsKey(habitID)).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats from cache: %v", err)
	}

	var stats model.HabitStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %v", err)
	}
	return &stats, nil
}

// InvalidateStats drops the cached statistics for a habit.
func (sc *StatsCache) InvalidateStats(ctx context.Context, habitID string) error {
	if habitID == "" {
		return fmt.Errorf("habitID cannot be empty")
	}
	return sc.client.Del(ctx, statsKey(habitID)).Err()
}

// Ping verifies the Redis connection for health checks.
func (sc *StatsCache) Ping(ctx context.Context) error {
	return sc.client.Ping(ctx).Err()
}
