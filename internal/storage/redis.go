package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RatingCache keeps per-dish rating aggregates in Redis so menu pages don't
// hit the reviews table on every read.
type RatingCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRatingCache(client *redis.Client, ttl time.Duration) *RatingCache {
	return &RatingCache{Client: client, TTL: ttl}
}

func (c *RatingCache) ratingKey(dishID int) string {
	return fmt.Sprintf("dish:rating:%d", dishID)
}

func (c *RatingCache) SetRating(ctx context.Context, dishID int, avg float64, count int) error {
	key := c.ratingKey(dishID)
	if err := c.Client.HSet(ctx, key, map[string]interface{}{
		"avg_rating":   avg,
		"review_count": count,
		"last_updated": time.Now().Unix(),
	}).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, c.TTL).Err()
}

func (c *RatingCache) GetRating(ctx context.Context, dishID int) (float64, int, bool, error) {
	values, err := c.Client.HGetAll(ctx, c.ratingKey(dishID)).Result()
	if err != nil {
		return 0, 0, false, err
	}
	if len(values) == 0 {
		return 0, 0, false, nil
	}
	var avg float64
	var count int
	fmt.Sscanf(values["avg_rating"], "%f", &avg)
	fmt.Sscanf(values["review_count"], "%d", &count)
	return avg, count, true, nil
}

func (c *RatingCache) Invalidate(ctx context.Context, dishID int) error {
	return c.Client.Del(ctx, c.ratingKey(dishID)).Err()
}
