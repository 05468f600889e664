package cache

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/meetwise-team/meeting-pipeline/pkg/config"
)

// NewRedisClient creates a Redis client and verifies connectivity
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	ping := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return client.Ping(ctx).Err()
	}

	if err := backoff.Retry(ping, bo); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// EventDeduper guards against duplicate deliveries of the same trigger
// event. The event runtime this service replaces deduplicated by event id;
// SETNX with a TTL gives the same at-most-once acceptance window.
type EventDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEventDeduper creates a deduper with the given acceptance window
func NewEventDeduper(client *redis.Client, ttl time.Duration) *EventDeduper {
	return &EventDeduper{client: client, ttl: ttl}
}

// Accept returns true the first time an event id is seen within the window
func (d *EventDeduper) Accept(ctx context.Context, eventID string) (bool, error) {
	key := "pipeline:event:" + eventID
	ok, err := d.client.SetNX(ctx, key, "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("event dedup check failed: %w", err)
	}
	return ok, nil
}

// SummaryCache is a cache-aside layer for the meeting read endpoint
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a summary cache with the given TTL
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl}
}

func (c *SummaryCache) key(meetingID string) string {
	return "pipeline:meeting:" + meetingID
}

// Get returns the cached payload for a meeting, if present
func (c *SummaryCache) Get(ctx context.Context, meetingID string) ([]byte, bool) {
	val, err := c.client.Get(ctx, c.key(meetingID)).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores the payload for a meeting
func (c *SummaryCache) Set(ctx context.Context, meetingID string, payload []byte) error {
	return c.client.Set(ctx, c.key(meetingID), payload, c.ttl).Err()
}

// Invalidate drops the cached payload for a meeting
func (c *SummaryCache) Invalidate(ctx context.Context, meetingID string) error {
	return c.client.Del(ctx, c.key(meetingID)).Err()
}
