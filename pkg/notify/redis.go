package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/gridboard/pkg/observability"
)

// DefaultChannel is the pub/sub channel used when none is configured.
const DefaultChannel = "gridboard:changes"

// redisClient is the subset of *redis.Client used for publishing.
type redisClient interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
	Close() error
}

// Redis publishes events as JSON on a Redis channel.
type Redis struct {
	client  redisClient
	channel string
}

// NewRedis connects to addr and verifies the connection with PING,
// retrying with backoff while the server comes up.
func NewRedis(ctx context.Context, addr, channel string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ping := func() error { return client.Ping(ctx).Err() }
	if err := retry(ctx, connectAttempts, connectDelay, ping); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return newRedis(client, channel), nil
}

func newRedis(client redisClient, channel string) *Redis {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Redis{client: client, channel: channel}
}

// Channel returns the channel events are published on.
func (r *Redis) Channel() string { return r.channel }

// Publish encodes ev and publishes it.
func (r *Redis) Publish(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	err = r.client.Publish(ctx, r.channel, data).Err()
	observability.Notify().OnPublish(ctx, r.channel, len(data), err)
	if err != nil {
		return fmt.Errorf("publish %s: %w", r.channel, err)
	}
	return nil
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}

var _ Publisher = (*Redis)(nil)
