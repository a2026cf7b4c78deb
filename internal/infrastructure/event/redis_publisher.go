package event

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Publisher hands a serialized message to the broker
type Publisher interface {
	Publish(ctx context.Context, payload []byte) error
}

// RedisStreamPublisher publishes messages to a Redis stream. Streams give us
// at-least-once delivery with consumer groups on the receiving side.
type RedisStreamPublisher struct {
	client *redis.Client
	stream string
}

// NewRedisStreamPublisher creates a publisher for the given stream
func NewRedisStreamPublisher(client *redis.Client, stream string) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
		stream: stream,
	}
}

// Publish appends the message to the stream
func (p *RedisStreamPublisher) Publish(ctx context.Context, payload []byte) error {
	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{"message": payload},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to publish to stream %s: %w", p.stream, err)
	}
	return nil
}

var _ Publisher = (*RedisStreamPublisher)(nil)
