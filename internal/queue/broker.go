package queue

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrTimeout reports that no reply arrived within the caller's deadline.
// It is a transport condition, distinct from a business-level failed
// response.
var ErrTimeout = errors.New("timed out waiting for reply")

// Delivery is one received request. Ack must be called only after the
// response has been published, so a crashed worker leaves the request
// visible on the processing list.
type Delivery struct {
	Body []byte
	Ack  func(ctx context.Context) error
}

// Broker moves raw envelopes. The worker and the calling client both sit on
// this interface; tests use an in-memory implementation.
type Broker interface {
	// Publish appends a request envelope to the named queue.
	Publish(ctx context.Context, queueName string, payload []byte) error
	// Receive blocks for the next request on the named queue.
	Receive(ctx context.Context, queueName string) (*Delivery, error)
	// Reply publishes a response envelope to the reply destination, which
	// expires after ttl if nobody collects it.
	Reply(ctx context.Context, replyTo string, payload []byte, ttl time.Duration) error
	// Await blocks for a response on the reply destination. Returns
	// ErrTimeout when the timeout elapses first.
	Await(ctx context.Context, replyTo string, timeout time.Duration) ([]byte, error)
}

// receiveBlock bounds each blocking pop so Receive notices a canceled
// context between waits.
const receiveBlock = 5 * time.Second

// RedisBroker implements Broker on Redis lists. Requests move atomically
// from the queue list to a processing list on receipt and are removed from
// it on ack; replies go to per-correlation-id lists with a TTL.
type RedisBroker struct {
	client *redis.Client
}

// NewRedisBroker wraps an existing Redis client.
func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{client: client}
}

// Ping verifies connectivity.
func (b *RedisBroker) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (b *RedisBroker) Close() error {
	return b.client.Close()
}

func processingList(queueName string) string {
	return queueName + ":processing"
}

// Publish appends the payload to the queue list.
func (b *RedisBroker) Publish(ctx context.Context, queueName string, payload []byte) error {
	return b.client.RPush(ctx, queueName, payload).Err()
}

// Receive moves the next request into the processing list and hands it out
// with an ack that removes it from there.
func (b *RedisBroker) Receive(ctx context.Context, queueName string) (*Delivery, error) {
	for {
		body, err := b.client.BLMove(ctx, queueName, processingList(queueName), "LEFT", "RIGHT", receiveBlock).Result()
		if errors.Is(err, redis.Nil) {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		return &Delivery{
			Body: []byte(body),
			Ack: func(ctx context.Context) error {
				return b.client.LRem(ctx, processingList(queueName), 1, body).Err()
			},
		}, nil
	}
}

// Reply pushes the payload to the reply list and bounds its lifetime.
func (b *RedisBroker) Reply(ctx context.Context, replyTo string, payload []byte, ttl time.Duration) error {
	pipe := b.client.TxPipeline()
	pipe.RPush(ctx, replyTo, payload)
	pipe.Expire(ctx, replyTo, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// Await blocks on the reply list until a response arrives or the timeout
// elapses.
func (b *RedisBroker) Await(ctx context.Context, replyTo string, timeout time.Duration) ([]byte, error) {
	result, err := b.client.BRPop(ctx, timeout, replyTo).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrTimeout
	}
	if err != nil {
		return nil, err
	}
	// BRPop returns the key and the value.
	return []byte(result[1]), nil
}
