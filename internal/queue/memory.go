package queue

import (
	"context"
	"sync"
	"time"
)

// MemoryBroker is an in-process Broker backed by channels. It backs tests
// and single-process setups where Redis would be overhead; reply TTLs are
// not enforced.
type MemoryBroker struct {
	mu     sync.Mutex
	queues map[string]chan []byte
}

// NewMemoryBroker creates an empty in-process broker.
func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{queues: make(map[string]chan []byte)}
}

func (b *MemoryBroker) channel(name string) chan []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch, ok := b.queues[name]
	if !ok {
		ch = make(chan []byte, 1024)
		b.queues[name] = ch
	}
	return ch
}

// Publish appends the payload to the named queue.
func (b *MemoryBroker) Publish(ctx context.Context, queueName string, payload []byte) error {
	select {
	case b.channel(queueName) <- payload:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receive blocks for the next payload on the named queue.
func (b *MemoryBroker) Receive(ctx context.Context, queueName string) (*Delivery, error) {
	select {
	case body := <-b.channel(queueName):
		return &Delivery{
			Body: body,
			Ack:  func(context.Context) error { return nil },
		}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Reply publishes to the reply destination. The TTL is ignored.
func (b *MemoryBroker) Reply(ctx context.Context, replyTo string, payload []byte, _ time.Duration) error {
	return b.Publish(ctx, replyTo, payload)
}

// Await blocks for a response on the reply destination.
func (b *MemoryBroker) Await(ctx context.Context, replyTo string, timeout time.Duration) ([]byte, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case body := <-b.channel(replyTo):
		return body, nil
	case <-timer.C:
		return nil, ErrTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
