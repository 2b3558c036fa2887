package events

import (
	"context"
	"sync"

	"github.com/andrewpaige1/studysnap-api/logger"
)

const subscriberBuffer = 16

type subscriber struct {
	userID uint
	ch     chan Snapshot
}

// MemoryBroker delivers snapshots within one process.
type MemoryBroker struct {
	log *logger.Logger

	mu     sync.Mutex
	subs   map[*subscriber]struct{}
	closed bool
}

func NewMemoryBroker(log *logger.Logger) *MemoryBroker {
	return &MemoryBroker{
		log:  log.With("service", "MemoryBroker"),
		subs: make(map[*subscriber]struct{}),
	}
}

func (b *MemoryBroker) Publish(_ context.Context, s Snapshot) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	b.deliver(s)
	return nil
}

// deliver never blocks: a subscriber whose buffer is full misses the
// snapshot and catches up on the next one. Callers hold b.mu.
func (b *MemoryBroker) deliver(s Snapshot) {
	for sub := range b.subs {
		if sub.userID != s.UserID {
			continue
		}
		select {
		case sub.ch <- s:
		default:
			b.log.Warn("dropping snapshot for slow subscriber", "user_id", s.UserID, "collection", s.Collection)
		}
	}
}

func (b *MemoryBroker) Subscribe(ctx context.Context, userID uint) (<-chan Snapshot, error) {
	sub := &subscriber{userID: userID, ch: make(chan Snapshot, subscriberBuffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(sub)
	}()
	return sub.ch, nil
}

func (b *MemoryBroker) remove(sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	close(sub.ch)
}

func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for sub := range b.subs {
		delete(b.subs, sub)
		close(sub.ch)
	}
	return nil
}
