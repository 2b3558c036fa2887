package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/andrewpaige1/studysnap-api/logger"
	goredis "github.com/redis/go-redis/v9"
)

// RedisBroker shares snapshots between API instances over Redis pub/sub, one
// channel per user.
type RedisBroker struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
}

func NewRedisBroker(addr, prefix string, log *logger.Logger) (*RedisBroker, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisBroker{
		log:    log.With("service", "RedisBroker"),
		rdb:    rdb,
		prefix: prefix,
	}, nil
}

func (b *RedisBroker) channel(userID uint) string {
	return fmt.Sprintf("%s:%d", b.prefix, userID)
}

func (b *RedisBroker) Publish(ctx context.Context, s Snapshot) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel(s.UserID), raw).Err()
}

func (b *RedisBroker) Subscribe(ctx context.Context, userID uint) (<-chan Snapshot, error) {
	sub := b.rdb.Subscribe(ctx, b.channel(userID))

	// ensures subscription actually started
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("redis subscribe: %w", err)
	}

	out := make(chan Snapshot, subscriberBuffer)
	go func() {
		defer close(out)
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					return
				}
				var s Snapshot
				if err := json.Unmarshal([]byte(m.Payload), &s); err != nil {
					b.log.Warn("bad redis snapshot payload", "error", err)
					continue
				}
				select {
				case out <- s:
				default:
					b.log.Warn("dropping snapshot for slow subscriber", "user_id", userID, "collection", s.Collection)
				}
			}
		}
	}()
	return out, nil
}

func (b *RedisBroker) Close() error {
	return b.rdb.Close()
}
