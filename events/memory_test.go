package events

import (
	"context"
	"testing"
	"time"

	"github.com/andrewpaige1/studysnap-api/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvSnapshot(t *testing.T, ch <-chan Snapshot) Snapshot {
	t.Helper()
	select {
	case s, ok := <-ch:
		require.True(t, ok, "channel closed")
		return s
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for snapshot")
	}
	return Snapshot{}
}

func TestMemoryBroker_FanOutPerUser(t *testing.T) {
	t.Parallel()
	b := NewMemoryBroker(logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a1, err := b.Subscribe(ctx, 1)
	require.NoError(t, err)
	a2, err := b.Subscribe(ctx, 1)
	require.NoError(t, err)
	other, err := b.Subscribe(ctx, 2)
	require.NoError(t, err)

	snap, err := NewSnapshot(1, Categories, []string{"Go"})
	require.NoError(t, err)
	require.NoError(t, b.Publish(ctx, snap))

	for _, ch := range []<-chan Snapshot{a1, a2} {
		got := recvSnapshot(t, ch)
		assert.Equal(t, Categories, got.Collection)
		assert.JSONEq(t, `["Go"]`, string(got.Data))
	}
	select {
	case s := <-other:
		t.Fatalf("user 2 received %v", s)
	default:
	}
}

func TestMemoryBroker_OrderingAndDrop(t *testing.T) {
	t.Parallel()
	b := NewMemoryBroker(logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := b.Subscribe(ctx, 7)
	require.NoError(t, err)

	for i := 0; i < subscriberBuffer+5; i++ {
		snap, err := NewSnapshot(7, Flashcards, i)
		require.NoError(t, err)
		require.NoError(t, b.Publish(ctx, snap))
	}

	for i := 0; i < subscriberBuffer; i++ {
		got := recvSnapshot(t, ch)
		assert.JSONEq(t, string(mustJSON(t, i)), string(got.Data))
	}
	select {
	case s := <-ch:
		t.Fatalf("expected overflow to be dropped, got %s", s.Data)
	default:
	}
}

func TestMemoryBroker_UnsubscribeOnCancel(t *testing.T) {
	t.Parallel()
	b := NewMemoryBroker(logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := b.Subscribe(ctx, 3)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatalf("channel not closed after cancel")
	}
}

func TestMemoryBroker_Close(t *testing.T) {
	t.Parallel()
	b := NewMemoryBroker(logger.NewNop())
	ch, err := b.Subscribe(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, b.Close())
	_, ok := <-ch
	assert.False(t, ok)

	require.ErrorIs(t, b.Publish(context.Background(), Snapshot{UserID: 1}), ErrClosed)
	_, err = b.Subscribe(context.Background(), 1)
	require.ErrorIs(t, err, ErrClosed)
	require.NoError(t, b.Close())
}

func mustJSON(t *testing.T, v int) []byte {
	t.Helper()
	s, err := NewSnapshot(0, Flashcards, v)
	require.NoError(t, err)
	return s.Data
}
