// ABOUTME: Tests for the unbounded FIFO queue: ordering, non-blocking push, close semantics.

package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestQueue_FIFOOrder(t *testing.T) {
	t.Parallel()

	q := newQueue()
	q.Push(InitEvent{})
	q.Push(TickEvent{})
	q.Push(RenderEvent{})

	ctx := context.Background()
	want := []Event{InitEvent{}, TickEvent{}, RenderEvent{}}
	for i, w := range want {
		got, err := q.Pop(ctx)
		if err != nil {
			t.Fatalf("Pop(%d) error: %v", i, err)
		}
		if got != w {
			t.Errorf("Pop(%d) = %T, want %T", i, got, w)
		}
	}
}

func TestQueue_PushNeverBlocks(t *testing.T) {
	t.Parallel()

	q := newQueue()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10000; i++ {
			q.Push(TickEvent{})
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Push blocked with no consumer")
	}
	if got := q.Len(); got != 10000 {
		t.Errorf("Len() = %d, want 10000", got)
	}
}

func TestQueue_PopWaitsForPush(t *testing.T) {
	t.Parallel()

	q := newQueue()
	go func() {
		time.Sleep(20 * time.Millisecond)
		q.Push(InitEvent{})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	got, err := q.Pop(ctx)
	if err != nil {
		t.Fatalf("Pop() error: %v", err)
	}
	if _, ok := got.(InitEvent); !ok {
		t.Errorf("Pop() = %T, want InitEvent", got)
	}
}

func TestQueue_PopHonorsContext(t *testing.T) {
	t.Parallel()

	q := newQueue()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := q.Pop(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Pop() error = %v, want context.Canceled", err)
	}
}

func TestQueue_CloseDrainsThenFails(t *testing.T) {
	t.Parallel()

	q := newQueue()
	q.Push(TickEvent{})
	q.Close()

	ctx := context.Background()
	if _, err := q.Pop(ctx); err != nil {
		t.Fatalf("Pop() before drain error: %v", err)
	}
	if _, err := q.Pop(ctx); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("Pop() after drain error = %v, want ErrQueueClosed", err)
	}
}

func TestQueue_PushAfterCloseDropped(t *testing.T) {
	t.Parallel()

	q := newQueue()
	q.Close()
	q.Push(TickEvent{})

	if got := q.Len(); got != 0 {
		t.Errorf("Len() after post-close push = %d, want 0", got)
	}
}
