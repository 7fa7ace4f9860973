package shutdownqueue

import (
	"context"
	"errors"
	"testing"
	"time"
)

// reset clears package state between tests; the queue is process-global.
func reset() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.tasks = nil
	q.closed = false
}

func TestShutdown_RunsLIFO(t *testing.T) {
	reset()

	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		Add(func(ctx context.Context) error {
			order = append(order, i)
			return nil
		})
	}

	err := Shutdown(context.Background())
	if err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	want := []int{3, 2, 1}
	if len(order) != len(want) {
		t.Fatalf("ran %d tasks, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order %v, want %v", order, want)
		}
	}
}

func TestShutdown_Idempotent(t *testing.T) {
	reset()

	runs := 0
	Add(func(ctx context.Context) error {
		runs++
		return nil
	})

	_ = Shutdown(context.Background())
	_ = Shutdown(context.Background())

	if runs != 1 {
		t.Fatalf("task ran %d times, want 1", runs)
	}
}

func TestShutdown_AggregatesErrorsAndRecoversPanics(t *testing.T) {
	reset()

	boom := errors.New("boom")
	Add(func(ctx context.Context) error { return boom })
	Add(func(ctx context.Context) error { panic("kaput") })
	Add(func(ctx context.Context) error { return nil })

	err := Shutdown(context.Background())
	if err == nil {
		t.Fatal("want aggregated error, got nil")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("aggregated error %v does not wrap task error", err)
	}
}

func TestShutdown_StopsOnCanceledContext(t *testing.T) {
	reset()

	ran := false
	Add(func(ctx context.Context) error {
		ran = true
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	cancel()

	err := Shutdown(ctx)
	if err == nil {
		t.Fatal("want context error")
	}
	if ran {
		t.Fatal("task ran after context cancellation")
	}
}

func TestAdd_AfterShutdownIsNoop(t *testing.T) {
	reset()

	_ = Shutdown(context.Background())

	ran := false
	Add(func(ctx context.Context) error {
		ran = true
		return nil
	})

	_ = Shutdown(context.Background())
	if ran {
		t.Fatal("task added after shutdown must not run")
	}
}
