package queue

import (
	"context"
	"testing"
	"time"
)

func TestNewRejectsInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		if _, err := New[byte](capacity); err != ErrInvalidCapacity {
			t.Fatalf("capacity %d: expected ErrInvalidCapacity, got %v", capacity, err)
		}
	}
}

func TestTryPushDropsWhenFullWithoutBlocking(t *testing.T) {
	q, err := New[byte](3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if !q.TryPush(byte('a' + i)) {
			t.Fatalf("push %d should succeed below capacity", i)
		}
	}

	start := time.Now()
	for i := 0; i < 10; i++ {
		if q.TryPush('x') {
			t.Fatal("push beyond capacity should report drop")
		}
	}
	if time.Since(start) > 100*time.Millisecond {
		t.Fatal("TryPush must not block on a full queue")
	}

	if got := q.Dropped(); got != 10 {
		t.Fatalf("expected 10 dropped, got %d", got)
	}
	if q.Len() != 3 {
		t.Fatalf("expected 3 buffered, got %d", q.Len())
	}
}

func TestOrderPreservedAcrossDrops(t *testing.T) {
	q, err := New[byte](4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, b := range []byte("abcdXYZ") {
		q.TryPush(b)
	}

	ctx := context.Background()
	for _, want := range []byte("abcd") {
		got, ok := q.Pop(ctx)
		if !ok || got != want {
			t.Fatalf("expected %q, got %q (ok=%v)", want, got, ok)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", q.Len())
	}
}

func TestPopUnblocksOnPush(t *testing.T) {
	q, err := New[int](1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := make(chan int, 1)
	go func() {
		v, ok := q.Pop(context.Background())
		if ok {
			got <- v
		}
	}()

	time.Sleep(20 * time.Millisecond)
	q.TryPush(42)

	select {
	case v := <-got:
		if v != 42 {
			t.Fatalf("expected 42, got %d", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Pop did not observe the pushed element")
	}
}

func TestPopReturnsOnContextCancel(t *testing.T) {
	q, err := New[int](1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_, ok := q.Pop(ctx)
		if !ok {
			close(done)
		}
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Pop did not return after context cancellation")
	}
}

func TestPopTimeoutElapses(t *testing.T) {
	q, err := New[int](1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	start := time.Now()
	_, ok := q.PopTimeout(context.Background(), 30*time.Millisecond)
	if ok {
		t.Fatal("expected timeout on empty queue")
	}
	if time.Since(start) > 2*time.Second {
		t.Fatal("PopTimeout waited far beyond its deadline")
	}

	q.TryPush(7)
	v, ok := q.PopTimeout(context.Background(), time.Second)
	if !ok || v != 7 {
		t.Fatalf("expected 7 before deadline, got %d (ok=%v)", v, ok)
	}
}
