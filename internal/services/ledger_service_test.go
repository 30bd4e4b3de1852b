package services

import (
	"context"
	"sync"
	"testing"
	"time"
)

type recordingPublisher struct {
	mu        sync.Mutex
	published []string
}

func (p *recordingPublisher) PublishSync(_ context.Context, collection string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, collection)
	return nil
}

func (p *recordingPublisher) snapshot() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.published...)
}

func TestSchedulerDebouncesBursts(t *testing.T) {
	pub := &recordingPublisher{}
	s := NewSyncScheduler(pub, 30*time.Millisecond)

	// A burst of mutations within the window collapses to one publish per
	// dirty collection.
	s.RecordsChanged("transactions")
	s.RecordsChanged("transactions")
	s.RecordsChanged("accounts")
	s.RecordsChanged("transactions")

	deadline := time.After(2 * time.Second)
	for {
		got := pub.snapshot()
		if len(got) == 2 {
			seen := map[string]bool{}
			for _, c := range got {
				seen[c] = true
			}
			if !seen["transactions"] || !seen["accounts"] {
				t.Fatalf("expected one publish per collection, got %v", got)
			}
			return
		}
		if len(got) > 2 {
			t.Fatalf("burst must debounce to one publish per collection, got %v", got)
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for debounce fire, got %v", got)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSchedulerFlush(t *testing.T) {
	pub := &recordingPublisher{}
	s := NewSyncScheduler(pub, time.Hour) // far in the future

	s.RecordsChanged("closings")
	s.Flush(context.Background())

	got := pub.snapshot()
	if len(got) != 1 || got[0] != "closings" {
		t.Fatalf("flush must publish pending collections immediately, got %v", got)
	}

	// Idempotent: nothing pending anymore.
	s.Flush(context.Background())
	if len(pub.snapshot()) != 1 {
		t.Fatalf("second flush must publish nothing")
	}
}

func TestSchedulerNilPublisher(t *testing.T) {
	s := NewSyncScheduler(nil, time.Millisecond)
	s.RecordsChanged("transactions")
	s.Flush(context.Background()) // must not panic
}
