// Package services wires the record store to the sync queue: every
// mutation schedules a debounced sync message so bursts of edits collapse
// into one push per collection.
package services

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SyncPublisher is the outbound port to the sync queue.
type SyncPublisher interface {
	PublishSync(ctx context.Context, collection string) error
}

// SyncScheduler implements store.Notifier. Each change marks its
// collection dirty and resets the debounce timer; only the most recent
// timer fires, publishing one message per dirty collection. Publishing is
// best effort: a missing or failing queue is logged and never surfaces to
// the mutating request.
type SyncScheduler struct {
	publisher SyncPublisher
	debounce  time.Duration

	mu    sync.Mutex
	timer *time.Timer
	dirty map[string]struct{}
}

// NewSyncScheduler creates a scheduler. publisher may be nil, which turns
// scheduling into a logged no-op.
func NewSyncScheduler(publisher SyncPublisher, debounce time.Duration) *SyncScheduler {
	return &SyncScheduler{
		publisher: publisher,
		debounce:  debounce,
		dirty:     map[string]struct{}{},
	}
}

// RecordsChanged marks a collection dirty and restarts the debounce
// window.
func (s *SyncScheduler) RecordsChanged(collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty[collection] = struct{}{}
	if s.timer == nil {
		s.timer = time.AfterFunc(s.debounce, s.fire)
		return
	}
	s.timer.Reset(s.debounce)
}

func (s *SyncScheduler) fire() {
	s.mu.Lock()
	pending := s.dirty
	s.dirty = map[string]struct{}{}
	s.mu.Unlock()

	s.publish(context.Background(), pending)
}

// Flush publishes any pending collections immediately. Called on
// shutdown so a debounce window in flight is not lost.
func (s *SyncScheduler) Flush(ctx context.Context) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	pending := s.dirty
	s.dirty = map[string]struct{}{}
	s.mu.Unlock()

	s.publish(ctx, pending)
}

func (s *SyncScheduler) publish(ctx context.Context, pending map[string]struct{}) {
	if len(pending) == 0 {
		return
	}
	if s.publisher == nil {
		slog.DebugContext(ctx, "Sync queue not configured, skipping sync publish",
			"collections", len(pending))
		return
	}
	for collection := range pending {
		if err := s.publisher.PublishSync(ctx, collection); err != nil {
			// The record keeps its unsynced flag; the worker's periodic
			// backstop will pick it up.
			slog.ErrorContext(ctx, "Failed to publish sync message",
				"collection", collection, "error", err)
		}
	}
}
