// Package worker pushes unsynced ledger records to the remote counterpart.
// It shares the blob store with the API server and deduplicates against
// each record's sync flag, so a re-delivered message or a retried push is
// harmless.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"pentefino/internal/amqp"
	"pentefino/internal/core"
	"pentefino/internal/store"
)

// RemotePusher delivers one collection's unsynced records to the remote
// store. Implementations must be safe to retry with the same payload.
type RemotePusher interface {
	Push(ctx context.Context, collection string, records []byte) error
}

// SyncWorker drains unsynced records from the ledger blobs.
type SyncWorker struct {
	blobs  store.Persistence
	pusher RemotePusher
}

func NewSyncWorker(blobs store.Persistence, pusher RemotePusher) *SyncWorker {
	return &SyncWorker{blobs: blobs, pusher: pusher}
}

// HandleSyncMessage processes one sync message from the queue.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.SyncMessage) error {
	return w.syncCollection(ctx, msg.Collection)
}

// ProcessPending sweeps all three collections. Backstop for lost queue
// messages, run on startup and on a periodic tick.
func (w *SyncWorker) ProcessPending(ctx context.Context) error {
	for _, key := range []string{store.KeyTransactions, store.KeyAccounts, store.KeyClosings} {
		if err := w.syncCollection(ctx, key); err != nil {
			return fmt.Errorf("sync %s: %w", key, err)
		}
	}
	return nil
}

func (w *SyncWorker) syncCollection(ctx context.Context, collection string) error {
	if w.pusher == nil {
		slog.InfoContext(ctx, "Remote sync not configured, leaving records unsynced",
			"collection", collection)
		return nil
	}

	switch collection {
	case store.KeyTransactions:
		return syncRecords(ctx, w, collection, func(t *core.Transaction) *bool { return &t.Synced })
	case store.KeyAccounts:
		return syncRecords(ctx, w, collection, func(a *core.Account) *bool { return &a.Synced })
	case store.KeyClosings:
		return syncRecords(ctx, w, collection, func(c *core.Closing) *bool { return &c.Synced })
	case store.KeySettings:
		// Settings carry no sync flag; nothing to push.
		return nil
	default:
		slog.WarnContext(ctx, "Unknown collection in sync message, dropping", "collection", collection)
		return nil
	}
}

// syncRecords loads one collection blob, pushes its unsynced records and
// writes the flipped sync flags back. The blob write races with the API
// server's writes in last-write-wins fashion; a lost flag only means the
// record is pushed again, which the remote deduplicates.
func syncRecords[T any](ctx context.Context, w *SyncWorker, collection string, syncFlag func(*T) *bool) error {
	raw, err := w.blobs.Load(ctx, collection)
	if err != nil {
		return fmt.Errorf("load %s: %w", collection, err)
	}
	if len(raw) == 0 {
		return nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("unmarshal %s: %w", collection, err)
	}

	var unsynced []T
	for i := range records {
		if !*syncFlag(&records[i]) {
			unsynced = append(unsynced, records[i])
		}
	}
	if len(unsynced) == 0 {
		slog.DebugContext(ctx, "Nothing to sync", "collection", collection)
		return nil
	}

	payload, err := json.Marshal(unsynced)
	if err != nil {
		return fmt.Errorf("marshal unsynced %s: %w", collection, err)
	}
	if err := w.pusher.Push(ctx, collection, payload); err != nil {
		return fmt.Errorf("push %s: %w", collection, err)
	}

	for i := range records {
		*syncFlag(&records[i]) = true
	}
	updated, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", collection, err)
	}
	if err := w.blobs.Save(ctx, collection, updated); err != nil {
		// The push succeeded; records stay flagged unsynced and will be
		// pushed again on the next pass.
		return fmt.Errorf("save %s: %w", collection, err)
	}

	slog.InfoContext(ctx, "Synced records to remote",
		"collection", collection,
		"pushed", len(unsynced),
		"total", len(records))
	return nil
}
