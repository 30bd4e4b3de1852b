// Package store owns the ledger collections (transactions, accounts,
// closings) plus the settings blob, and mirrors every mutation to an
// injected key-value persistence port. It is the single source of truth;
// the stats package re-derives every view from its snapshots.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"pentefino/internal/core"
)

// Blob keys of the persistence contract. Each key holds a JSON array of
// its collection (settings holds a single object).
const (
	KeyTransactions = "transactions"
	KeyAccounts     = "accounts"
	KeyClosings     = "closings"
	KeySettings     = "settings"
)

// Persistence is the outbound port the store mirrors its collections to.
// Load returns nil bytes (no error) for an absent key.
type Persistence interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// Notifier is told which collection changed after every mutation. The
// ledger service uses it to schedule the debounced remote sync.
type Notifier interface {
	RecordsChanged(collection string)
}

// Store holds the three entity collections and the settings. All writes
// are serialized behind the mutex: the persistence layer is
// read-everything/write-everything, so concurrent writers would lose
// updates.
type Store struct {
	mu           sync.Mutex
	transactions []core.Transaction
	accounts     []core.Account
	closings     []core.Closing
	settings     core.Settings

	persist  Persistence
	notifier Notifier
	now      func() time.Time
	lastID   int64
}

// Option configures a Store.
type Option func(*Store)

// WithNotifier sets the change notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store over the given persistence port. Call Load before
// first use.
func New(persist Persistence, opts ...Option) *Store {
	s := &Store{
		persist:  persist,
		settings: core.DefaultSettings(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the four blob keys once at startup. An absent or malformed
// blob yields an empty collection (or default settings) with a logged
// warning; startup never fails on bad persisted data.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loadJSON(ctx, s.persist, KeyTransactions, &s.transactions)
	loadJSON(ctx, s.persist, KeyAccounts, &s.accounts)
	loadJSON(ctx, s.persist, KeyClosings, &s.closings)

	settings := core.DefaultSettings()
	loadJSON(ctx, s.persist, KeySettings, &settings)
	if settings.CommissionRate < 0 || settings.CommissionRate > 100 {
		slog.WarnContext(ctx, "Persisted commission rate out of range, using default",
			"rate", settings.CommissionRate)
		settings = core.DefaultSettings()
	}
	s.settings = settings

	slog.InfoContext(ctx, "Ledger loaded",
		"transactions", len(s.transactions),
		"accounts", len(s.accounts),
		"closings", len(s.closings),
		"commission_rate", s.settings.CommissionRate)
	return nil
}

func loadJSON(ctx context.Context, p Persistence, key string, dst any) {
	raw, err := p.Load(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load blob, starting empty", "key", key, "error", err)
		return
	}
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.WarnContext(ctx, "Malformed blob, starting empty", "key", key, "error", err)
	}
}

// nextID returns a fresh timestamp-derived id, bumped past the previous
// one when two mutations land on the same millisecond.
func (s *Store) nextID() string {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// flush re-serializes one collection to its blob key and notifies the
// change listener. A save failure is logged and the in-memory state kept;
// the next mutation retries the full write.
func (s *Store) flush(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to serialize collection", "key", key, "error", err)
		return
	}
	if err := s.persist.Save(ctx, key, raw); err != nil {
		slog.ErrorContext(ctx, "Failed to persist collection, keeping in-memory state",
			"key", key, "error", err)
	}
	if s.notifier != nil {
		s.notifier.RecordsChanged(key)
	}
}

// Transactions returns a snapshot copy of the transaction collection,
// newest first (insertion order).
func (s *Store) Transactions() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Accounts returns a snapshot copy of the account collection.
func (s *Store) Accounts() []core.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Closings returns a snapshot copy of the closing collection.
func (s *Store) Closings() []core.Closing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Closing, len(s.closings))
	copy(out, s.closings)
	return out
}

// CommissionRate returns the configured commission percentage.
func (s *Store) CommissionRate() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.CommissionRate
}

// SetCommissionRate updates and persists the commission percentage.
func (s *Store) SetCommissionRate(ctx context.Context, rate int) error {
	if rate < 0 || rate > 100 {
		return core.ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.CommissionRate = rate
	s.flush(ctx, KeySettings, s.settings)
	return nil
}
