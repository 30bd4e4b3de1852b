package store

import (
	"context"
	"fmt"

	"pentefino/internal/core"
)

// AccountPatch is a partial update; nil fields are left untouched.
type AccountPatch struct {
	Name           *string
	Category       *string
	Amount         *float64
	DueDay         *int
	Kind           *core.AccountKind
	Recurrence     *core.RecurrenceMode
	ReferenceMonth *string
}

// AddAccount validates and stores the account. A variable account with
// recurring mode and months > 1 is expanded into one sibling per
// consecutive reference month, each with its own id and status and a
// " (i/N)" suffix on the name. Returns the created records.
func (s *Store) AddAccount(ctx context.Context, a core.Account, months int) ([]core.Account, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("add account: %w", err)
	}
	if months < 1 {
		months = 1
	}
	if a.Kind != core.AccountVariable || a.Recurrence != core.RecurrenceRecurring {
		months = 1
	}

	month, year, err := core.ParseReferenceMonth(a.ReferenceMonth)
	if err != nil {
		return nil, fmt.Errorf("add account: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := make([]core.Account, 0, months)
	baseName := a.Name
	for i := 0; i < months; i++ {
		sibling := a
		sibling.ID = s.nextID()
		sibling.Status = core.AccountPending
		sibling.PaidOn = ""
		sibling.Synced = false
		sibling.ReferenceMonth = core.FormatReferenceMonth(month, year)
		if months > 1 {
			sibling.Name = fmt.Sprintf("%s (%d/%d)", baseName, i+1, months)
		}
		created = append(created, sibling)
		month, year = core.NextReferenceMonth(month, year)
	}

	s.accounts = append(created, s.accounts...)
	s.flush(ctx, KeyAccounts, s.accounts)
	return created, nil
}

// UpdateAccount merges the patch into the matching account and marks it
// unsynced. Unknown ids are a silent no-op.
func (s *Store) UpdateAccount(ctx context.Context, id string, patch AccountPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].ID != id {
			continue
		}
		a := &s.accounts[i]
		if patch.Name != nil {
			a.Name = *patch.Name
		}
		if patch.Category != nil {
			a.Category = *patch.Category
		}
		if patch.Amount != nil {
			a.Amount = *patch.Amount
		}
		if patch.DueDay != nil {
			a.DueDay = *patch.DueDay
		}
		if patch.Kind != nil {
			a.Kind = *patch.Kind
		}
		if patch.Recurrence != nil {
			a.Recurrence = *patch.Recurrence
		}
		if patch.ReferenceMonth != nil {
			a.ReferenceMonth = *patch.ReferenceMonth
		}
		a.Synced = false
		s.flush(ctx, KeyAccounts, s.accounts)
		return
	}
}

// RemoveAccount deletes the matching account; silent no-op on unknown ids.
func (s *Store) RemoveAccount(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			s.flush(ctx, KeyAccounts, s.accounts)
			return
		}
	}
}

// ToggleAccountStatus flips pending/paid. Moving to paid stamps PaidOn
// with today's ledger date; moving back clears it. Either way the record
// is marked unsynced. Silent no-op on unknown ids.
func (s *Store) ToggleAccountStatus(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].ID != id {
			continue
		}
		a := &s.accounts[i]
		if a.Status == core.AccountPaid {
			a.Status = core.AccountPending
			a.PaidOn = ""
		} else {
			a.Status = core.AccountPaid
			a.PaidOn = core.FormatLedgerDate(s.now())
		}
		a.Synced = false
		s.flush(ctx, KeyAccounts, s.accounts)
		return
	}
}
