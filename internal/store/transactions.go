package store

import (
	"context"
	"fmt"

	"pentefino/internal/core"
)

// TransactionPatch is a partial update; nil fields are left untouched.
// Type cannot be patched: changing income to expense means recreating the
// record with the matching detail struct.
type TransactionPatch struct {
	Description *string
	Category    *string
	Date        *string
	Amount      *float64
	Income      *core.IncomeDetails
	Expense     *core.ExpenseDetails
}

// AddTransaction validates the transaction, assigns it a fresh id, marks
// it unsynced and prepends it to the collection (display convention is
// newest first).
func (s *Store) AddTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = s.nextID()
	tx.Synced = false
	s.transactions = append([]core.Transaction{tx}, s.transactions...)
	s.flush(ctx, KeyTransactions, s.transactions)
	return tx, nil
}

// UpdateTransaction merges the patch into the matching record and marks it
// unsynced. Unknown ids are a silent no-op; the UI layer owns any
// user-visible messaging.
func (s *Store) UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}
		tx := &s.transactions[i]
		if patch.Description != nil {
			tx.Description = *patch.Description
		}
		if patch.Category != nil {
			tx.Category = *patch.Category
		}
		if patch.Date != nil {
			tx.Date = *patch.Date
		}
		if patch.Amount != nil {
			tx.Amount = *patch.Amount
		}
		if patch.Income != nil && tx.Type == core.Income {
			tx.Income = patch.Income
		}
		if patch.Expense != nil && tx.Type == core.Expense {
			tx.Expense = patch.Expense
		}
		tx.Synced = false
		s.flush(ctx, KeyTransactions, s.transactions)
		return
	}
}

// RemoveTransaction deletes the matching record. Removal is immediate and
// permanent; unknown ids are a silent no-op.
func (s *Store) RemoveTransaction(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.flush(ctx, KeyTransactions, s.transactions)
			return
		}
	}
}
