package core

import (
	"errors"
	"strings"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"

	RevenueServices RevenueType = "services"
	RevenueProducts RevenueType = "products"
	RevenueCourses  RevenueType = "courses"
	RevenueOther    RevenueType = "other"

	ExpenseProfessional ExpenseType = "professional"
	ExpensePersonal     ExpenseType = "personal"

	AccountPending AccountStatus = "pending"
	AccountPaid    AccountStatus = "paid"

	AccountFixed    AccountKind = "fixed"
	AccountVariable AccountKind = "variable"

	RecurrenceSingle    RecurrenceMode = "single"
	RecurrenceRecurring RecurrenceMode = "recurring"

	ClosingOpen   ClosingStatus = "open"
	ClosingClosed ClosingStatus = "closed"
)

type (
	TransactionType string
	RevenueType     string
	ExpenseType     string
	AccountStatus   string
	AccountKind     string
	RecurrenceMode  string
	ClosingStatus   string

	// IncomeDetails carries the fields that only make sense on an income
	// transaction.
	IncomeDetails struct {
		RevenueType      RevenueType `json:"revenueType"`
		ResponsibleParty string      `json:"responsibleParty,omitempty"`
	}

	// ExpenseDetails carries the fields that only make sense on an expense
	// transaction.
	ExpenseDetails struct {
		ExpenseType ExpenseType `json:"expenseType"`
	}

	// Transaction is one financial movement. Amount is non-negative by
	// convention; sign is carried by Type. Exactly one of Income/Expense is
	// set, matching Type.
	Transaction struct {
		ID          string          `json:"id"`
		Description string          `json:"description"`
		Category    string          `json:"category"`
		Date        string          `json:"date"` // DD/MM/YYYY
		Amount      float64         `json:"amount"`
		Type        TransactionType `json:"type"`
		Income      *IncomeDetails  `json:"income,omitempty"`
		Expense     *ExpenseDetails `json:"expense,omitempty"`
		Synced      bool            `json:"synced"`
	}

	// Account is one payable obligation, fixed or variable.
	Account struct {
		ID             string         `json:"id"`
		Name           string         `json:"name"`
		Category       string         `json:"category"`
		Amount         float64        `json:"amount"`
		DueDay         int            `json:"dueDay"` // 1-31
		Status         AccountStatus  `json:"status"`
		Kind           AccountKind    `json:"kind"`
		Recurrence     RecurrenceMode `json:"recurrence,omitempty"` // variable only
		ReferenceMonth string         `json:"referenceMonth"`       // M/YYYY
		PaidOn         string         `json:"paidOn,omitempty"`     // set while paid
		Synced         bool           `json:"synced"`
	}

	// Closing is a daily cash-reconciliation record.
	Closing struct {
		ID          string        `json:"id"`
		Date        string        `json:"date"` // DD/MM/YYYY
		TotalAmount float64       `json:"totalAmount"`
		Status      ClosingStatus `json:"status"`
		Notes       string        `json:"notes,omitempty"`
		UserID      string        `json:"userId,omitempty"`
		Synced      bool          `json:"synced"`
	}

	// Settings is the persisted configuration blob.
	Settings struct {
		CommissionRate int `json:"commissionRate"` // integer percent, 0-100
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDueDay    = errors.New("invalid due day")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyName        = errors.New("empty name")
	ErrTypeMismatch     = errors.New("transaction details do not match type")
)

// DefaultSettings is used when no settings blob has been persisted yet.
func DefaultSettings() Settings {
	return Settings{CommissionRate: 50}
}

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (r RevenueType) Valid() bool {
	switch r {
	case RevenueServices, RevenueProducts, RevenueCourses, RevenueOther:
		return true
	}
	return false
}

func (e ExpenseType) Valid() bool {
	return e == ExpenseProfessional || e == ExpensePersonal
}

func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if t.Amount < 0 {
		return ErrInvalidAmount
	}
	if _, err := ParseLedgerDate(t.Date); err != nil {
		return ErrInvalidDate
	}
	switch t.Type {
	case Income:
		if t.Income == nil || t.Expense != nil || !t.Income.RevenueType.Valid() {
			return ErrTypeMismatch
		}
	case Expense:
		if t.Expense == nil || t.Income != nil || !t.Expense.ExpenseType.Valid() {
			return ErrTypeMismatch
		}
	default:
		return ErrTypeMismatch
	}
	return nil
}

func (a Account) Validate() error {
	if len(strings.TrimSpace(a.Name)) == 0 {
		return ErrEmptyName
	}
	if a.Amount < 0 {
		return ErrInvalidAmount
	}
	if a.DueDay < 1 || a.DueDay > 31 {
		return ErrInvalidDueDay
	}
	if _, _, err := ParseReferenceMonth(a.ReferenceMonth); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func (c Closing) Validate() error {
	if _, err := ParseLedgerDate(c.Date); err != nil {
		return ErrInvalidDate
	}
	if c.TotalAmount < 0 {
		return ErrInvalidAmount
	}
	return nil
}
