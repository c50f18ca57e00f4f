// Package ledger owns the active group's net balances and its append-only
// expense log.
//
// The ledger is an explicit object rather than process-global state, so
// independent ledgers (and tests) don't interfere. One lock serializes all
// mutations and snapshot reads; there is no finer-grained concurrency.
package ledger

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"billsplit/internal/models"
)

// Ledger tracks one group's membership, per-member net balances, and the
// log of applied expenses. Positive balance = is owed money; negative =
// owes money. At any consistent snapshot the balances sum to zero, up to
// per-member rounding noise.
type Ledger struct {
	mu       sync.RWMutex
	group    *models.Group
	balances map[string]float64
	expenses []models.Expense
}

// New returns an empty ledger with no active group.
func New() *Ledger {
	return &Ledger{}
}

// ExpenseInput carries everything needed to apply one expense. Shares
// holds percentages or ratio weights depending on the split type; Items is
// only consulted for itemized splits.
type ExpenseInput struct {
	Title    string
	Amount   float64
	Payer    string
	Category string
	Split    models.SplitType
	Shares   map[string]float64
	Items    []models.Item
}

// CreateGroup replaces any existing group with a fresh one: every member's
// balance starts at zero and the expense log is empty. The previous
// group's data is discarded irrevocably. Duplicate member names collapse
// to a single entry.
func (l *Ledger) CreateGroup(name string, members []string) *models.Group {
	l.mu.Lock()
	defer l.mu.Unlock()

	group := &models.Group{Name: name, CreatedAt: time.Now().Unix()}
	balances := make(map[string]float64, len(members))
	for _, m := range members {
		if _, seen := balances[m]; seen {
			continue
		}
		balances[m] = 0
		group.Members = append(group.Members, m)
	}

	l.group = group
	l.balances = balances
	l.expenses = nil

	slog.Info("Group created", "name", name, "members_count", len(group.Members))
	return copyGroup(group)
}

// ApplyExpense validates the input, stages every member's share, and only
// then commits: the payer is credited the full amount and each share is
// debited. A rejected expense leaves every balance untouched.
//
// Returns the updated balances snapshot.
func (l *Ledger) ApplyExpense(in ExpenseInput) (map[string]float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.group == nil {
		return nil, ErrNoGroup
	}
	if err := l.validateLocked(in); err != nil {
		return nil, err
	}
	shares, err := l.stageSharesLocked(in)
	if err != nil {
		return nil, err
	}

	l.balances[in.Payer] += in.Amount
	for member, share := range shares {
		l.balances[member] -= share
	}

	category := in.Category
	if category == "" {
		category = "General"
	}
	expense := models.Expense{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Amount:    in.Amount,
		Payer:     in.Payer,
		Category:  category,
		Split:     in.Split,
		CreatedAt: time.Now().Unix(),
	}
	l.expenses = append(l.expenses, expense)

	slog.Info("Expense applied",
		"expense_id", expense.ID,
		"title", expense.Title,
		"amount", expense.Amount,
		"payer", expense.Payer,
		"split_type", expense.Split,
	)
	return l.balancesLocked(), nil
}

// validateLocked checks the expense fields that don't depend on the split
// parameters. Every problem is reported, not just the first.
func (l *Ledger) validateLocked(in ExpenseInput) error {
	var errs error
	if in.Title == "" {
		errs = multierr.Append(errs, errors.New("title is required"))
	}
	if in.Amount <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("amount must be positive, got %v", in.Amount))
	}
	if _, ok := l.balances[in.Payer]; !ok {
		errs = multierr.Append(errs, fmt.Errorf("payer %q not in group", in.Payer))
	}
	if !in.Split.Valid() {
		errs = multierr.Append(errs, fmt.Errorf("unknown split type %q", in.Split))
	}
	if errs != nil {
		return &ValidationError{Reason: errs}
	}
	return nil
}

// Group returns a copy of the active group, or nil if none exists.
func (l *Ledger) Group() *models.Group {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyGroup(l.group)
}

// Members returns the member names in creation order. Empty if no group
// exists.
func (l *Ledger) Members() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.group == nil {
		return nil
	}
	return append([]string(nil), l.group.Members...)
}

// Balances returns a snapshot of every member's net balance. Empty if no
// group exists.
func (l *Ledger) Balances() map[string]float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balancesLocked()
}

// Expenses returns the applied expenses in insertion order.
func (l *Ledger) Expenses() []models.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Expense(nil), l.expenses...)
}

func (l *Ledger) balancesLocked() map[string]float64 {
	out := make(map[string]float64, len(l.balances))
	for member, balance := range l.balances {
		out[member] = balance
	}
	return out
}

func copyGroup(g *models.Group) *models.Group {
	if g == nil {
		return nil
	}
	return &models.Group{
		Name:      g.Name,
		Members:   append([]string(nil), g.Members...),
		CreatedAt: g.CreatedAt,
	}
}
