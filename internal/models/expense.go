package models

// SplitType selects how an expense's cost is divided among members.
type SplitType string

const (
	// SplitEqual divides the amount evenly across all current members,
	// payer included.
	SplitEqual SplitType = "equal"

	// SplitPercentage divides the amount by caller-supplied percentages.
	SplitPercentage SplitType = "percentage"

	// SplitRatio divides the amount proportionally to caller-supplied
	// weights.
	SplitRatio SplitType = "ratio"

	// SplitItemized divides each line item's price evenly among that
	// item's consumers only.
	SplitItemized SplitType = "itemized"
)

// Valid reports whether t is one of the recognized split types.
func (t SplitType) Valid() bool {
	switch t {
	case SplitEqual, SplitPercentage, SplitRatio, SplitItemized:
		return true
	}
	return false
}

// Expense is one recorded group expense. Expenses are immutable once
// recorded and are retained in insertion order for the lifetime of the
// group.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Title is the human-readable description of the expense.
	Title string

	// Amount is the full expense amount paid by the payer.
	Amount float64

	// Payer is the member who paid the full amount.
	Payer string

	// Category tags the expense for reporting ("General" if unset).
	Category string

	// Split is the rule that divided the amount among members.
	Split SplitType

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// Item represents a single line item on an itemized expense. Its price is
// split evenly among its consumers; members not listed owe nothing for it.
type Item struct {
	Description string
	Price       float64
	Consumers   []string
}
