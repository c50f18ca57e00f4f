package models

// Group represents the active expense-sharing group.
type Group struct {
	// Name is the display name of the group (e.g., "Goa Trip", "Flat 4B").
	Name string

	// Members is the list of member names in creation order. The order
	// matters: the settlement engine uses it to break ties between equal
	// balances, keeping its output deterministic.
	Members []string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}
