package models

// Transaction is one payer-to-payee transfer in a settlement plan. It is a
// computed output of the settlement engine: never persisted, regenerated
// from the current balances on every request.
type Transaction struct {
	// From is the member who pays (debtor settling up).
	From string

	// To is the member who receives (creditor being paid).
	To string

	// Amount is the transfer amount, positive and rounded to two decimals.
	Amount float64
}
