// Package settle converts net balances into a short list of payer-to-payee
// transfers using greedy largest-debtor/largest-creditor matching.
package settle

import (
	"math"
	"sort"

	"billsplit/internal/models"
)

// tolerance is the band around zero inside which a balance counts as
// settled, so floating-point noise never triggers spurious tiny transfers.
const tolerance = 0.01

type party struct {
	name    string
	balance float64
	rank    int
}

// Minimize computes a payment plan that brings all balances to zero. The
// matching is greedy: the largest remaining debt is always discharged
// against the largest remaining claim. The plan has at most
// debtors+creditors-1 transactions; it is not guaranteed to be the
// theoretical minimum, which is a harder combinatorial problem.
//
// order fixes the tie-break between equal balances: members earlier in the
// slice settle first, so the output is deterministic across runs. Members
// missing from order sort after everyone else.
//
// Amounts are rounded to two decimals. An empty or missing balance map
// yields an empty plan.
func Minimize(balances map[string]float64, order []string) []models.Transaction {
	position := make(map[string]int, len(order))
	for i, name := range order {
		position[name] = i
	}
	rank := func(name string) int {
		if i, ok := position[name]; ok {
			return i
		}
		return len(order)
	}

	var debtors, creditors []party
	for name, amount := range balances {
		amount = round2(amount)
		switch {
		case amount < -tolerance:
			debtors = append(debtors, party{name: name, balance: amount, rank: rank(name)})
		case amount > tolerance:
			creditors = append(creditors, party{name: name, balance: amount, rank: rank(name)})
		}
	}

	// Most negative debtor first, largest creditor first.
	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].balance != debtors[j].balance {
			return debtors[i].balance < debtors[j].balance
		}
		return debtors[i].rank < debtors[j].rank
	})
	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].balance != creditors[j].balance {
			return creditors[i].balance > creditors[j].balance
		}
		return creditors[i].rank < creditors[j].rank
	})

	var plan []models.Transaction
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := round2(math.Min(-debtors[i].balance, creditors[j].balance))
		if amount > 0 {
			plan = append(plan, models.Transaction{
				From:   debtors[i].name,
				To:     creditors[j].name,
				Amount: amount,
			})
		}

		debtors[i].balance += amount
		creditors[j].balance -= amount

		// Both cursors can advance in the same step when the amounts
		// match exactly.
		if math.Abs(debtors[i].balance) < tolerance {
			i++
		}
		if creditors[j].balance < tolerance {
			j++
		}
	}

	return plan
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
