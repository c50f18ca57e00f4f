package ledger

import "billsplit/internal/models"

// stageSharesLocked computes every member's debit for the expense without
// touching balances. An error here rejects the expense whole, which is
// what makes ApplyExpense atomic.
func (l *Ledger) stageSharesLocked(in ExpenseInput) (map[string]float64, error) {
	switch in.Split {
	case models.SplitEqual:
		return l.equalSharesLocked(in.Amount), nil
	case models.SplitPercentage:
		return l.percentageSharesLocked(in.Amount, in.Shares)
	case models.SplitRatio:
		return l.ratioSharesLocked(in.Amount, in.Shares)
	case models.SplitItemized:
		return l.itemizedSharesLocked(in.Items)
	}
	return nil, invalid("unknown split type %q", in.Split)
}

// equalSharesLocked divides amount evenly across all members, payer
// included. The payer's own share nets out against the full credit.
func (l *Ledger) equalSharesLocked(amount float64) map[string]float64 {
	members := l.group.Members
	share := amount / float64(len(members))
	shares := make(map[string]float64, len(members))
	for _, m := range members {
		shares[m] = share
	}
	return shares
}

// percentageSharesLocked computes each member's share as amount*pct/100.
// Percentages are taken literally and are not required to sum to 100:
// callers that pass 30/30/30 get exactly that, and the shortfall stays
// with the payer. Deliberate leniency, not a correctness guarantee.
func (l *Ledger) percentageSharesLocked(amount float64, percents map[string]float64) (map[string]float64, error) {
	if len(percents) == 0 {
		return nil, invalid("percentage split requires per-member percentages")
	}
	shares := make(map[string]float64, len(percents))
	for member, pct := range percents {
		if _, ok := l.balances[member]; !ok {
			return nil, invalid("split references %q, not a group member", member)
		}
		shares[member] = amount * pct / 100
	}
	return shares, nil
}

// ratioSharesLocked computes each member's share as amount*weight/total.
// Scaling all weights by a constant yields identical shares.
func (l *Ledger) ratioSharesLocked(amount float64, weights map[string]float64) (map[string]float64, error) {
	if len(weights) == 0 {
		return nil, invalid("ratio split requires per-member weights")
	}
	var total float64
	for member, weight := range weights {
		if _, ok := l.balances[member]; !ok {
			return nil, invalid("split references %q, not a group member", member)
		}
		total += weight
	}
	if total <= 0 {
		return nil, invalid("ratio weights must sum to a positive value, got %v", total)
	}
	shares := make(map[string]float64, len(weights))
	for member, weight := range weights {
		shares[member] = amount * weight / total
	}
	return shares, nil
}

// itemizedSharesLocked splits each item's price evenly among that item's
// consumers only. An item with no consumers is rejected: silently dropping
// its cost would break the zero-sum balance invariant.
func (l *Ledger) itemizedSharesLocked(items []models.Item) (map[string]float64, error) {
	if len(items) == 0 {
		return nil, invalid("itemized split requires at least one item")
	}
	shares := make(map[string]float64)
	for _, item := range items {
		if len(item.Consumers) == 0 {
			return nil, invalid("item %q has no consumers", item.Description)
		}
		perConsumer := item.Price / float64(len(item.Consumers))
		for _, consumer := range item.Consumers {
			if _, ok := l.balances[consumer]; !ok {
				return nil, invalid("item %q references %q, not a group member", item.Description, consumer)
			}
			shares[consumer] += perConsumer
		}
	}
	return shares, nil
}
