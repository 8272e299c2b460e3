// Package report computes aggregate views over the full ledger: the
// income/expense/balance totals and the per-category expense breakdown.
// Both are pure functions recomputed from scratch after every mutation;
// nothing here retains state between calls.
package report

import "tally/internal/core"

// ComputeTotals sums income amounts and absolute expense amounts over
// all records. Empty input yields all-zero totals.
func ComputeTotals(records []core.Record) core.Totals {
	var t core.Totals
	for _, r := range records {
		switch r.Kind {
		case core.Income:
			t.Income.Cents += r.Amount.Cents
		case core.Expense:
			t.Expense.Cents += r.Amount.Abs().Cents
		}
	}
	t.Balance.Cents = t.Income.Cents - t.Expense.Cents
	return t
}

// ComputeBreakdown groups expense records by category, summing absolute
// amounts per group. Groups appear in first-seen order scanning the
// records front to back; that order is part of the rendered output and
// must stay stable. When the total expense amount is zero every
// percentage is zero.
func ComputeBreakdown(records []core.Record) []core.CategoryShare {
	var (
		order []string
		sums  = make(map[string]int64)
		total int64
	)
	for _, r := range records {
		if r.Kind != core.Expense {
			continue
		}
		if _, seen := sums[r.Category]; !seen {
			order = append(order, r.Category)
		}
		abs := r.Amount.Abs().Cents
		sums[r.Category] += abs
		total += abs
	}

	out := make([]core.CategoryShare, 0, len(order))
	for _, cat := range order {
		share := core.CategoryShare{
			Category: cat,
			Amount:   core.Money{Cents: sums[cat]},
		}
		if total > 0 {
			share.Percentage = float64(sums[cat]) / float64(total) * 100
		}
		out = append(out, share)
	}
	return out
}
