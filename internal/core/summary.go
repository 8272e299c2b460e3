package core

// Totals holds the aggregate view over the full ledger. Expense is the
// absolute sum of expense amounts, so Balance = Income - Expense.
type Totals struct {
	Income  Money
	Expense Money
	Balance Money
}

// CategoryShare is one entry of the per-category expense breakdown.
// Percentage is the category's share of the total expense amount, in
// the range [0, 100].
type CategoryShare struct {
	Category   string
	Amount     Money
	Percentage float64
}
