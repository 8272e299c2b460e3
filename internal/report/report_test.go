package report

import (
	"math"
	"testing"

	"tally/internal/core"
)

func rec(id int64, name string, cents int64, category string) core.Record {
	amount := core.Money{Cents: cents}
	return core.Record{
		ID:       id,
		Name:     name,
		Amount:   amount,
		Category: category,
		Kind:     core.KindOf(amount),
	}
}

func TestComputeTotals(t *testing.T) {
	records := []core.Record{
		rec(2, "Rent", -120000, "Rent"),
		rec(1, "Salary", 350000, "Income"),
	}
	got := ComputeTotals(records)
	if got.Income.Cents != 350000 {
		t.Fatalf("income = %d, want 350000", got.Income.Cents)
	}
	if got.Expense.Cents != 120000 {
		t.Fatalf("expense = %d, want 120000", got.Expense.Cents)
	}
	if got.Balance.Cents != 230000 {
		t.Fatalf("balance = %d, want 230000", got.Balance.Cents)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	got := ComputeTotals(nil)
	if got.Income.Cents != 0 || got.Expense.Cents != 0 || got.Balance.Cents != 0 {
		t.Fatalf("empty store totals = %+v, want zeros", got)
	}
	if b := ComputeBreakdown(nil); len(b) != 0 {
		t.Fatalf("empty store breakdown = %v, want empty", b)
	}
}

// Totals over a store equal totals over any partition summed member-wise.
func TestComputeTotalsAdditive(t *testing.T) {
	records := []core.Record{
		rec(5, "Cinema", -1500, "Fun"),
		rec(4, "Groceries", -5000, "Food"),
		rec(3, "Bonus", 20000, "Income"),
		rec(2, "Rent", -120000, "Rent"),
		rec(1, "Salary", 350000, "Income"),
	}
	whole := ComputeTotals(records)
	for split := 0; split <= len(records); split++ {
		left := ComputeTotals(records[:split])
		right := ComputeTotals(records[split:])
		if left.Income.Cents+right.Income.Cents != whole.Income.Cents ||
			left.Expense.Cents+right.Expense.Cents != whole.Expense.Cents ||
			left.Balance.Cents+right.Balance.Cents != whole.Balance.Cents {
			t.Fatalf("split %d: partition totals do not sum to whole", split)
		}
	}
}

func TestComputeBreakdownFirstSeenOrder(t *testing.T) {
	records := []core.Record{
		rec(4, "Groceries", -15000, "Food"),
		rec(3, "Rent", -20000, "Rent"),
		rec(2, "Takeaway", -5000, "Food"),
		rec(1, "Salary", 350000, "Income"),
	}
	got := ComputeBreakdown(records)
	if len(got) != 2 {
		t.Fatalf("breakdown size = %d, want 2", len(got))
	}
	if got[0].Category != "Food" || got[0].Amount.Cents != 20000 {
		t.Fatalf("breakdown[0] = %+v, want Food/20000", got[0])
	}
	if got[1].Category != "Rent" || got[1].Amount.Cents != 20000 {
		t.Fatalf("breakdown[1] = %+v, want Rent/20000", got[1])
	}
	if math.Abs(got[0].Percentage-50) > 1e-9 || math.Abs(got[1].Percentage-50) > 1e-9 {
		t.Fatalf("percentages = %v/%v, want 50/50", got[0].Percentage, got[1].Percentage)
	}
}

func TestComputeBreakdownPercentagesSumTo100(t *testing.T) {
	records := []core.Record{
		rec(5, "Cinema", -1500, "Fun"),
		rec(4, "Groceries", -4999, "Food"),
		rec(3, "Rent", -120000, "Rent"),
		rec(2, "Takeaway", -801, "Food"),
		rec(1, "Salary", 350000, "Income"),
	}
	got := ComputeBreakdown(records)
	var sum float64
	for _, share := range got {
		sum += share.Percentage
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("percentages sum to %v, want 100", sum)
	}
}

func TestComputeBreakdownZeroExpenseTotal(t *testing.T) {
	records := []core.Record{
		rec(2, "Bonus", 20000, "Income"),
		rec(1, "Salary", 350000, "Income"),
	}
	if got := ComputeBreakdown(records); len(got) != 0 {
		t.Fatalf("income-only breakdown = %v, want empty", got)
	}
}

func TestComputeBreakdownIgnoresIncome(t *testing.T) {
	records := []core.Record{
		rec(2, "Refund", 5000, "Food"),
		rec(1, "Groceries", -5000, "Food"),
	}
	got := ComputeBreakdown(records)
	if len(got) != 1 || got[0].Amount.Cents != 5000 {
		t.Fatalf("breakdown = %+v, want only the expense half", got)
	}
}

func TestStyleFor(t *testing.T) {
	for _, known := range []string{"Food", "Rent", "Fun", "Income", "Other"} {
		if StyleFor(known) == fallbackStyle {
			t.Fatalf("%s should have its own style", known)
		}
	}
	if got := StyleFor("Cryptozoology"); got != fallbackStyle {
		t.Fatalf("unknown category style = %+v, want fallback", got)
	}
	if fallbackStyle.Color == "" || fallbackStyle.Icon == "" {
		t.Fatalf("fallback style must be fully defined")
	}
}
