// Package view builds the presentation boundary's view-model: a pure
// translation of (filtered records, totals, breakdown) into renderable
// data. Rendering targets consume this model; they never reach into the
// ledger. Currency formatting happens here and only here — the engines
// below work on unrounded cents.
package view

import (
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tally/internal/core"
	"tally/internal/report"
)

// Fixed locale and currency, matching the reference behavior.
var printer = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders cents as a locale-aware currency string with two
// fraction digits.
func FormatAmount(m core.Money) string {
	return printer.Sprint(currency.Symbol(currency.USD.Amount(m.Units())))
}

type Transaction struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Kind     string    `json:"kind"`
	Amount   float64   `json:"amount"`
	Display  string    `json:"display"`
	Date     time.Time `json:"date"`
	Color    string    `json:"color"`
	Icon     string    `json:"icon"`
}

type Totals struct {
	Income         float64 `json:"income"`
	Expense        float64 `json:"expense"`
	Balance        float64 `json:"balance"`
	IncomeDisplay  string  `json:"income_display"`
	ExpenseDisplay string  `json:"expense_display"`
	BalanceDisplay string  `json:"balance_display"`
}

type Share struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Display    string  `json:"display"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
}

// Summary is the balance-and-breakdown half of the model.
type Summary struct {
	Totals    Totals  `json:"totals"`
	Breakdown []Share `json:"breakdown"`
}

// Model is everything a renderer needs for one frame.
type Model struct {
	Transactions []Transaction `json:"transactions"`
	Summary      Summary       `json:"summary"`
}

// Transactions maps filtered records into their renderable form,
// preserving order.
func Transactions(records []core.Record) []Transaction {
	out := make([]Transaction, len(records))
	for i, r := range records {
		style := report.StyleFor(r.Category)
		out[i] = Transaction{
			ID:       r.ID,
			Name:     r.Name,
			Category: r.Category,
			Kind:     string(r.Kind),
			Amount:   r.Amount.Units(),
			Display:  FormatAmount(r.Amount),
			Date:     r.Date,
			Color:    style.Color,
			Icon:     style.Icon,
		}
	}
	return out
}

// BuildSummary maps the aggregation results into their renderable form.
func BuildSummary(totals core.Totals, breakdown []core.CategoryShare) Summary {
	shares := make([]Share, len(breakdown))
	for i, b := range breakdown {
		style := report.StyleFor(b.Category)
		shares[i] = Share{
			Category:   b.Category,
			Amount:     b.Amount.Units(),
			Display:    FormatAmount(b.Amount),
			Percentage: b.Percentage,
			Color:      style.Color,
			Icon:       style.Icon,
		}
	}
	return Summary{
		Totals: Totals{
			Income:         totals.Income.Units(),
			Expense:        totals.Expense.Units(),
			Balance:        totals.Balance.Units(),
			IncomeDisplay:  FormatAmount(totals.Income),
			ExpenseDisplay: FormatAmount(totals.Expense),
			BalanceDisplay: FormatAmount(totals.Balance),
		},
		Breakdown: shares,
	}
}

// Build assembles the full model from the filtered view and the
// aggregates computed over the full store.
func Build(filtered []core.Record, totals core.Totals, breakdown []core.CategoryShare) Model {
	return Model{
		Transactions: Transactions(filtered),
		Summary:      BuildSummary(totals, breakdown),
	}
}
