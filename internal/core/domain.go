package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

type (
	// Kind classifies a record by the sign of its amount.
	Kind string

	Money struct {
		Cents int64
	}

	// Record is a single ledger entry. Records are append-only: once
	// created they are never edited, only removed via a full clear.
	Record struct {
		ID       int64
		Name     string
		Amount   Money
		Category string
		Date     time.Time
		Kind     Kind
	}
)

var (
	ErrEmptyName     = errors.New("empty name")
	ErrNameTooLong   = errors.New("name too long (max 200 characters)")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
)

// KindOf derives the record kind from the amount's sign. Zero counts as
// income, but a zero amount never survives validation, so in practice
// income means strictly positive.
func KindOf(m Money) Kind {
	if m.Cents >= 0 {
		return Income
	}
	return Expense
}

func (m Money) Validate() error {
	if m.Cents == 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Abs returns the magnitude of the amount.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

// Units returns the amount in currency units for display purposes.
// Use cents for calculations to avoid floating-point precision issues.
func (m Money) Units() float64 {
	return float64(m.Cents) / 100.0
}

func (r Record) Validate() error {
	if len(strings.TrimSpace(r.Name)) == 0 {
		return ErrEmptyName
	}
	if len(r.Name) > 200 {
		return ErrNameTooLong
	}
	if err := r.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// IsValidation reports whether err is one of the record validation
// errors, as opposed to an infrastructure failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrNameTooLong) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrEmptyCategory)
}
