package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Expense is a single remote-owned expense record. The client never
	// mutates one locally; every change goes through the API followed by a
	// full re-fetch.
	Expense struct {
		ID        string
		Amount    decimal.Decimal
		Currency  string
		Comment   string
		CreatedAt time.Time
	}

	// Draft holds the fields for a new expense. CreatedAt is chosen by the
	// caller and is immutable once the record exists.
	Draft struct {
		Amount    decimal.Decimal
		Currency  string
		Comment   string
		CreatedAt time.Time
	}

	// Patch holds the mutable fields of an existing expense.
	Patch struct {
		Amount   decimal.Decimal
		Currency string
		Comment  string
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCurrency = errors.New("empty currency")
	ErrEmptyComment  = errors.New("empty comment")
)

// ParseAmount parses a user-supplied amount string into an exact decimal.
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// rejects negative or non-numeric input.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	if v.IsNegative() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return v, nil
}

func validateFields(amount decimal.Decimal, currency, comment string) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(currency) == "" {
		return ErrEmptyCurrency
	}
	if strings.TrimSpace(comment) == "" {
		return ErrEmptyComment
	}
	return nil
}

func (d Draft) Validate() error {
	return validateFields(d.Amount, d.Currency, d.Comment)
}

func (p Patch) Validate() error {
	return validateFields(p.Amount, p.Currency, p.Comment)
}
