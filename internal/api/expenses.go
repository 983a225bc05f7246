package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/girijakangutkar/Expense-report-client/internal/core"
)

const expensesPath = "/api/expenses"

// expenseDTO is the wire shape of one expense record. The identifier arrives
// as either "_id" or "id" depending on the backing store.
type expenseDTO struct {
	MongoID   string      `json:"_id,omitempty"`
	ID        string      `json:"id,omitempty"`
	Amount    json.Number `json:"amount"`
	Currency  string      `json:"currency"`
	Comment   string      `json:"comment"`
	CreatedAt string      `json:"created_at"`
}

// Timestamps arrive in a few shapes: full RFC 3339, a naive date-time, or a
// bare date for records created through the form.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func (d expenseDTO) toExpense() (core.Expense, error) {
	id := d.MongoID
	if id == "" {
		id = d.ID
	}

	amount := decimal.Zero
	if d.Amount != "" {
		var err error
		amount, err = decimal.NewFromString(d.Amount.String())
		if err != nil {
			return core.Expense{}, fmt.Errorf("parsing amount %q: %w", d.Amount, err)
		}
	}

	createdAt, err := parseTimestamp(d.CreatedAt)
	if err != nil {
		return core.Expense{}, err
	}

	return core.Expense{
		ID:        id,
		Amount:    amount,
		Currency:  d.Currency,
		Comment:   d.Comment,
		CreatedAt: createdAt,
	}, nil
}

type createRequest struct {
	Amount    json.Number `json:"amount"`
	Currency  string      `json:"currency"`
	Comment   string      `json:"comment"`
	CreatedAt string      `json:"created_at"`
}

type updateRequest struct {
	Amount   json.Number `json:"amount"`
	Currency string      `json:"currency"`
	Comment  string      `json:"comment"`
}

// List fetches the full expense collection for the authenticated identity.
func (c *Client) List(ctx context.Context) ([]core.Expense, error) {
	var dtos []expenseDTO
	if err := c.doJSON(ctx, http.MethodGet, expensesPath, nil, &dtos, true); err != nil {
		return nil, err
	}

	expenses := make([]core.Expense, 0, len(dtos))
	for _, dto := range dtos {
		e, err := dto.toExpense()
		if err != nil {
			return nil, fmt.Errorf("decoding expense list: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// Create submits a new expense with the draft's creation date. The date is
// sent as its day key; the server owns the full timestamp from then on.
func (c *Client) Create(ctx context.Context, draft core.Draft) error {
	if err := draft.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	body := createRequest{
		Amount:    json.Number(draft.Amount.String()),
		Currency:  draft.Currency,
		Comment:   draft.Comment,
		CreatedAt: core.DayKey(draft.CreatedAt),
	}
	return c.doJSON(ctx, http.MethodPost, expensesPath, body, nil, true)
}

// Update replaces the mutable fields of an existing expense. The creation
// date is immutable and never part of the payload.
func (c *Client) Update(ctx context.Context, id string, patch core.Patch) error {
	if err := patch.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	body := updateRequest{
		Amount:   json.Number(patch.Amount.String()),
		Currency: patch.Currency,
		Comment:  patch.Comment,
	}
	return c.doJSON(ctx, http.MethodPut, expensesPath+"/"+url.PathEscape(id), body, nil, true)
}

// Delete removes an expense by identifier.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, expensesPath+"/"+url.PathEscape(id), nil, nil, true)
}
