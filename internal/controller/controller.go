// Package controller owns the mutable view state of the expense client: the
// selected date, the current page and the in-flight edit. It orchestrates the
// remote store, the aggregator and the paginator, and defines the refresh
// protocol after every mutation: full re-fetch, never a local patch.
package controller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/girijakangutkar/Expense-report-client/internal/core"
	applog "github.com/girijakangutkar/Expense-report-client/internal/log"
	"github.com/girijakangutkar/Expense-report-client/internal/paginate"
)

// Phase is the controller's view lifecycle state.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseFetching Phase = "fetching"
	PhaseReady    Phase = "ready"
	PhaseError    Phase = "error"
)

// Store is the remote CRUD boundary the controller drives.
type Store interface {
	List(ctx context.Context) ([]core.Expense, error)
	Create(ctx context.Context, draft core.Draft) error
	Update(ctx context.Context, id string, patch core.Patch) error
	Delete(ctx context.Context, id string) error
}

// Form carries the raw submission fields; the amount stays a string until
// validation so a non-numeric entry fails before any network call.
type Form struct {
	Amount   string
	Currency string
	Comment  string
	Date     time.Time
}

// Snapshot is the derived view handed to the rendering boundary.
type Snapshot struct {
	SelectedDate time.Time
	Daily        []core.Expense
	DailyTotal   decimal.Decimal
	Monthly      []core.DayTotal
	MonthlyTotal decimal.Decimal
	PageItems    []core.Expense
	TotalPages   int
	Page         int
	CanPrev      bool
	CanNext      bool
	EditingID    string
	Phase        Phase
	Err          error
}

// Controller is the sole owner of selectedDate, currentPage and editingID.
// All exported methods are safe for concurrent use.
type Controller struct {
	store    Store
	pageSize int

	mu        sync.Mutex
	phase     Phase
	selected  time.Time
	page      int
	editingID string
	report    core.Report
	window    paginate.Page[core.Expense]
	lastErr   error

	// fetchSeq orders competing fetches: only the result belonging to the
	// most recently issued fetch may install views.
	fetchSeq uint64
	flight   singleflight.Group
}

// New creates a Controller over store. The selected date starts at today
// (UTC) and the page at 1; nothing is fetched until the first Refresh.
func New(store Store, pageSize int) *Controller {
	return &Controller{
		store:    store,
		pageSize: pageSize,
		phase:    PhaseIdle,
		selected: time.Now().UTC().Truncate(24 * time.Hour),
		page:     1,
	}
}

// Refresh re-fetches the collection and rebuilds every derived view. On
// failure the previous views are preserved and only the error indicator is
// set. A refresh that has been superseded by a newer one discards its result.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.phase = PhaseFetching
	c.fetchSeq++
	seq := c.fetchSeq
	c.mu.Unlock()

	// Concurrent refreshes collapse into one list() call.
	v, err, _ := c.flight.Do("list", func() (any, error) {
		return c.store.List(ctx)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.fetchSeq {
		// A newer fetch owns the state now; last issued wins.
		return nil
	}
	if err != nil {
		c.phase = PhaseError
		c.lastErr = err
		slog.ErrorContext(ctx, "Fetch failed, keeping previous views",
			applog.FieldComponent, applog.ComponentController,
			applog.FieldOperation, applog.OpRefresh,
			applog.FieldError, err.Error())
		return err
	}

	c.installLocked(v.([]core.Expense))
	return nil
}

// installLocked aggregates against the current selected date and rebuilds
// the page window, clamping the page when the daily subset shrank under it.
func (c *Controller) installLocked(expenses []core.Expense) {
	c.report = core.Aggregate(expenses, c.selected)
	c.page = paginate.Clamp(c.page, paginate.TotalPages(len(c.report.Daily), c.pageSize))
	c.window = paginate.Paginate(c.report.Daily, c.pageSize, c.page)
	c.phase = PhaseReady
	c.lastErr = nil

	slog.DebugContext(context.Background(), "Views refreshed",
		applog.FieldComponent, applog.ComponentController,
		applog.FieldSelectedDate, core.DayKey(c.selected),
		applog.FieldPage, c.page,
		applog.FieldCount, len(c.report.Daily))
}

// SetDate switches the selected day, resets the page to 1 (page position is
// meaningless across daily subsets) and refreshes.
func (c *Controller) SetDate(ctx context.Context, d time.Time) error {
	c.mu.Lock()
	c.selected = d.UTC()
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Reset clears transient view state after an identity change and refreshes.
func (c *Controller) Reset(ctx context.Context) error {
	c.mu.Lock()
	c.page = 1
	c.editingID = ""
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetPage jumps to a page, clamped into the valid range.
func (c *Controller) SetPage(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = paginate.Clamp(n, c.window.TotalPages)
	c.window = paginate.Paginate(c.report.Daily, c.pageSize, c.page)
}

// NextPage advances one page; a no-op on the last page.
func (c *Controller) NextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.window.CanNext {
		return
	}
	c.page++
	c.window = paginate.Paginate(c.report.Daily, c.pageSize, c.page)
}

// PrevPage goes back one page; a no-op on page 1.
func (c *Controller) PrevPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.window.CanPrev {
		return
	}
	c.page--
	c.window = paginate.Paginate(c.report.Daily, c.pageSize, c.page)
}

// StartEdit selects an existing record: the next Submit issues an update.
func (c *Controller) StartEdit(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editingID = id
}

// CancelEdit leaves edit mode without submitting.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editingID = ""
}

// EditingID returns the record currently selected for edit, or "".
func (c *Controller) EditingID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editingID
}

// Submit issues an update when a record is selected for edit, otherwise a
// create dated with the form date (selected date when unset). On success the
// edit mode is cleared and the views refreshed from the remote store.
func (c *Controller) Submit(ctx context.Context, form Form) error {
	amount, err := core.ParseAmount(form.Amount)
	if err != nil {
		return err
	}

	c.mu.Lock()
	editing := c.editingID
	selected := c.selected
	c.mu.Unlock()

	if editing != "" {
		patch := core.Patch{Amount: amount, Currency: form.Currency, Comment: form.Comment}
		err = c.store.Update(ctx, editing, patch)
	} else {
		date := form.Date
		if date.IsZero() {
			date = selected
		}
		draft := core.Draft{Amount: amount, Currency: form.Currency, Comment: form.Comment, CreatedAt: date}
		err = c.store.Create(ctx, draft)
	}
	if err != nil {
		c.recordError(ctx, err)
		return err
	}

	c.mu.Lock()
	c.editingID = ""
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Delete removes a record and refreshes. A failed delete leaves the views
// untouched apart from the error indicator.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, id); err != nil {
		c.recordError(ctx, err)
		return err
	}
	slog.InfoContext(ctx, "Expense deleted",
		applog.FieldComponent, applog.ComponentController,
		applog.FieldOperation, applog.OpDelete,
		applog.FieldExpenseID, id)
	return c.Refresh(ctx)
}

func (c *Controller) recordError(ctx context.Context, err error) {
	c.mu.Lock()
	c.phase = PhaseError
	c.lastErr = err
	c.mu.Unlock()
	slog.ErrorContext(ctx, "Mutation failed",
		applog.FieldComponent, applog.ComponentController,
		applog.FieldError, err.Error())
}

// Snapshot returns the current derived view for rendering.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		SelectedDate: c.selected,
		Daily:        c.report.Daily,
		DailyTotal:   c.report.DailyTotal,
		Monthly:      c.report.Monthly,
		MonthlyTotal: c.report.MonthlyTotal,
		PageItems:    c.window.Items,
		TotalPages:   c.window.TotalPages,
		Page:         c.page,
		CanPrev:      c.window.CanPrev,
		CanNext:      c.window.CanNext,
		EditingID:    c.editingID,
		Phase:        c.phase,
		Err:          c.lastErr,
	}
}
