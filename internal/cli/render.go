package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/girijakangutkar/Expense-report-client/internal/controller"
	"github.com/girijakangutkar/Expense-report-client/internal/core"
)

// RenderReport writes the daily page and the monthly series of a controller
// snapshot as plain text.
func RenderReport(w io.Writer, snap controller.Snapshot) {
	fmt.Fprintf(w, "Expenses for %s\n", core.DayKey(snap.SelectedDate))
	fmt.Fprintln(w, strings.Repeat("-", 40))

	if snap.Err != nil {
		fmt.Fprintf(w, "! showing last known data: %v\n", snap.Err)
	}

	if len(snap.Daily) == 0 {
		fmt.Fprintln(w, "No expenses recorded for this date.")
	} else {
		for _, e := range snap.PageItems {
			fmt.Fprintf(w, "%-26s %10s %-4s  %s\n", e.ID, e.Amount.StringFixed(2), e.Currency, e.Comment)
		}
		if snap.TotalPages > 1 {
			fmt.Fprintf(w, "page %d/%d", snap.Page, snap.TotalPages)
			if snap.CanPrev {
				fmt.Fprintf(w, "  [prev]")
			}
			if snap.CanNext {
				fmt.Fprintf(w, "  [next]")
			}
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintf(w, "Total daily expense: %s\n\n", snap.DailyTotal.StringFixed(2))

	if len(snap.Monthly) > 0 {
		fmt.Fprintln(w, "Month by day")
		for _, dt := range snap.Monthly {
			fmt.Fprintf(w, "  %s  %10s\n", dt.Day, dt.Total.StringFixed(2))
		}
	}
	fmt.Fprintf(w, "Total monthly expense: %s\n", snap.MonthlyTotal.StringFixed(2))
}
