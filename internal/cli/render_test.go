package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/girijakangutkar/Expense-report-client/internal/controller"
	"github.com/girijakangutkar/Expense-report-client/internal/core"
)

func TestRenderReport(t *testing.T) {
	e := core.Expense{
		ID:        "a1",
		Amount:    decimal.RequireFromString("12.5"),
		Currency:  "EUR",
		Comment:   "lunch",
		CreatedAt: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}
	snap := controller.Snapshot{
		SelectedDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Daily:        []core.Expense{e},
		DailyTotal:   e.Amount,
		Monthly:      []core.DayTotal{{Day: "05", Total: e.Amount}},
		MonthlyTotal: e.Amount,
		PageItems:    []core.Expense{e},
		TotalPages:   1,
		Page:         1,
		Phase:        controller.PhaseReady,
	}

	var sb strings.Builder
	RenderReport(&sb, snap)
	out := sb.String()

	for _, want := range []string{"2024-03-05", "lunch", "12.50", "Total daily expense: 12.50", "Total monthly expense: 12.50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReportEmpty(t *testing.T) {
	snap := controller.Snapshot{
		SelectedDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		DailyTotal:   decimal.Zero,
		MonthlyTotal: decimal.Zero,
		Phase:        controller.PhaseReady,
	}
	var sb strings.Builder
	RenderReport(&sb, snap)
	if !strings.Contains(sb.String(), "No expenses recorded") {
		t.Fatalf("empty day not reported:\n%s", sb.String())
	}
}
