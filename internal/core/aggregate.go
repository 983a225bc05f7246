package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// DayTotal is one entry of the monthly series: a two-digit day-of-month
	// key and the summed amount for that day.
	DayTotal struct {
		Day   string
		Total decimal.Decimal
	}

	// Report holds every view derived from one expense collection and one
	// selected date. It is recomputed on each fetch, never stored.
	Report struct {
		Daily        []Expense
		DailyTotal   decimal.Decimal
		Monthly      []DayTotal
		MonthlyTotal decimal.Decimal
	}
)

// Aggregate derives the daily and monthly views for selected from a flat
// expense collection. The daily subset keeps the input order; the monthly
// series is sorted ascending by numeric day. Pure and deterministic.
func Aggregate(expenses []Expense, selected time.Time) Report {
	rep := Report{
		DailyTotal:   decimal.Zero,
		MonthlyTotal: decimal.Zero,
	}

	key := DayKey(selected)
	start := MonthStart(selected)
	end := MonthEnd(selected)
	byDay := make(map[int]decimal.Decimal)

	for _, e := range expenses {
		if DayKey(e.CreatedAt) == key {
			rep.Daily = append(rep.Daily, e)
			rep.DailyTotal = rep.DailyTotal.Add(e.Amount)
		}

		ts := e.CreatedAt.UTC()
		if ts.Before(start) || ts.After(end) {
			continue
		}
		day := ts.Day()
		byDay[day] = byDay[day].Add(e.Amount)
		rep.MonthlyTotal = rep.MonthlyTotal.Add(e.Amount)
	}

	// Numeric sort, so day 2 comes before day 10.
	days := make([]int, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Ints(days)
	for _, d := range days {
		rep.Monthly = append(rep.Monthly, DayTotal{
			Day:   fmt.Sprintf("%02d", d),
			Total: byDay[d],
		})
	}

	return rep
}
