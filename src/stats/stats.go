// Package stats computes the dashboard snapshot from a user's expenses.
package stats

import (
	"time"

	"spendwise-server/src/models"
)

const recentLimit = 5

// BuildSnapshot aggregates expenses into the dashboard view. The input is
// expected in date-descending order, as the store returns it; grouping order
// (and therefore top-category tie-breaking) follows that order. "Current"
// month and year are taken from now.
func BuildSnapshot(expenses []models.Expense, now time.Time) models.DashboardSnapshot {
	snapshot := models.DashboardSnapshot{
		TopCategory:    "None",
		RecentExpenses: []models.Expense{},
		Categories:     []models.CategoryTotal{},
		MonthlyTrend:   []models.MonthTotal{},
	}

	categoryIndex := make(map[string]int)
	monthTotals := make(map[int]float64)

	for _, e := range expenses {
		snapshot.TotalExpenses += e.Amount

		if e.Date.Year() == now.Year() {
			monthTotals[int(e.Date.Month())] += e.Amount
			if e.Date.Month() == now.Month() {
				snapshot.MonthlyExpenses += e.Amount
			}
		}

		idx, ok := categoryIndex[e.Category]
		if !ok {
			idx = len(snapshot.Categories)
			categoryIndex[e.Category] = idx
			snapshot.Categories = append(snapshot.Categories, models.CategoryTotal{Category: e.Category})
		}
		snapshot.Categories[idx].Total += e.Amount
	}

	if len(snapshot.Categories) > 0 {
		top := snapshot.Categories[0]
		for _, c := range snapshot.Categories[1:] {
			if c.Total > top.Total {
				top = c
			}
		}
		snapshot.TopCategory = top.Category
	}

	if len(expenses) > recentLimit {
		snapshot.RecentExpenses = expenses[:recentLimit]
	} else if len(expenses) > 0 {
		snapshot.RecentExpenses = expenses
	}

	// Months without expenses are omitted; clients zero-fill before charting.
	for month := 1; month <= 12; month++ {
		if total, ok := monthTotals[month]; ok {
			snapshot.MonthlyTrend = append(snapshot.MonthlyTrend, models.MonthTotal{Month: month, Total: total})
		}
	}

	return snapshot
}
