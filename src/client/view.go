package client

import (
	"fmt"

	"spendwise-server/src/models"
	"spendwise-server/src/util"
)

// TableRow is one rendered line of the expense table.
type TableRow struct {
	ID       int64
	Name     string
	Amount   string
	Date     string
	Category string
	Editing  bool
}

// TableView is what the CLI prints for the expense list. The total covers
// only the expenses matching the current filter.
type TableView struct {
	Rows   []TableRow
	Total  string
	Filter string
}

// BuildTableView is a pure function from session state to the printed table.
func BuildTableView(s *Session) TableView {
	view := TableView{Filter: s.Filter}
	var total float64
	for _, e := range s.Expenses {
		total += e.Amount
		view.Rows = append(view.Rows, TableRow{
			ID:       e.ID,
			Name:     e.Name,
			Amount:   formatAmount(e.Amount),
			Date:     e.Date.Format(util.DateLayout),
			Category: e.Category,
			Editing:  s.EditingID != nil && *s.EditingID == e.ID,
		})
	}
	view.Total = formatAmount(total)
	return view
}

// DashboardView is the rendered dashboard. MonthlySeries has exactly twelve
// slots indexed by month-1, zero-filled for months the server omitted.
type DashboardView struct {
	Total         string
	Monthly       string
	TopCategory   string
	Categories    []models.CategoryTotal
	MonthlySeries [12]float64
	Recent        []TableRow
}

func BuildDashboardView(snapshot *models.DashboardSnapshot) DashboardView {
	view := DashboardView{
		Total:       formatAmount(snapshot.TotalExpenses),
		Monthly:     formatAmount(snapshot.MonthlyExpenses),
		TopCategory: snapshot.TopCategory,
		Categories:  snapshot.Categories,
	}

	for _, mt := range snapshot.MonthlyTrend {
		if mt.Month >= 1 && mt.Month <= 12 {
			view.MonthlySeries[mt.Month-1] = mt.Total
		}
	}

	for _, e := range snapshot.RecentExpenses {
		view.Recent = append(view.Recent, TableRow{
			ID:       e.ID,
			Name:     e.Name,
			Amount:   formatAmount(e.Amount),
			Date:     e.Date.Format(util.DateLayout),
			Category: e.Category,
		})
	}
	return view
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
