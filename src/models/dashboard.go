package models

// CategoryTotal is the summed spend for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// MonthTotal is the summed spend for one month (1-12) of the current year.
type MonthTotal struct {
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

// DashboardSnapshot is the derived dashboard view of one user's expenses.
// It is recomputed on every request and never persisted. MonthlyTrend only
// contains months that have at least one expense; clients zero-fill the
// remaining slots before charting.
type DashboardSnapshot struct {
	TotalExpenses   float64         `json:"totalExpenses"`
	MonthlyExpenses float64         `json:"monthlyExpenses"`
	TopCategory     string          `json:"topCategory"`
	RecentExpenses  []Expense       `json:"recentExpenses"`
	Categories      []CategoryTotal `json:"categories"`
	MonthlyTrend    []MonthTotal    `json:"monthlyTrend"`
}
