package models

import "time"

// Expense is a single spending record owned by exactly one user.
type Expense struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpenseRequest is the create/update payload. Date is a calendar day in
// YYYY-MM-DD form. Updates replace all four fields.
type ExpenseRequest struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
}
