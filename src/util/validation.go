package util

import (
	"strings"
	"time"
)

// DateLayout is the wire format for expense dates.
const DateLayout = "2006-01-02"

func ValidateUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 30
}

func ValidatePassword(password string) bool {
	return len(password) >= 8
}

// ValidateExpense checks the create/update payload fields: non-empty name
// and category, positive amount.
func ValidateExpense(name string, amount float64, category string) bool {
	return strings.TrimSpace(name) != "" && amount > 0 && strings.TrimSpace(category) != ""
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(value string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
