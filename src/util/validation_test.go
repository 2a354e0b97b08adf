package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	assert.True(t, ValidateUsername("bob"))
	assert.True(t, ValidateUsername("a_very_long_but_valid_username"))

	assert.False(t, ValidateUsername(""))
	assert.False(t, ValidateUsername("ab"))
	assert.False(t, ValidateUsername("this-username-is-definitely-over-thirty"))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("12345678"))
	assert.False(t, ValidatePassword("1234567"))
	assert.False(t, ValidatePassword(""))
}

func TestValidateExpense(t *testing.T) {
	assert.True(t, ValidateExpense("Coffee", 4.25, "Food"))

	assert.False(t, ValidateExpense("", 4.25, "Food"))
	assert.False(t, ValidateExpense("   ", 4.25, "Food"))
	assert.False(t, ValidateExpense("Coffee", 0, "Food"))
	assert.False(t, ValidateExpense("Coffee", -1, "Food"))
	assert.False(t, ValidateExpense("Coffee", 4.25, ""))
	assert.False(t, ValidateExpense("Coffee", 4.25, "  "))
}

func TestParseDate(t *testing.T) {
	parsed, ok := ParseDate("2026-03-15")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, ok = ParseDate("03/15/2026")
	assert.False(t, ok)
	_, ok = ParseDate("2026-13-01")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}
