package store

import (
	"context"
	"errors"
	"time"

	"spendwise-server/src/models"
)

var (
	// ErrNotFound is returned when no row matches, including the case where
	// the row exists but belongs to a different user.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername is returned when registering a taken username.
	ErrDuplicateUsername = errors.New("username already exists")
)

// FilterAll matches every category when passed to ListExpenses.
const FilterAll = "all"

// Store is the persistence contract shared by the postgres and sqlite
// backends. Every expense operation is scoped to the owning user, and the
// ownership check and the mutation are a single statement in both backends,
// so concurrent requests cannot race between check and write.
type Store interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	CreateExpense(ctx context.Context, userID int64, name string, amount float64, date time.Time, category string) (*models.Expense, error)
	// ListExpenses returns the user's expenses ordered by date descending.
	// category "" or FilterAll disables filtering.
	ListExpenses(ctx context.Context, userID int64, category string) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, userID, id int64, name string, amount float64, date time.Time, category string) (*models.Expense, error)
	DeleteExpense(ctx context.Context, userID, id int64) error

	Close()
}
