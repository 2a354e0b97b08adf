package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"spendwise-server/src/models"
	"spendwise-server/src/store"
)

func (s *Store) CreateExpense(ctx context.Context, userID int64, name string, amount float64, date time.Time, category string) (*models.Expense, error) {
	query := `
		INSERT INTO expenses (user_id, name, amount, date, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, amount, date, category, created_at
	`
	var e models.Expense
	err := s.pool.QueryRow(ctx, query, userID, name, amount, date, category).
		Scan(&e.ID, &e.UserID, &e.Name, &e.Amount, &e.Date, &e.Category, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) ListExpenses(ctx context.Context, userID int64, category string) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, name, amount, date, category, created_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`
	args := []interface{}{userID}
	if category != "" && category != store.FilterAll {
		query = `
			SELECT id, user_id, name, amount, date, category, created_at
			FROM expenses
			WHERE user_id = $1 AND category = $2
			ORDER BY date DESC, id DESC
		`
		args = append(args, category)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Amount, &e.Date, &e.Category, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// UpdateExpense replaces the mutable fields of an expense. The owner check
// is part of the statement, so a row owned by someone else reads as absent.
func (s *Store) UpdateExpense(ctx context.Context, userID, id int64, name string, amount float64, date time.Time, category string) (*models.Expense, error) {
	query := `
		UPDATE expenses
		SET name = $1, amount = $2, date = $3, category = $4
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, name, amount, date, category, created_at
	`
	var e models.Expense
	err := s.pool.QueryRow(ctx, query, name, amount, date, category, id, userID).
		Scan(&e.ID, &e.UserID, &e.Name, &e.Amount, &e.Date, &e.Category, &e.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *Store) DeleteExpense(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
