package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	// Import sqlite driver
	_ "modernc.org/sqlite"

	"spendwise-server/src/models"
	"spendwise-server/src/store"
)

// Store is the single-file local implementation of store.Store. It carries
// the same auth and ownership model as the postgres backend; only the
// persistence differs.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the database file and runs migrations. Pass
// ":memory:" for an ephemeral database.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// One pooled connection: the driver serializes writers anyway, and
	// :memory: databases are per-connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			amount REAL NOT NULL,
			date DATETIME NOT NULL,
			category TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_user_date ON expenses (user_id, date DESC)`,
	}
	for _, m := range migrations {
		if _, err := s.conn.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		username, passwordHash,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, store.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetUserByID(ctx, id)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	row := s.conn.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM users WHERE username = ?",
		username,
	)

	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	row := s.conn.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM users WHERE id = ?",
		id,
	)

	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) CreateExpense(ctx context.Context, userID int64, name string, amount float64, date time.Time, category string) (*models.Expense, error) {
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO expenses (user_id, name, amount, date, category) VALUES (?, ?, ?, ?, ?)",
		userID, name, amount, date, category,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.getExpense(ctx, userID, id)
}

func (s *Store) getExpense(ctx context.Context, userID, id int64) (*models.Expense, error) {
	row := s.conn.QueryRowContext(ctx,
		"SELECT id, user_id, name, amount, date, category, created_at FROM expenses WHERE id = ? AND user_id = ?",
		id, userID,
	)

	var e models.Expense
	if err := row.Scan(&e.ID, &e.UserID, &e.Name, &e.Amount, &e.Date, &e.Category, &e.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *Store) ListExpenses(ctx context.Context, userID int64, category string) ([]models.Expense, error) {
	query := "SELECT id, user_id, name, amount, date, category, created_at FROM expenses WHERE user_id = ? ORDER BY date DESC, id DESC"
	args := []interface{}{userID}
	if category != "" && category != store.FilterAll {
		query = "SELECT id, user_id, name, amount, date, category, created_at FROM expenses WHERE user_id = ? AND category = ? ORDER BY date DESC, id DESC"
		args = append(args, category)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Amount, &e.Date, &e.Category, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// UpdateExpense replaces the mutable fields of an expense. The owner check
// is part of the statement, so a row owned by someone else reads as absent.
func (s *Store) UpdateExpense(ctx context.Context, userID, id int64, name string, amount float64, date time.Time, category string) (*models.Expense, error) {
	result, err := s.conn.ExecContext(ctx,
		"UPDATE expenses SET name = ?, amount = ?, date = ?, category = ? WHERE id = ? AND user_id = ?",
		name, amount, date, category, id, userID,
	)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, store.ErrNotFound
	}
	return s.getExpense(ctx, userID, id)
}

func (s *Store) DeleteExpense(ctx context.Context, userID, id int64) error {
	result, err := s.conn.ExecContext(ctx,
		"DELETE FROM expenses WHERE id = ? AND user_id = ?",
		id, userID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() {
	s.conn.Close()
}
