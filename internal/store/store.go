// Package store provides SQLite-backed persistence for the budget record and
// the expense list.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spendwise/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const dateLayout = "2006-01-02" // ISO-8601 date, no time component

// Store wraps the spendwise database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetBudget returns the singleton budget record, or nil if none has been saved.
func (s *Store) GetBudget() (*model.Budget, error) {
	var (
		b      model.Budget
		period string
	)
	err := s.db.QueryRow(
		`SELECT monthly_income, period, weekly_budget, monthly_budget FROM budget WHERE id = 0`,
	).Scan(&b.MonthlyIncome, &period, &b.WeeklyBudget, &b.MonthlyBudget)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading budget: %w", err)
	}
	b.Period = model.ParsePeriod(period)
	return &b, nil
}

// PutBudget replaces the singleton budget record. No history is kept.
func (s *Store) PutBudget(b model.Budget) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO budget
		(id, monthly_income, period, weekly_budget, monthly_budget, updated_at)
		VALUES (0, ?, ?, ?, ?, ?)`,
		b.MonthlyIncome, b.Period.String(), b.WeeklyBudget, b.MonthlyBudget, now,
	)
	if err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}
	return nil
}

// ListExpenses returns all expenses, newest date first. Rows with the same
// date are ordered by descending id so recent entries sort first.
func (s *Store) ListExpenses() ([]model.Expense, error) {
	rows, err := s.db.Query(
		`SELECT id, amount, date, description, category FROM expenses ORDER BY date DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var (
			e       model.Expense
			dateStr string
		)
		if err := rows.Scan(&e.ID, &e.Amount, &dateStr, &e.Description, &e.Category); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}
		d, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			// Skip rows with unparseable dates rather than fail the whole load
			continue
		}
		e.Date = d
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// AppendExpense inserts a new expense and returns it with the store-assigned id.
// The date is truncated to day granularity.
func (s *Store) AppendExpense(e model.Expense) (model.Expense, error) {
	if e.Category == "" {
		e.Category = model.DefaultCategory
	}

	res, err := s.db.Exec(
		`INSERT INTO expenses (amount, date, description, category) VALUES (?, ?, ?, ?)`,
		e.Amount, e.Date.Format(dateLayout), e.Description, e.Category,
	)
	if err != nil {
		return model.Expense{}, fmt.Errorf("saving expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Expense{}, fmt.Errorf("reading expense id: %w", err)
	}
	e.ID = id
	e.Date, _ = time.Parse(dateLayout, e.Date.Format(dateLayout))
	return e, nil
}

// ClearExpenses deletes every expense. This is the only supported delete:
// single-record edit/delete does not exist in this design.
func (s *Store) ClearExpenses() error {
	if _, err := s.db.Exec(`DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clearing expenses: %w", err)
	}
	return nil
}
