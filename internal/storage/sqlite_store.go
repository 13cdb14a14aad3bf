package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"trackit/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	icon TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS habit_completions (
	habit_id TEXT NOT NULL,
	day TEXT NOT NULL,
	PRIMARY KEY (habit_id, day)
);

CREATE TABLE IF NOT EXISTS expenses (
	id TEXT PRIMARY KEY,
	amount REAL NOT NULL,
	category TEXT NOT NULL,
	description TEXT NOT NULL,
	date TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'trackit init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// The schema is idempotent; applying it on load keeps stores
	// created by older versions usable.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetDB exposes the underlying handle for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) GetHabits() ([]models.Habit, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT id, name, icon, color, created_at FROM habits ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var h models.Habit
		var createdAt string
		if err := rows.Scan(&h.ID, &h.Name, &h.Icon, &h.Color, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		h.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		h.CompletedDates = []string{}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}

	byID := make(map[string]int, len(habits))
	for i, h := range habits {
		byID[h.ID] = i
	}

	crows, err := s.db.Query(`SELECT habit_id, day FROM habit_completions ORDER BY day`)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer crows.Close()

	for crows.Next() {
		var habitID, day string
		if err := crows.Scan(&habitID, &day); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		if i, ok := byID[habitID]; ok {
			habits[i].CompletedDates = append(habits[i].CompletedDates, day)
		}
	}
	if err := crows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read completions: %w", err)
	}

	return habits, nil
}

// SaveHabits replaces the stored habit collection. Replacement runs in
// one transaction so readers never observe a partially-updated
// collection.
func (s *SQLiteStore) SaveHabits(habits []models.Habit) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM habit_completions`); err != nil {
		return fmt.Errorf("failed to clear completions: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM habits`); err != nil {
		return fmt.Errorf("failed to clear habits: %w", err)
	}

	for _, h := range habits {
		_, err := tx.Exec(`INSERT INTO habits (id, name, icon, color, created_at) VALUES (?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Icon, h.Color, h.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert habit %s: %w", h.ID, err)
		}
		for _, day := range h.CompletedDates {
			_, err := tx.Exec(`INSERT OR IGNORE INTO habit_completions (habit_id, day) VALUES (?, ?)`,
				h.ID, day)
			if err != nil {
				return fmt.Errorf("failed to insert completion for %s: %w", h.ID, err)
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetExpenses() ([]models.Expense, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT id, amount, category, description, date, created_at FROM expenses ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &e.Description, &e.Date, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}

	return expenses, nil
}

// SaveExpenses replaces the stored expense collection in one
// transaction, mirroring SaveHabits.
func (s *SQLiteStore) SaveExpenses(expenses []models.Expense) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM expenses`); err != nil {
		return fmt.Errorf("failed to clear expenses: %w", err)
	}

	for _, e := range expenses {
		_, err := tx.Exec(`INSERT INTO expenses (id, amount, category, description, date, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, e.Amount, e.Category, e.Description, e.Date, e.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert expense %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
