package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"trackit/internal/models"
)

type Store struct {
	Version  int              `json:"version"`
	Habits   []models.Habit   `json:"habits"`
	Expenses []models.Expense `json:"expenses"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Habits:   []models.Habit{},
		Expenses: []models.Expense{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'trackit init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure collections are initialized
	if s.store.Habits == nil {
		s.store.Habits = []models.Habit{}
	}
	if s.store.Expenses == nil {
		s.store.Expenses = []models.Expense{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetHabits() ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make([]models.Habit, len(s.store.Habits))
	copy(habits, s.store.Habits)
	return habits, nil
}

func (s *JSONStore) SaveHabits(habits []models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Habits = habits
	return s.save()
}

func (s *JSONStore) GetExpenses() ([]models.Expense, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	expenses := make([]models.Expense, len(s.store.Expenses))
	copy(expenses, s.store.Expenses)
	return expenses, nil
}

func (s *JSONStore) SaveExpenses(expenses []models.Expense) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Expenses = expenses
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - A store is not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple trackit processes against the same storage path
//     is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
