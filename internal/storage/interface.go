package storage

import "trackit/internal/models"

// Provider persists the two record collections. Reads return empty
// collections when nothing is stored yet; saves replace the whole
// collection and persist synchronously, so callers express every
// mutation as collection replacement.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	GetHabits() ([]models.Habit, error)
	SaveHabits([]models.Habit) error

	// Expenses
	GetExpenses() ([]models.Expense, error)
	SaveExpenses([]models.Expense) error

	// Utils
	GetConfigPath() string
}
