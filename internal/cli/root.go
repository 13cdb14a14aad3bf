package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"trackit/internal/backup"
	"trackit/internal/models"
	"trackit/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup snapshots the store on startup. Failures are
// reported but never block the command that triggered the backup.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// findHabit resolves a user-supplied habit reference, matching by ID
// first and then by case-insensitive name.
func findHabit(habits []models.Habit, ref string) (models.Habit, error) {
	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
	}
	for _, h := range habits {
		if strings.EqualFold(h.Name, ref) {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("no habit matching %q", ref)
}

func findExpense(expenses []models.Expense, id string) (models.Expense, error) {
	for _, e := range expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Expense{}, fmt.Errorf("no expense with ID %q", id)
}

// parseDay accepts YYYY-MM-DD or the word "today".
func parseDay(s string) (time.Time, error) {
	if s == "" || s == "today" {
		return time.Now(), nil
	}
	day, err := time.Parse(models.DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return day, nil
}

// weekStrip renders the last seven days of a habit as a compact
// completion strip, oldest day first.
func weekStrip(h models.Habit, today time.Time) string {
	var b strings.Builder
	for offset := -6; offset <= 0; offset++ {
		day := today.AddDate(0, 0, offset).Format(models.DayFormat)
		if h.CompletedOn(day) {
			b.WriteString("■")
		} else {
			b.WriteString("·")
		}
	}
	return b.String()
}

// sortNewestFirst orders expenses by date descending, falling back to
// creation order within a day. The input slice is not mutated.
func sortNewestFirst(expenses []models.Expense) []models.Expense {
	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
