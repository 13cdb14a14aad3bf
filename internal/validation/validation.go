package validation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"trackit/internal/models"
)

type ConflictType string

const (
	ConflictEmptyName           ConflictType = "empty_name"
	ConflictDuplicateID         ConflictType = "duplicate_id"
	ConflictInvalidDate         ConflictType = "invalid_date"
	ConflictDuplicateCompletion ConflictType = "duplicate_completion"
	ConflictInvalidAmount       ConflictType = "invalid_amount"
	ConflictEmptyDescription    ConflictType = "empty_description"
	ConflictUnknownCategory     ConflictType = "unknown_category"
)

// Conflict describes one problem found in a stored record.
type Conflict struct {
	Type     ConflictType
	RecordID string
	Message  string
}

type ValidationResult struct {
	Conflicts []Conflict
}

func (r ValidationResult) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

func (r ValidationResult) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts found"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d conflict(s) found:\n", len(r.Conflicts))
	for _, c := range r.Conflicts {
		fmt.Fprintf(&b, "  [%s] %s\n", c.Type, c.Message)
	}
	return b.String()
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateHabits scans a stored habit collection for records that
// violate the data model invariants.
func (v *Validator) ValidateHabits(habits []models.Habit) ValidationResult {
	var result ValidationResult

	seen := make(map[string]bool)
	for _, h := range habits {
		if seen[h.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:     ConflictDuplicateID,
				RecordID: h.ID,
				Message:  fmt.Sprintf("habit id %q appears more than once", h.ID),
			})
		}
		seen[h.ID] = true

		if strings.TrimSpace(h.Name) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:     ConflictEmptyName,
				RecordID: h.ID,
				Message:  fmt.Sprintf("habit %q has an empty name", h.ID),
			})
		}

		days := make(map[string]bool)
		for _, d := range h.CompletedDates {
			if err := ValidateDay(d); err != nil {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:     ConflictInvalidDate,
					RecordID: h.ID,
					Message:  fmt.Sprintf("habit %q: %v", h.Name, err),
				})
				continue
			}
			if days[d] {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:     ConflictDuplicateCompletion,
					RecordID: h.ID,
					Message:  fmt.Sprintf("habit %q has %s recorded more than once", h.Name, d),
				})
			}
			days[d] = true
		}
	}

	return result
}

// ValidateExpenses scans a stored expense collection. An unknown
// category is reported but is not an error at the aggregation layer;
// it only falls back to the default presentation.
func (v *Validator) ValidateExpenses(expenses []models.Expense) ValidationResult {
	var result ValidationResult

	seen := make(map[string]bool)
	for _, e := range expenses {
		if seen[e.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:     ConflictDuplicateID,
				RecordID: e.ID,
				Message:  fmt.Sprintf("expense id %q appears more than once", e.ID),
			})
		}
		seen[e.ID] = true

		if !(e.Amount > 0) || math.IsInf(e.Amount, 0) || math.IsNaN(e.Amount) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:     ConflictInvalidAmount,
				RecordID: e.ID,
				Message:  fmt.Sprintf("expense %q has non-positive amount %v", e.ID, e.Amount),
			})
		}
		if strings.TrimSpace(e.Description) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:     ConflictEmptyDescription,
				RecordID: e.ID,
				Message:  fmt.Sprintf("expense %q has an empty description", e.ID),
			})
		}
		if err := ValidateDay(e.Date); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:     ConflictInvalidDate,
				RecordID: e.ID,
				Message:  fmt.Sprintf("expense %q: %v", e.ID, err),
			})
		}
		if !models.KnownCategory(e.Category) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:     ConflictUnknownCategory,
				RecordID: e.ID,
				Message:  fmt.Sprintf("expense %q has unknown category %q (renders as Other)", e.ID, e.Category),
			})
		}
	}

	return result
}

// ValidateDay checks a calendar-day string at the ingestion boundary.
// The analytics layer assumes stored dates already passed this check.
func ValidateDay(s string) error {
	if _, err := time.Parse(models.DayFormat, s); err != nil {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return nil
}

// ValidateNewHabit checks user input before a habit is created.
func ValidateNewHabit(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	return nil
}

// ValidateNewExpense checks user input before an expense is created.
func ValidateNewExpense(amount float64, description, date string) error {
	if !(amount > 0) || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return fmt.Errorf("amount must be a positive number")
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description cannot be empty")
	}
	return ValidateDay(date)
}
