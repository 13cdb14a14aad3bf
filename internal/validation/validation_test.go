package validation

import (
	"strings"
	"testing"

	"trackit/internal/models"
)

func TestValidateHabitsClean(t *testing.T) {
	v := New()
	habits := []models.Habit{
		{ID: "h1", Name: "Water", CompletedDates: []string{"2024-06-12", "2024-06-13"}},
		{ID: "h2", Name: "Read"},
	}

	result := v.ValidateHabits(habits)
	if result.HasConflicts() {
		t.Errorf("Expected no conflicts, got %d", len(result.Conflicts))
	}
	if got := result.FormatReport(); got != "No conflicts found" {
		t.Errorf("Expected clean report, got %q", got)
	}
}

func TestValidateHabitsConflicts(t *testing.T) {
	v := New()
	habits := []models.Habit{
		{ID: "h1", Name: "  ", CompletedDates: []string{"2024-06-12", "2024-06-12", "not-a-date"}},
		{ID: "h1", Name: "Dup"},
	}

	result := v.ValidateHabits(habits)
	if !result.HasConflicts() {
		t.Fatal("Expected conflicts, got none")
	}

	types := make(map[ConflictType]int)
	for _, c := range result.Conflicts {
		types[c.Type]++
	}
	if types[ConflictEmptyName] != 1 {
		t.Errorf("Expected 1 empty name conflict, got %d", types[ConflictEmptyName])
	}
	if types[ConflictDuplicateCompletion] != 1 {
		t.Errorf("Expected 1 duplicate completion conflict, got %d", types[ConflictDuplicateCompletion])
	}
	if types[ConflictInvalidDate] != 1 {
		t.Errorf("Expected 1 invalid date conflict, got %d", types[ConflictInvalidDate])
	}
	if types[ConflictDuplicateID] != 1 {
		t.Errorf("Expected 1 duplicate id conflict, got %d", types[ConflictDuplicateID])
	}
}

func TestValidateExpensesConflicts(t *testing.T) {
	v := New()
	expenses := []models.Expense{
		{ID: "e1", Amount: -5, Category: "Food", Description: "lunch", Date: "2024-06-13"},
		{ID: "e2", Amount: 10, Category: "Subscriptions", Description: "", Date: "13/06/2024"},
	}

	result := v.ValidateExpenses(expenses)
	types := make(map[ConflictType]int)
	for _, c := range result.Conflicts {
		types[c.Type]++
	}
	if types[ConflictInvalidAmount] != 1 {
		t.Errorf("Expected 1 invalid amount conflict, got %d", types[ConflictInvalidAmount])
	}
	if types[ConflictEmptyDescription] != 1 {
		t.Errorf("Expected 1 empty description conflict, got %d", types[ConflictEmptyDescription])
	}
	if types[ConflictInvalidDate] != 1 {
		t.Errorf("Expected 1 invalid date conflict, got %d", types[ConflictInvalidDate])
	}
	if types[ConflictUnknownCategory] != 1 {
		t.Errorf("Expected 1 unknown category conflict, got %d", types[ConflictUnknownCategory])
	}
}

func TestFormatReportListsConflicts(t *testing.T) {
	v := New()
	result := v.ValidateExpenses([]models.Expense{
		{ID: "e1", Amount: 0, Category: "Food", Description: "x", Date: "2024-06-13"},
	})

	report := result.FormatReport()
	if !strings.Contains(report, "1 conflict(s) found") {
		t.Errorf("Expected conflict count in report, got %q", report)
	}
	if !strings.Contains(report, string(ConflictInvalidAmount)) {
		t.Errorf("Expected conflict type in report, got %q", report)
	}
}

func TestValidateNewExpense(t *testing.T) {
	if err := ValidateNewExpense(12.50, "groceries", "2024-06-13"); err != nil {
		t.Errorf("Expected valid expense, got %v", err)
	}
	if err := ValidateNewExpense(0, "groceries", "2024-06-13"); err == nil {
		t.Error("Expected error for zero amount")
	}
	if err := ValidateNewExpense(5, " ", "2024-06-13"); err == nil {
		t.Error("Expected error for empty description")
	}
	if err := ValidateNewExpense(5, "groceries", "June 13"); err == nil {
		t.Error("Expected error for malformed date")
	}
}

func TestValidateNewHabit(t *testing.T) {
	if err := ValidateNewHabit("Water"); err != nil {
		t.Errorf("Expected valid habit, got %v", err)
	}
	if err := ValidateNewHabit("   "); err == nil {
		t.Error("Expected error for blank name")
	}
}
