package storage

import (
	"path/filepath"
	"testing"
	"time"

	"trackit/internal/models"
)

func TestJSONStore_InitAndRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trackit.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	habits := []models.Habit{
		{
			ID:             "h1",
			Name:           "Water",
			Icon:           "💧",
			Color:          "hsl(210 70% 55%)",
			CompletedDates: []string{"2024-01-01", "2024-01-02"},
			CreatedAt:      time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		},
	}
	if err := store.SaveHabits(habits); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}

	expenses := []models.Expense{
		{
			ID:          "e1",
			Amount:      12.5,
			Category:    "Food",
			Description: "lunch",
			Date:        "2024-01-02",
			CreatedAt:   time.Date(2024, 1, 2, 13, 0, 0, 0, time.UTC),
		},
	}
	if err := store.SaveExpenses(expenses); err != nil {
		t.Fatalf("SaveExpenses failed: %v", err)
	}

	// Reload from disk through a fresh store.
	reloaded := NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	gotHabits, err := reloaded.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits failed: %v", err)
	}
	if len(gotHabits) != 1 || gotHabits[0].Name != "Water" {
		t.Errorf("Expected the Water habit back, got %+v", gotHabits)
	}
	if len(gotHabits[0].CompletedDates) != 2 {
		t.Errorf("Expected 2 completed dates, got %v", gotHabits[0].CompletedDates)
	}

	gotExpenses, err := reloaded.GetExpenses()
	if err != nil {
		t.Fatalf("GetExpenses failed: %v", err)
	}
	if len(gotExpenses) != 1 || gotExpenses[0].Amount != 12.5 {
		t.Errorf("Expected the lunch expense back, got %+v", gotExpenses)
	}
}

func TestJSONStore_InitTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trackit.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Errorf("Expected an error when initializing twice")
	}
}

func TestJSONStore_LoadMissingFileFails(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Errorf("Expected an error when loading a missing store")
	}
}

func TestJSONStore_EmptyCollectionsByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trackit.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	habits, err := store.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits failed: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("Expected no habits in a fresh store, got %d", len(habits))
	}

	expenses, err := store.GetExpenses()
	if err != nil {
		t.Fatalf("GetExpenses failed: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("Expected no expenses in a fresh store, got %d", len(expenses))
	}
}

func TestJSONStore_SaveReplacesWholeCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trackit.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if err := store.SaveHabits([]models.Habit{{ID: "a"}, {ID: "b"}}); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}
	if err := store.SaveHabits([]models.Habit{{ID: "b"}}); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}

	habits, err := store.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits failed: %v", err)
	}
	if len(habits) != 1 || habits[0].ID != "b" {
		t.Errorf("Expected the collection to be replaced, got %+v", habits)
	}
}
