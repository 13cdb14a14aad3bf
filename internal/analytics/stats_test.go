package analytics

import (
	"testing"

	"trackit/internal/models"
)

func TestSummarize_TotalsAndAverages(t *testing.T) {
	habitSeries := []SeriesPoint{{Value: 2}, {Value: 0}, {Value: 1}, {Value: 3}}
	expenseSeries := []SeriesPoint{{Value: 10}, {Value: 0}, {Value: 5}, {Value: 15}}

	s := Summarize(habitSeries, expenseSeries)

	if s.TotalCompletions != 6 {
		t.Errorf("Expected 6 total completions, got %d", s.TotalCompletions)
	}
	if s.TotalSpent != 30 {
		t.Errorf("Expected 30 total spent, got %v", s.TotalSpent)
	}
	if s.AvgCompletionsPerBucket != 1.5 {
		t.Errorf("Expected avg 1.5 completions per bucket, got %v", s.AvgCompletionsPerBucket)
	}
	if s.AvgSpentPerBucket != 7.5 {
		t.Errorf("Expected avg 7.5 spent per bucket, got %v", s.AvgSpentPerBucket)
	}
}

func TestSummarize_EmptySeriesYieldsZeroes(t *testing.T) {
	s := Summarize(nil, nil)
	if s.AvgCompletionsPerBucket != 0 || s.AvgSpentPerBucket != 0 {
		t.Errorf("Expected zero averages with no buckets, got %+v", s)
	}
}

func TestCompletionRate_NoHabitsIsZero(t *testing.T) {
	if got := CompletionRate(nil, day(t, "2024-01-10")); got != 0 {
		t.Errorf("Expected rate 0 with no habits, got %d", got)
	}
}

func TestCompletionRate_Perfect(t *testing.T) {
	today := day(t, "2024-01-02")
	habits := []models.Habit{
		{Name: "Water", CompletedDates: []string{"2024-01-01", "2024-01-02"}},
	}

	if got := CompletionRate(habits, today); got != 100 {
		t.Errorf("Expected rate 100, got %d", got)
	}
}

func TestCompletionRate_Rounds(t *testing.T) {
	// 1 completion over 1 habit x 3 elapsed days = 33.33..., rounded.
	today := day(t, "2024-01-03")
	habits := []models.Habit{
		{Name: "Water", CompletedDates: []string{"2024-01-01"}},
	}

	if got := CompletionRate(habits, today); got != 33 {
		t.Errorf("Expected rate 33, got %d", got)
	}
}

func TestCompletionRate_ClampedToHundred(t *testing.T) {
	// Completions dated later in the month than today can outnumber the
	// elapsed-day slots; the rate must still stay in [0, 100].
	today := day(t, "2024-01-02")
	habits := []models.Habit{
		{Name: "Water", CompletedDates: []string{
			"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
		}},
	}

	if got := CompletionRate(habits, today); got != 100 {
		t.Errorf("Expected clamped rate 100, got %d", got)
	}
}

func TestDashboard_Bundle(t *testing.T) {
	today := day(t, "2024-01-10")
	habits := []models.Habit{
		{Name: "Water", CompletedDates: []string{"2024-01-10", "2024-01-09"}},
		{Name: "Read", CompletedDates: []string{"2024-01-09"}},
	}
	expenses := []models.Expense{
		{Amount: 25, Category: "Food", Date: "2024-01-10"},
		{Amount: 40, Category: "Bills", Date: "2024-01-05"},
		{Amount: 99, Category: "Food", Date: "2023-12-28"},
	}

	stats := Dashboard(habits, expenses, today)

	if stats.CompletedToday != 1 {
		t.Errorf("Expected 1 habit completed today, got %d", stats.CompletedToday)
	}
	if stats.TotalHabits != 2 {
		t.Errorf("Expected 2 habits, got %d", stats.TotalHabits)
	}
	if stats.LongestStreak != 2 {
		t.Errorf("Expected longest streak 2, got %d", stats.LongestStreak)
	}
	if stats.MonthTotal != 65 {
		t.Errorf("Expected month total 65, got %v", stats.MonthTotal)
	}
	if stats.TodayTotal != 25 {
		t.Errorf("Expected today total 25, got %v", stats.TodayTotal)
	}
	// 3 completions over 2 habits x 10 elapsed days.
	if stats.CompletionRate != 15 {
		t.Errorf("Expected completion rate 15, got %d", stats.CompletionRate)
	}
}

func TestExpensePeriod_MonthlyAverage(t *testing.T) {
	today := day(t, "2024-01-10")
	expenses := []models.Expense{
		{Amount: 31, Category: "Food", Date: "2024-01-05"},
		{Amount: 62, Category: "Bills", Date: "2024-01-09"},
	}

	stats := ExpensePeriod(expenses, RangeMonthly, today)

	if stats.Total != 93 {
		t.Errorf("Expected period total 93, got %v", stats.Total)
	}
	// January has 31 days.
	if stats.DailyAverage != 3 {
		t.Errorf("Expected daily average 3, got %v", stats.DailyAverage)
	}
	if len(stats.Breakdown) != 2 || stats.Breakdown[0].Name != "Bills" {
		t.Errorf("Expected Bills to lead the breakdown, got %v", stats.Breakdown)
	}
}

func TestDailyAverage_NeverDividesByZero(t *testing.T) {
	start := day(t, "2024-01-10")
	if got := DailyAverage(10, start, start); got != 10 {
		t.Errorf("Expected a single-day period to divide by 1, got %v", got)
	}
}
