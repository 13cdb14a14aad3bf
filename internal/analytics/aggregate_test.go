package analytics

import (
	"math"
	"reflect"
	"testing"

	"trackit/internal/models"
)

func TestHabitSeries_ScenarioWaterHabit(t *testing.T) {
	today := day(t, "2024-01-02")
	habits := []models.Habit{
		{Name: "Water", CompletedDates: []string{"2024-01-01", "2024-01-02"}},
	}

	buckets := Buckets(RangeDaily, today)
	series := HabitSeries(habits, buckets)

	last := series[len(series)-1]
	if last.Value != 1 {
		t.Errorf("Expected value 1 on the Jan-02 bucket, got %v", last.Value)
	}
	if series[len(series)-2].Value != 1 {
		t.Errorf("Expected value 1 on the Jan-01 bucket, got %v", series[len(series)-2].Value)
	}

	if got := Streak(habits[0], today); got != 2 {
		t.Errorf("Expected streak 2, got %d", got)
	}
}

func TestHabitSeries_SameDayAcrossHabitsSums(t *testing.T) {
	today := day(t, "2024-01-02")
	habits := []models.Habit{
		{Name: "Water", CompletedDates: []string{"2024-01-02"}},
		{Name: "Read", CompletedDates: []string{"2024-01-02"}},
	}

	series := HabitSeries(habits, Buckets(RangeDaily, today))
	if got := series[len(series)-1].Value; got != 2 {
		t.Errorf("Expected 2 completions on the last day, got %v", got)
	}
}

func TestHabitSeries_DuplicateDatesCountOnce(t *testing.T) {
	// The completed-dates list is a set; a duplicated entry must not
	// double a day's contribution.
	today := day(t, "2024-01-02")
	habits := []models.Habit{
		{Name: "Water", CompletedDates: []string{"2024-01-02", "2024-01-02"}},
	}

	series := HabitSeries(habits, Buckets(RangeDaily, today))
	if got := series[len(series)-1].Value; got != 1 {
		t.Errorf("Expected duplicate dates to count once, got %v", got)
	}
}

func TestExpenseSeries_SumLaw(t *testing.T) {
	// Bucketing over the full lookback window never drops or
	// double-counts a record inside the covered range.
	today := day(t, "2024-06-15")
	expenses := []models.Expense{
		{Amount: 10, Category: "Food", Date: "2024-06-15"},
		{Amount: 20, Category: "Food", Date: "2024-06-09"},
		{Amount: 5.5, Category: "Bills", Date: "2024-06-12"},
		{Amount: 7, Category: "Food", Date: "2024-06-08"}, // before the window
	}

	buckets := Buckets(RangeDaily, today)
	series := ExpenseSeries(expenses, buckets)

	var got float64
	for _, p := range series {
		got += p.Value
	}

	start, end := buckets[0].Start, buckets[len(buckets)-1].End
	var want float64
	for _, e := range expenses {
		d := day(t, e.Date)
		if !d.Before(start) && !d.After(end) {
			want += e.Amount
		}
	}
	if got != want {
		t.Errorf("Expected series sum %v to equal window sum %v", got, want)
	}
	if got != 35.5 {
		t.Errorf("Expected series sum 35.5, got %v", got)
	}
}

func TestExpenseSeries_InclusiveBounds(t *testing.T) {
	today := day(t, "2024-06-15")
	buckets := Buckets(RangeWeekly, today)
	seriesStart := buckets[0].Start
	seriesEnd := buckets[len(buckets)-1].End

	expenses := []models.Expense{
		{Amount: 1, Category: "Food", Date: seriesStart.Format(models.DayFormat)},
		{Amount: 2, Category: "Food", Date: seriesEnd.Format(models.DayFormat)},
	}

	series := ExpenseSeries(expenses, buckets)
	if series[0].Value != 1 {
		t.Errorf("Expected a record dated exactly at the series start to count, got %v", series[0].Value)
	}
	if series[len(series)-1].Value != 2 {
		t.Errorf("Expected a record dated exactly at the series end to count, got %v", series[len(series)-1].Value)
	}
}

func TestExpenseSeries_SkipsInvalidAmounts(t *testing.T) {
	today := day(t, "2024-06-15")
	expenses := []models.Expense{
		{Amount: 10, Category: "Food", Date: "2024-06-15"},
		{Amount: -4, Category: "Food", Date: "2024-06-15"},
		{Amount: 0, Category: "Food", Date: "2024-06-15"},
		{Amount: math.NaN(), Category: "Food", Date: "2024-06-15"},
		{Amount: math.Inf(1), Category: "Food", Date: "2024-06-15"},
	}

	series := ExpenseSeries(expenses, Buckets(RangeDaily, today))
	if got := series[len(series)-1].Value; got != 10 {
		t.Errorf("Expected only the valid amount to be summed, got %v", got)
	}
}

func TestCategoryBreakdown_ScenarioFood(t *testing.T) {
	today := day(t, "2024-01-10")
	expenses := []models.Expense{
		{Amount: 10, Category: "Food", Date: "2024-01-05"},
		{Amount: 20, Category: "Food", Date: "2024-01-06"},
	}

	start, end := CurrentPeriod(RangeMonthly, today)
	breakdown := CategoryBreakdown(expenses, start, end)

	want := []CategoryTotal{{Name: "Food", Value: 30}}
	if !reflect.DeepEqual(breakdown, want) {
		t.Errorf("Expected breakdown %v, got %v", want, breakdown)
	}

	top, ok := TopCategory(breakdown)
	if !ok || top.Name != "Food" {
		t.Errorf("Expected top category Food, got %v (ok=%v)", top, ok)
	}
}

func TestCategoryBreakdown_SortedDescendingAndIdempotent(t *testing.T) {
	today := day(t, "2024-01-10")
	expenses := []models.Expense{
		{Amount: 5, Category: "Transport", Date: "2024-01-03"},
		{Amount: 30, Category: "Food", Date: "2024-01-04"},
		{Amount: 12, Category: "Bills", Date: "2024-01-05"},
		{Amount: 12, Category: "Health", Date: "2024-01-05"},
		{Amount: 99, Category: "Food", Date: "2023-12-31"}, // outside the period
	}

	start, end := CurrentPeriod(RangeMonthly, today)
	first := CategoryBreakdown(expenses, start, end)
	second := CategoryBreakdown(expenses, start, end)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical breakdowns on rerun, got %v then %v", first, second)
	}

	want := []CategoryTotal{
		{Name: "Food", Value: 30},
		{Name: "Bills", Value: 12},
		{Name: "Health", Value: 12},
		{Name: "Transport", Value: 5},
	}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("Expected %v, got %v", want, first)
	}
}

func TestCategoryBreakdown_DropsZeroTotals(t *testing.T) {
	today := day(t, "2024-01-10")
	expenses := []models.Expense{
		{Amount: -1, Category: "Shopping", Date: "2024-01-03"},
	}

	start, end := CurrentPeriod(RangeMonthly, today)
	breakdown := CategoryBreakdown(expenses, start, end)
	if len(breakdown) != 0 {
		t.Errorf("Expected no entries when every amount is invalid, got %v", breakdown)
	}

	if _, ok := TopCategory(breakdown); ok {
		t.Errorf("Expected no top category for an empty breakdown")
	}
}

func TestCategoryBreakdown_KeepsUnknownCategoryLiterally(t *testing.T) {
	today := day(t, "2024-01-10")
	expenses := []models.Expense{
		{Amount: 8, Category: "Subscriptions", Date: "2024-01-05"},
	}

	start, end := CurrentPeriod(RangeMonthly, today)
	breakdown := CategoryBreakdown(expenses, start, end)
	if len(breakdown) != 1 || breakdown[0].Name != "Subscriptions" {
		t.Errorf("Expected the literal category string to be kept, got %v", breakdown)
	}
}
