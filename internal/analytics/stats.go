package analytics

import (
	"math"
	"time"

	"trackit/internal/models"
)

// Summary carries the scalar stats shown alongside the chart series.
type Summary struct {
	TotalCompletions        int
	TotalSpent              float64
	AvgCompletionsPerBucket float64
	AvgSpentPerBucket       float64
}

// Summarize derives totals and per-bucket averages from the two series.
// Averages are 0 when there are no buckets; a NaN or Inf never escapes.
func Summarize(habitSeries, expenseSeries []SeriesPoint) Summary {
	var s Summary
	for _, p := range habitSeries {
		s.TotalCompletions += int(p.Value)
	}
	for _, p := range expenseSeries {
		s.TotalSpent += p.Value
	}
	if n := len(habitSeries); n > 0 {
		s.AvgCompletionsPerBucket = float64(s.TotalCompletions) / float64(n)
	}
	if n := len(expenseSeries); n > 0 {
		s.AvgSpentPerBucket = s.TotalSpent / float64(n)
	}
	return s
}

// DashboardStats is the stat bundle for the dashboard view.
type DashboardStats struct {
	CompletedToday int
	TotalHabits    int
	CompletionRate int
	LongestStreak  int
	MonthTotal     float64
	TodayTotal     float64
}

// Dashboard computes the dashboard bundle for the given day.
func Dashboard(habits []models.Habit, expenses []models.Expense, today time.Time) DashboardStats {
	todayStr := Day(today).Format(models.DayFormat)

	stats := DashboardStats{
		TotalHabits:    len(habits),
		CompletionRate: CompletionRate(habits, today),
		LongestStreak:  LongestStreak(habits, today),
	}

	for _, h := range habits {
		if h.CompletedOn(todayStr) {
			stats.CompletedToday++
		}
	}

	monthStart, monthEnd := CurrentPeriod(RangeMonthly, today)
	window := Bucket{Start: monthStart, End: monthEnd}
	for _, e := range expenses {
		if !validAmount(e.Amount) {
			continue
		}
		if e.Date == todayStr {
			stats.TodayTotal += e.Amount
		}
		day, ok := parseDayIn(e.Date, today.Location())
		if !ok {
			continue
		}
		if window.Contains(day) {
			stats.MonthTotal += e.Amount
		}
	}
	return stats
}

// CompletionRate returns the month-to-date completion percentage:
// completions recorded this month against habitCount x daysElapsed
// possible slots. 0 when there are no habits. The result is clamped to
// [0, 100] because completions of a since-deleted habit day can leave
// more recorded completions than remaining habits allow.
func CompletionRate(habits []models.Habit, today time.Time) int {
	possible := len(habits) * Day(today).Day()
	if possible == 0 {
		return 0
	}

	monthStart, monthEnd := CurrentPeriod(RangeMonthly, today)
	window := Bucket{Start: monthStart, End: monthEnd}

	completions := 0
	for _, h := range habits {
		for dateStr := range h.CompletedSet() {
			day, ok := parseDayIn(dateStr, today.Location())
			if !ok {
				continue
			}
			if window.Contains(day) {
				completions++
			}
		}
	}

	rate := int(math.Round(float64(completions) / float64(possible) * 100))
	if rate < 0 {
		rate = 0
	}
	if rate > 100 {
		rate = 100
	}
	return rate
}

// PeriodStats is the stat bundle for the expenses view over the current
// period of a range.
type PeriodStats struct {
	Start        time.Time
	End          time.Time
	Total        float64
	DailyAverage float64
	Breakdown    []CategoryTotal
}

// ExpensePeriod filters expenses to the current period of the range and
// derives the total, per-day average and category breakdown.
func ExpensePeriod(expenses []models.Expense, r Range, today time.Time) PeriodStats {
	start, end := CurrentPeriod(r, today)

	stats := PeriodStats{
		Start:     start,
		End:       end,
		Breakdown: CategoryBreakdown(expenses, start, end),
	}
	for _, c := range stats.Breakdown {
		stats.Total += c.Value
	}
	stats.DailyAverage = DailyAverage(stats.Total, start, end)
	return stats
}

// DailyAverage divides a period total by the period's day count, which
// is never allowed below 1.
func DailyAverage(total float64, start, end time.Time) float64 {
	days := int(math.Round(end.Sub(start).Hours()/24)) + 1
	if days < 1 {
		days = 1
	}
	return total / float64(days)
}
