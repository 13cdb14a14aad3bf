package analytics

import (
	"math"
	"sort"
	"time"

	"trackit/internal/models"
)

// SeriesPoint is one labeled value of a chart series.
type SeriesPoint struct {
	Label string
	Value float64
}

// CategoryTotal is one entry of a category breakdown.
type CategoryTotal struct {
	Name  string
	Value float64
}

// HabitSeries counts habit completions per bucket. Each (habit, day)
// pair contributes at most once; completions of different habits on the
// same day sum.
func HabitSeries(habits []models.Habit, buckets []Bucket) []SeriesPoint {
	points := make([]SeriesPoint, len(buckets))
	for i, b := range buckets {
		points[i].Label = b.Label
	}

	for _, h := range habits {
		for dateStr := range h.CompletedSet() {
			day, ok := parseDay(dateStr, buckets)
			if !ok {
				continue
			}
			for i, b := range buckets {
				if b.Contains(day) {
					points[i].Value++
					break
				}
			}
		}
	}
	return points
}

// ExpenseSeries sums expense amounts per bucket. Records with
// non-positive or non-finite amounts are skipped rather than allowed to
// corrupt the totals.
func ExpenseSeries(expenses []models.Expense, buckets []Bucket) []SeriesPoint {
	points := make([]SeriesPoint, len(buckets))
	for i, b := range buckets {
		points[i].Label = b.Label
	}

	for _, e := range expenses {
		if !validAmount(e.Amount) {
			continue
		}
		day, ok := parseDay(e.Date, buckets)
		if !ok {
			continue
		}
		for i, b := range buckets {
			if b.Contains(day) {
				points[i].Value += e.Amount
				break
			}
		}
	}
	return points
}

// CategoryBreakdown groups expense amounts by category over the
// inclusive [start, end] day interval, drops zero totals and sorts
// descending by total. Ties sort by name so reruns on the same input
// yield an identical list. Unknown category strings are kept under
// their literal value.
func CategoryBreakdown(expenses []models.Expense, start, end time.Time) []CategoryTotal {
	window := Bucket{Start: start, End: end}

	totals := make(map[string]float64)
	for _, e := range expenses {
		if !validAmount(e.Amount) {
			continue
		}
		day, ok := parseDayIn(e.Date, start.Location())
		if !ok {
			continue
		}
		if window.Contains(day) {
			totals[e.Category] += e.Amount
		}
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for name, value := range totals {
		if value > 0 {
			breakdown = append(breakdown, CategoryTotal{Name: name, Value: value})
		}
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Value != breakdown[j].Value {
			return breakdown[i].Value > breakdown[j].Value
		}
		return breakdown[i].Name < breakdown[j].Name
	})
	return breakdown
}

// TopCategory returns the leading breakdown entry, or false when the
// breakdown is empty.
func TopCategory(breakdown []CategoryTotal) (CategoryTotal, bool) {
	if len(breakdown) == 0 {
		return CategoryTotal{}, false
	}
	return breakdown[0], true
}

func validAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func parseDay(dateStr string, buckets []Bucket) (time.Time, bool) {
	loc := time.Local
	if len(buckets) > 0 {
		loc = buckets[0].Start.Location()
	}
	return parseDayIn(dateStr, loc)
}

// parseDayIn parses a stored YYYY-MM-DD day string. Stored dates are
// validated at ingestion; anything that still fails to parse is skipped
// by the caller instead of aborting the aggregate.
func parseDayIn(dateStr string, loc *time.Location) (time.Time, bool) {
	day, err := time.ParseInLocation(models.DayFormat, dateStr, loc)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
