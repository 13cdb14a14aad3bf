package analytics

import (
	"time"

	"trackit/internal/models"
)

// Streak counts the consecutive completed days ending at today, or at
// yesterday when today is not yet complete: a streak only breaks once a
// day has fully elapsed without a completion. Returns 0 when the
// starting day itself is absent.
func Streak(h models.Habit, today time.Time) int {
	completed := h.CompletedSet()

	cursor := Day(today)
	if !completed[cursor.Format(models.DayFormat)] {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for completed[cursor.Format(models.DayFormat)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak returns the best current streak across the collection,
// 0 for an empty collection.
func LongestStreak(habits []models.Habit, today time.Time) int {
	longest := 0
	for _, h := range habits {
		if s := Streak(h, today); s > longest {
			longest = s
		}
	}
	return longest
}
