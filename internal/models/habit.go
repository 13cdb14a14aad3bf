package models

import "time"

// DayFormat is the calendar-day layout used everywhere a date is stored.
const DayFormat = "2006-01-02"

// Habit represents a recurring practice to track
type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Icon           string    `json:"icon"`
	Color          string    `json:"color"`
	CompletedDates []string  `json:"completed_dates"`
	CreatedAt      time.Time `json:"created_at"`
}

// CompletedOn reports whether the habit was marked complete on the given day.
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// CompletedSet returns the completed days as a set for O(1) membership tests.
func (h Habit) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(h.CompletedDates))
	for _, d := range h.CompletedDates {
		set[d] = true
	}
	return set
}

// ToggleCompleted returns a copy of the habit with the day's completion
// flipped: present days are removed, absent days are appended. The
// completed-dates list keeps set semantics, never a counter.
func (h Habit) ToggleCompleted(day string) Habit {
	if h.CompletedOn(day) {
		dates := make([]string, 0, len(h.CompletedDates))
		for _, d := range h.CompletedDates {
			if d != day {
				dates = append(dates, d)
			}
		}
		h.CompletedDates = dates
		return h
	}

	dates := make([]string, 0, len(h.CompletedDates)+1)
	dates = append(dates, h.CompletedDates...)
	dates = append(dates, day)
	h.CompletedDates = dates
	return h
}

// Presentation palettes for habit creation.
var (
	HabitIcons = []string{"🏃", "📚", "💧", "🧘", "💪", "🍎", "😴", "✍️", "🎯", "💡", "🎵", "🌱"}

	HabitColors = []string{
		"hsl(24 85% 55%)",
		"hsl(150 60% 45%)",
		"hsl(210 70% 55%)",
		"hsl(280 70% 55%)",
		"hsl(340 70% 55%)",
		"hsl(45 90% 55%)",
	}
)
