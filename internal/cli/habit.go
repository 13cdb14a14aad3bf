package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"trackit/internal/analytics"
	"trackit/internal/models"
	"trackit/internal/validation"
)

type HabitAddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Icon  string `short:"i" help:"Emoji shown next to the habit."`
	Color string `short:"c" help:"Accent color (hsl string)."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := validation.ValidateNewHabit(c.Name); err != nil {
		return err
	}

	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}

	// Cycle the palettes so consecutive habits look distinct
	icon := c.Icon
	if icon == "" {
		icon = models.HabitIcons[len(habits)%len(models.HabitIcons)]
	}
	color := c.Color
	if color == "" {
		color = models.HabitColors[len(habits)%len(models.HabitColors)]
	}

	habit := models.Habit{
		ID:             uuid.New().String(),
		Name:           c.Name,
		Icon:           icon,
		Color:          color,
		CompletedDates: []string{},
		CreatedAt:      time.Now(),
	}

	if err := ctx.Store.SaveHabits(models.Append(habits, habit)); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s (ID: %s)\n", icon, c.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	today := time.Now()
	todayStr := analytics.Day(today).Format(models.DayFormat)

	fmt.Println("Habits:")
	for _, h := range habits {
		status := " "
		if h.CompletedOn(todayStr) {
			status = "✓"
		}
		streak := analytics.Streak(h, today)
		fmt.Printf("  [%s] %s %-20s %s  streak: %d\n",
			status, h.Icon, h.Name, weekStrip(h, today), streak)
	}

	return nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit ID or name."`
	Date  string `short:"d" help:"Day to toggle (YYYY-MM-DD)." default:"today"`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}
	dayStr := analytics.Day(day).Format(models.DayFormat)

	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}

	habit, err := findHabit(habits, c.Habit)
	if err != nil {
		return err
	}

	updated := models.Replace(habits, func(h models.Habit) bool {
		return h.ID == habit.ID
	}, func(h models.Habit) models.Habit {
		return h.ToggleCompleted(dayStr)
	})

	if err := ctx.Store.SaveHabits(updated); err != nil {
		return err
	}

	if habit.CompletedOn(dayStr) {
		fmt.Printf("Unmarked %s for %s\n", habit.Name, dayStr)
	} else {
		fmt.Printf("Completed %s for %s\n", habit.Name, dayStr)
	}
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit ID or name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}

	habit, err := findHabit(habits, c.Habit)
	if err != nil {
		return err
	}

	remaining := models.Remove(habits, func(h models.Habit) bool {
		return h.ID == habit.ID
	})

	if err := ctx.Store.SaveHabits(remaining); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}
