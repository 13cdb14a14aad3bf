package cli

import (
	"fmt"
	"time"

	"trackit/internal/analytics"
	"trackit/internal/models"
)

// recentExpenseCount is how many of the newest expenses the dashboard
// shows under the scalar stats.
const recentExpenseCount = 3

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}
	expenses, err := ctx.Store.GetExpenses()
	if err != nil {
		return err
	}

	stats := analytics.Dashboard(habits, expenses, time.Now())

	fmt.Println("Today:")
	fmt.Printf("  Habits completed:  %d/%d\n", stats.CompletedToday, stats.TotalHabits)
	fmt.Printf("  Spent today:       %s\n", formatMoney(stats.TodayTotal))
	fmt.Println()
	fmt.Println("This month:")
	fmt.Printf("  Completion rate:   %d%%\n", stats.CompletionRate)
	fmt.Printf("  Spent this month:  %s\n", formatMoney(stats.MonthTotal))
	fmt.Println()
	fmt.Printf("Longest streak:      %d day(s)\n", stats.LongestStreak)

	if recent := recentExpenses(expenses, recentExpenseCount); len(recent) > 0 {
		fmt.Println()
		fmt.Println("Recent expenses:")
		for _, e := range recent {
			cat := models.CategoryByName(e.Category)
			fmt.Printf("  %s  %s %8s  %s\n", e.Date, cat.Icon, formatMoney(e.Amount), e.Description)
		}
	}

	return nil
}

// recentExpenses returns up to n expenses, newest first.
func recentExpenses(expenses []models.Expense, n int) []models.Expense {
	sorted := sortNewestFirst(expenses)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
