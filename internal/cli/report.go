package cli

import (
	"fmt"
	"strings"
	"time"

	"trackit/internal/analytics"
	"trackit/internal/models"
)

type ReportCmd struct {
	Range string `short:"r" help:"Time range (daily|weekly|monthly|yearly)." default:"weekly"`
}

func (c *ReportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	r, err := analytics.ParseRange(c.Range)
	if err != nil {
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

	today := time.Now()
	buckets := analytics.Buckets(r, today)
	habitSeries := analytics.HabitSeries(habits, buckets)
	expenseSeries := analytics.ExpenseSeries(expenses, buckets)
	summary := analytics.Summarize(habitSeries, expenseSeries)
	period := analytics.ExpensePeriod(expenses, r, today)

	fmt.Printf("Report (%s)\n\n", r)

	fmt.Println("Habit completions:")
	printSeries(habitSeries, func(v float64) string { return fmt.Sprintf("%.0f", v) })
	fmt.Println()

	fmt.Println("Spending:")
	printSeries(expenseSeries, func(v float64) string { return formatMoney(v) })
	fmt.Println()

	fmt.Printf("Current period (%s to %s):\n",
		period.Start.Format(models.DayFormat), period.End.Format(models.DayFormat))
	fmt.Printf("  Total spent:    %s\n", formatMoney(period.Total))
	fmt.Printf("  Daily average:  %s\n", formatMoney(period.DailyAverage))
	if top, ok := analytics.TopCategory(period.Breakdown); ok {
		cat := models.CategoryByName(top.Name)
		fmt.Printf("  Top category:   %s %s (%s)\n", cat.Icon, top.Name, formatMoney(top.Value))
	}
	if len(period.Breakdown) > 0 {
		fmt.Println("  By category:")
		for _, c := range period.Breakdown {
			cat := models.CategoryByName(c.Name)
			fmt.Printf("    %s %-15s %s\n", cat.Icon, c.Name, formatMoney(c.Value))
		}
	}
	fmt.Println()

	fmt.Println("Totals across buckets:")
	for _, line := range summaryLines(summary) {
		fmt.Println(line)
	}

	return nil
}

func summaryLines(s analytics.Summary) []string {
	return []string{
		fmt.Sprintf("  Completions: %d (avg %.1f per bucket)",
			s.TotalCompletions, s.AvgCompletionsPerBucket),
		fmt.Sprintf("  Spent:       %s (avg %s per bucket)",
			formatMoney(s.TotalSpent), formatMoney(s.AvgSpentPerBucket)),
	}
}

func printSeries(points []analytics.SeriesPoint, format func(float64) string) {
	maxValue := 0.0
	for _, p := range points {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}

	for _, p := range points {
		bar := ""
		if maxValue > 0 {
			width := int(p.Value / maxValue * 30)
			bar = strings.Repeat("█", width)
		}
		fmt.Printf("  %-8s %-30s %s\n", p.Label, bar, format(p.Value))
	}
}
