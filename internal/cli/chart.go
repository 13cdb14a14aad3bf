package cli

import (
	"fmt"
	"os"
	"time"

	"trackit/internal/analytics"
	"trackit/internal/charts"
)

type ChartCmd struct {
	Kind  string `arg:"" help:"What to chart (habits|expenses|categories)." default:"habits"`
	Range string `short:"r" help:"Time range (daily|weekly|monthly|yearly)." default:"weekly"`
	Out   string `short:"o" help:"Output PNG path." default:"chart.png"`
}

func (c *ChartCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	r, err := analytics.ParseRange(c.Range)
	if err != nil {
		return err
	}

	today := time.Now()
	gen := charts.NewChartGenerator()

	var data []byte
	switch c.Kind {
	case "habits":
		habits, err := ctx.Store.GetHabits()
		if err != nil {
			return err
		}
		series := analytics.HabitSeries(habits, analytics.Buckets(r, today))
		data, err = gen.RenderSeries(fmt.Sprintf("Habit completions (%s)", r), series, charts.CountFormatter)
		if err != nil {
			return err
		}
	case "expenses":
		expenses, err := ctx.Store.GetExpenses()
		if err != nil {
			return err
		}
		series := analytics.ExpenseSeries(expenses, analytics.Buckets(r, today))
		data, err = gen.RenderSeries(fmt.Sprintf("Spending (%s)", r), series, charts.CurrencyFormatter)
		if err != nil {
			return err
		}
	case "categories":
		expenses, err := ctx.Store.GetExpenses()
		if err != nil {
			return err
		}
		period := analytics.ExpensePeriod(expenses, r, today)
		data, err = gen.RenderBreakdown(fmt.Sprintf("Spending by category (%s)", r), period.Breakdown)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid chart kind %q, use habits, expenses, or categories", c.Kind)
	}

	if err := os.WriteFile(c.Out, data, 0644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	fmt.Printf("Wrote chart to %s\n", c.Out)
	return nil
}
