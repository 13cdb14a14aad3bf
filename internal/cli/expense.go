package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"trackit/internal/analytics"
	"trackit/internal/models"
	"trackit/internal/validation"
)

type ExpenseAddCmd struct {
	Amount      float64 `arg:"" help:"Amount spent."`
	Description string  `arg:"" help:"What the money went to."`
	Category    string  `short:"c" help:"Spending category." default:"Other"`
	Date        string  `short:"d" help:"Day of the expense (YYYY-MM-DD)." default:"today"`
}

func (c *ExpenseAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}
	dayStr := analytics.Day(day).Format(models.DayFormat)

	if err := validation.ValidateNewExpense(c.Amount, c.Description, dayStr); err != nil {
		return err
	}
	if !models.KnownCategory(c.Category) {
		return fmt.Errorf("unknown category %q, pick one of: %s", c.Category, categoryNames())
	}

	expenses, err := ctx.Store.GetExpenses()
	if err != nil {
		return err
	}

	expense := models.Expense{
		ID:          uuid.New().String(),
		Amount:      c.Amount,
		Category:    c.Category,
		Description: c.Description,
		Date:        dayStr,
		CreatedAt:   time.Now(),
	}

	if err := ctx.Store.SaveExpenses(models.Append(expenses, expense)); err != nil {
		return err
	}

	cat := models.CategoryByName(c.Category)
	fmt.Printf("Added expense: %s %s %s on %s (ID: %s)\n",
		cat.Icon, formatMoney(c.Amount), c.Description, dayStr, expense.ID)
	return nil
}

type ExpenseListCmd struct {
	Category string `short:"c" help:"Show only this category."`
	Range    string `short:"r" help:"Show only the current period of a time range (daily|weekly|monthly|yearly)."`
	Limit    int    `short:"n" help:"Show at most N expenses, newest first." default:"20"`
}

func (c *ExpenseListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	expenses, err := ctx.Store.GetExpenses()
	if err != nil {
		return err
	}

	if c.Range != "" {
		r, err := analytics.ParseRange(c.Range)
		if err != nil {
			return err
		}
		start, end := analytics.CurrentPeriod(r, time.Now())
		expenses = filterByPeriod(expenses, start, end)
	}

	if len(expenses) == 0 {
		fmt.Println("No expenses found")
		return nil
	}

	sorted := sortNewestFirst(expenses)

	fmt.Println("Expenses:")
	shown := 0
	for _, e := range sorted {
		if c.Category != "" && e.Category != c.Category {
			continue
		}
		if c.Limit > 0 && shown >= c.Limit {
			break
		}
		cat := models.CategoryByName(e.Category)
		fmt.Printf("  %s  %s %8s  %-30s (ID: %s)\n",
			e.Date, cat.Icon, formatMoney(e.Amount), e.Description, e.ID)
		shown++
	}
	if shown == 0 {
		fmt.Println("  No expenses match the filter")
	}

	return nil
}

type ExpenseDeleteCmd struct {
	ID string `arg:"" help:"Expense ID to delete."`
}

func (c *ExpenseDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	expenses, err := ctx.Store.GetExpenses()
	if err != nil {
		return err
	}

	expense, err := findExpense(expenses, c.ID)
	if err != nil {
		return err
	}

	remaining := models.Remove(expenses, func(e models.Expense) bool {
		return e.ID == expense.ID
	})

	if err := ctx.Store.SaveExpenses(remaining); err != nil {
		return err
	}

	fmt.Printf("Deleted expense: %s %s (ID: %s)\n",
		formatMoney(expense.Amount), expense.Description, expense.ID)
	return nil
}

// filterByPeriod keeps expenses whose date falls inside the inclusive
// day bounds. Unparseable dates are dropped from the filtered view.
func filterByPeriod(expenses []models.Expense, start, end time.Time) []models.Expense {
	window := analytics.Bucket{Start: start, End: end}
	var out []models.Expense
	for _, e := range expenses {
		day, err := time.ParseInLocation(models.DayFormat, e.Date, start.Location())
		if err != nil {
			continue
		}
		if window.Contains(day) {
			out = append(out, e)
		}
	}
	return out
}

func categoryNames() string {
	names := ""
	for i, cat := range models.ExpenseCategories {
		if i > 0 {
			names += ", "
		}
		names += cat.Name
	}
	return names
}
