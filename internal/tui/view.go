package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"trackit/internal/analytics"
	"trackit/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateExpenses:
		content = docStyle.Render(m.expenseList.View())
	case StateStats:
		content = docStyle.Render(m.viewStats())
	case StateAddHabit, StateAddExpense:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	sections := []string{m.viewTabs(), content}
	if m.validationWarning != "" {
		sections = append(sections, dangerStyle.Render(m.validationWarning))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Expenses", "Stats"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStats() string {
	habits, err := m.store.GetHabits()
	if err != nil {
		return "Unable to load habits"
	}
	expenses, err := m.store.GetExpenses()
	if err != nil {
		return "Unable to load expenses"
	}

	today := time.Now()
	stats := analytics.Dashboard(habits, expenses, today)
	buckets := analytics.Buckets(m.statsRange, today)
	habitSeries := analytics.HabitSeries(habits, buckets)
	period := analytics.ExpensePeriod(expenses, m.statsRange, today)

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n",
		statLabelStyle.Render("Range:"),
		statValueStyle.Render(string(m.statsRange)))

	fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n",
		statLabelStyle.Render("Today:"),
		statValueStyle.Render(fmt.Sprintf("%d/%d habits", stats.CompletedToday, stats.TotalHabits)),
		statLabelStyle.Render("Rate:"),
		statValueStyle.Render(fmt.Sprintf("%d%%", stats.CompletionRate)),
		statLabelStyle.Render("Streak:"),
		statValueStyle.Render(fmt.Sprintf("%d", stats.LongestStreak)))

	fmt.Fprintf(&b, "%s %s   %s %s\n\n",
		statLabelStyle.Render("Spent today:"),
		statValueStyle.Render(fmt.Sprintf("$%.2f", stats.TodayTotal)),
		statLabelStyle.Render("This month:"),
		statValueStyle.Render(fmt.Sprintf("$%.2f", stats.MonthTotal)))

	b.WriteString("Completions:\n")
	b.WriteString(sparkline(habitSeries))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Spending %s to %s: $%.2f ($%.2f/day)\n",
		period.Start.Format(models.DayFormat),
		period.End.Format(models.DayFormat),
		period.Total, period.DailyAverage)
	for _, c := range period.Breakdown {
		cat := models.CategoryByName(c.Name)
		fmt.Fprintf(&b, "  %s %-15s $%.2f\n", cat.Icon, c.Name, c.Value)
	}
	if len(period.Breakdown) == 0 {
		b.WriteString("  No spending in this period\n")
	}

	return b.String()
}

// sparkline renders a series as one row of block glyphs with labels
// underneath.
func sparkline(points []analytics.SeriesPoint) string {
	glyphs := []rune("▁▂▃▄▅▆▇█")

	maxValue := 0.0
	for _, p := range points {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}

	var bars, labels strings.Builder
	for _, p := range points {
		idx := 0
		if maxValue > 0 {
			idx = int(p.Value / maxValue * float64(len(glyphs)-1))
		}
		width := len([]rune(p.Label)) + 1
		bars.WriteString(fmt.Sprintf("%-*s", width, string(glyphs[idx])))
		labels.WriteString(fmt.Sprintf("%-*s", width, p.Label))
	}

	return "  " + bars.String() + "\n  " + statLabelStyle.Render(labels.String())
}

func (m Model) viewConfirmDelete() string {
	subject := "habit"
	if m.expenseToDeleteID != "" {
		subject = "expense"
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Are you sure you want to delete this %s?", subject)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
