package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"trackit/internal/analytics"
	"trackit/internal/models"
	"trackit/internal/storage"
	"trackit/internal/tui/components/expenselist"
	"trackit/internal/tui/components/habitlist"
	"trackit/internal/validation"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateExpenses
	StateStats
	StateAddHabit
	StateAddExpense
	StateConfirmDelete
)

// tabCount is the number of top-level tabs cycled with tab/shift+tab.
const tabCount = 3

type HabitFormModel struct {
	Name  string
	Icon  string
	Color string
}

type ExpenseFormModel struct {
	Amount      string
	Description string
	Category    string
	Date        string
}

type Model struct {
	store             storage.Provider
	state             SessionState
	previousState     SessionState
	keys              KeyMap
	help              help.Model
	habitList         habitlist.Model
	expenseList       expenselist.Model
	form              *huh.Form
	habitForm         *HabitFormModel
	expenseForm       *ExpenseFormModel
	statsRange        analytics.Range
	habitToDeleteID   string
	expenseToDeleteID string
	validationWarning string
	quitting          bool
	width             int
	height            int
}

func NewModel(store storage.Provider) Model {
	habits, err := store.GetHabits()
	if err != nil {
		habits = []models.Habit{}
	}
	expenses, err := store.GetExpenses()
	if err != nil {
		expenses = []models.Expense{}
	}

	m := Model{
		store:       store,
		state:       StateHabits,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		habitList:   habitlist.New(habits, time.Now(), 0, 0),
		expenseList: expenselist.New(expenses, 0, 0),
		statsRange:  analytics.RangeWeekly,
	}

	m.updateValidationStatus()

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHabits:
		keys = append(keys, m.keys.Add, m.keys.Toggle, m.keys.Delete)
	case StateExpenses:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	case StateStats:
		keys = append(keys, m.keys.Range)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateHabits:
		actions = []key.Binding{m.keys.Add, m.keys.Toggle, m.keys.Delete}
	case StateExpenses:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	case StateStats:
		actions = []key.Binding{m.keys.Range}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// updateValidationStatus runs validation and updates the warning message
func (m *Model) updateValidationStatus() {
	habits, err := m.store.GetHabits()
	if err != nil {
		m.validationWarning = "⚠ Validation unavailable"
		return
	}
	expenses, err := m.store.GetExpenses()
	if err != nil {
		m.validationWarning = "⚠ Validation unavailable"
		return
	}

	validator := validation.New()
	habitResult := validator.ValidateHabits(habits)
	expenseResult := validator.ValidateExpenses(expenses)

	total := len(habitResult.Conflicts) + len(expenseResult.Conflicts)
	if total > 0 {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", total)
	} else {
		m.validationWarning = ""
	}
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	iconOptions := make([]huh.Option[string], len(models.HabitIcons))
	for i, icon := range models.HabitIcons {
		iconOptions[i] = huh.NewOption(icon, icon)
	}
	colorOptions := make([]huh.Option[string], len(models.HabitColors))
	for i, color := range models.HabitColors {
		colorOptions[i] = huh.NewOption(color, color)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Icon").
				Options(iconOptions...).
				Value(&fm.Icon),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions...).
				Value(&fm.Color),
		),
	).WithTheme(huh.ThemeDracula())
}

func newExpenseForm(fm *ExpenseFormModel) *huh.Form {
	categoryOptions := make([]huh.Option[string], len(models.ExpenseCategories))
	for i, cat := range models.ExpenseCategories {
		categoryOptions[i] = huh.NewOption(fmt.Sprintf("%s %s", cat.Icon, cat.Name), cat.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Value(&fm.Amount).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("amount must be a number")
					}
					if v <= 0 {
						return fmt.Errorf("amount must be positive")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&fm.Category),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(validation.ValidateDay),
		),
	).WithTheme(huh.ThemeDracula())
}
