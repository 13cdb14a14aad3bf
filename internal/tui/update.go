package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"trackit/internal/analytics"
	"trackit/internal/models"
	"trackit/internal/tui/components/expenselist"
	"trackit/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateAddExpense:
		return m.updateAddExpense(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.habitList.SetSize(msg.Width-h, msg.Height-v-4)
		m.expenseList.SetSize(msg.Width-h, msg.Height-v-4)

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{
			Icon:  models.HabitIcons[0],
			Color: models.HabitColors[0],
		}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		m.toggleHabit(msg.ID)
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case expenselist.AddExpenseMsg:
		m.expenseForm = &ExpenseFormModel{
			Category: models.ExpenseCategories[0].Name,
			Date:     analytics.Day(time.Now()).Format(models.DayFormat),
		}
		m.form = newExpenseForm(m.expenseForm)
		m.state = StateAddExpense
		return m, m.form.Init()

	case expenselist.DeleteExpenseMsg:
		m.expenseToDeleteID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Range) && m.state == StateStats:
			m.statsRange = nextRange(m.statsRange)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case StateExpenses:
		m.expenseList, cmd = m.expenseList.Update(msg)
	}

	return m, cmd
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateHabits
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		habit := models.Habit{
			ID:             uuid.New().String(),
			Name:           strings.TrimSpace(m.habitForm.Name),
			Icon:           m.habitForm.Icon,
			Color:          m.habitForm.Color,
			CompletedDates: []string{},
			CreatedAt:      time.Now(),
		}
		habits, err := m.store.GetHabits()
		if err == nil {
			err = m.store.SaveHabits(models.Append(habits, habit))
		}
		if err == nil {
			m.refreshHabits()
			m.state = StateHabits
		} else {
			// Stay in form state on error to allow retry
			m.form.State = huh.StateNormal
		}
	case huh.StateAborted:
		m.state = StateHabits
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateAddExpense(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateExpenses
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		amount, _ := strconv.ParseFloat(strings.TrimSpace(m.expenseForm.Amount), 64)
		expense := models.Expense{
			ID:          uuid.New().String(),
			Amount:      amount,
			Category:    m.expenseForm.Category,
			Description: strings.TrimSpace(m.expenseForm.Description),
			Date:        m.expenseForm.Date,
			CreatedAt:   time.Now(),
		}
		expenses, err := m.store.GetExpenses()
		if err == nil {
			err = m.store.SaveExpenses(models.Append(expenses, expense))
		}
		if err == nil {
			m.refreshExpenses()
			m.state = StateExpenses
		} else {
			m.form.State = huh.StateNormal
		}
	case huh.StateAborted:
		m.state = StateExpenses
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if m.habitToDeleteID != "" {
			m.deleteHabit(m.habitToDeleteID)
		}
		if m.expenseToDeleteID != "" {
			m.deleteExpense(m.expenseToDeleteID)
		}
		fallthrough
	case "n", "N", "esc":
		m.habitToDeleteID = ""
		m.expenseToDeleteID = ""
		m.state = m.previousState
	}

	return m, nil
}

func (m *Model) toggleHabit(id string) {
	habits, err := m.store.GetHabits()
	if err != nil {
		return
	}

	today := analytics.Day(time.Now()).Format(models.DayFormat)
	updated := models.Replace(habits, func(h models.Habit) bool {
		return h.ID == id
	}, func(h models.Habit) models.Habit {
		return h.ToggleCompleted(today)
	})

	if err := m.store.SaveHabits(updated); err == nil {
		m.refreshHabits()
	}
}

func (m *Model) deleteHabit(id string) {
	habits, err := m.store.GetHabits()
	if err != nil {
		return
	}
	remaining := models.Remove(habits, func(h models.Habit) bool {
		return h.ID == id
	})
	if err := m.store.SaveHabits(remaining); err == nil {
		m.refreshHabits()
	}
}

func (m *Model) deleteExpense(id string) {
	expenses, err := m.store.GetExpenses()
	if err != nil {
		return
	}
	remaining := models.Remove(expenses, func(e models.Expense) bool {
		return e.ID == id
	})
	if err := m.store.SaveExpenses(remaining); err == nil {
		m.refreshExpenses()
	}
}

func (m *Model) refreshHabits() {
	habits, err := m.store.GetHabits()
	if err != nil {
		return
	}
	m.habitList.SetHabits(habits, time.Now())
	m.updateValidationStatus()
}

func (m *Model) refreshExpenses() {
	expenses, err := m.store.GetExpenses()
	if err != nil {
		return
	}
	m.expenseList.SetExpenses(expenses)
	m.updateValidationStatus()
}

func nextRange(r analytics.Range) analytics.Range {
	ranges := analytics.Ranges()
	for i, candidate := range ranges {
		if candidate == r {
			return ranges[(i+1)%len(ranges)]
		}
	}
	return ranges[0]
}
