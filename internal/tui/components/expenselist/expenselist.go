package expenselist

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"trackit/internal/models"
)

type AddExpenseMsg struct{}

type DeleteExpenseMsg struct {
	ID string
}

type Item struct {
	Expense models.Expense
}

func (i Item) Title() string {
	cat := models.CategoryByName(i.Expense.Category)
	return fmt.Sprintf("%s $%.2f  %s", cat.Icon, i.Expense.Amount, i.Expense.Description)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s | %s", i.Expense.Date, i.Expense.Category)
}

func (i Item) FilterValue() string {
	return i.Expense.Description + " " + i.Expense.Category
}

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(expenses []models.Expense, width, height int) Model {
	l := list.New(toItems(expenses), list.NewDefaultDelegate(), width, height)
	l.Title = "Expenses"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

// toItems sorts newest first so recent spending is on top.
func toItems(expenses []models.Expense) []list.Item {
	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	items := make([]list.Item, len(sorted))
	for i, e := range sorted {
		items[i] = Item{Expense: e}
	}
	return items
}

func (m *Model) SetExpenses(expenses []models.Expense) {
	m.list.SetItems(toItems(expenses))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddExpenseMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteExpenseMsg{ID: i.Expense.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No expenses yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
