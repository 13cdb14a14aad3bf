package models

import "time"

// Expense represents a single spending record attributed to a calendar day.
type Expense struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseCategory pairs a category name with its presentation tokens.
type ExpenseCategory struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ExpenseCategories is the fixed category set. "Other" doubles as the
// fallback for unknown or legacy category strings.
var ExpenseCategories = []ExpenseCategory{
	{Name: "Food", Icon: "🍔", Color: "hsl(24 85% 55%)"},
	{Name: "Transport", Icon: "🚗", Color: "hsl(210 70% 55%)"},
	{Name: "Shopping", Icon: "🛍️", Color: "hsl(280 70% 55%)"},
	{Name: "Entertainment", Icon: "🎬", Color: "hsl(340 70% 55%)"},
	{Name: "Bills", Icon: "📄", Color: "hsl(45 90% 55%)"},
	{Name: "Health", Icon: "💊", Color: "hsl(150 60% 45%)"},
	{Name: "Education", Icon: "📚", Color: "hsl(180 60% 45%)"},
	{Name: "Other", Icon: "📦", Color: "hsl(0 0% 50%)"},
}

// CategoryByName looks up a category by name. Unknown names resolve to
// the "Other" category so every expense renders with some icon and color.
func CategoryByName(name string) ExpenseCategory {
	for _, c := range ExpenseCategories {
		if c.Name == name {
			return c
		}
	}
	return ExpenseCategories[len(ExpenseCategories)-1]
}

// KnownCategory reports whether name is one of the fixed category names.
func KnownCategory(name string) bool {
	for _, c := range ExpenseCategories {
		if c.Name == name {
			return true
		}
	}
	return false
}
