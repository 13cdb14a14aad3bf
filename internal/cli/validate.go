package cli

import (
	"fmt"

	"trackit/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	expenses, err := ctx.Store.GetExpenses()
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}

	validator := validation.New()

	fmt.Println("Validating habits...")
	habitResult := validator.ValidateHabits(habits)

	fmt.Println("Validating expenses...")
	expenseResult := validator.ValidateExpenses(expenses)

	combined := validation.ValidationResult{
		Conflicts: append(habitResult.Conflicts, expenseResult.Conflicts...),
	}

	fmt.Println()
	fmt.Println(combined.FormatReport())

	// Conflicts are reported, not treated as a command failure
	return nil
}
