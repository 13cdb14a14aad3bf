package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"trackit/internal/cli"
	"trackit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/trackit/trackit.db"`

	Init  cli.InitCmd `cmd:"" help:"Initialize trackit storage."`
	Tui   cli.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List habits with streaks."`
		Toggle cli.HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
	Expense struct {
		Add    cli.ExpenseAddCmd    `cmd:"" help:"Record an expense."`
		List   cli.ExpenseListCmd   `cmd:"" help:"List expenses."`
		Delete cli.ExpenseDeleteCmd `cmd:"" help:"Delete an expense."`
	} `cmd:"" help:"Manage expenses."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show today's dashboard."`
	Report cli.ReportCmd `cmd:"" help:"Show an analytics report for a time range."`
	Chart  cli.ChartCmd  `cmd:"" help:"Render an analytics chart to a PNG."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage backups."`
	Validate cli.ValidateCmd `cmd:"" help:"Check stored data for conflicts."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("trackit"),
		kong.Description("Habit and expense tracker with streaks and spending analytics"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
