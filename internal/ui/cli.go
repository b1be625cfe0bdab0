// Package ui implements the almanac command line interface.
package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"almanac/internal/config"
	"almanac/internal/db"
	"almanac/internal/event"
	"almanac/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	repo   *db.SQLite
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "almanac",
		Short: "A terminal calendar",
		Long: `Almanac is a terminal calendar with month and week views.

Running it without a subcommand opens the interactive TUI. The
subcommands manage events, import and export iCalendar files, and
turn natural language into scheduled events.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.quickCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("almanac %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo lazily opens the configured database.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	return nil
}

// manager loads the stored events into a manager whose mutations are
// mirrored back into the database. Persistence failures print a warning
// instead of failing the command, matching the manager's fire-and-forget
// notification contract.
func (a *App) manager(ctx context.Context) (*event.Manager, error) {
	if err := a.ensureRepo(); err != nil {
		return nil, err
	}
	initial, err := a.repo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}
	hooks := db.PersistHooks(a.repo, func(err error) {
		fmt.Fprintf(os.Stderr, "warning: persisting event: %v\n", err)
	})
	return event.NewManager(initial, hooks), nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database if a command opened it.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
