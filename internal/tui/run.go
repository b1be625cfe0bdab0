package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"almanac/internal/config"
	"almanac/internal/db"
	"almanac/internal/event"
)

// persistErrMsg surfaces a background persistence failure in the footer.
type persistErrMsg struct {
	err error
}

// Run opens the configured database, loads the stored events, and starts
// the TUI. Mutations made in the UI are mirrored into the database through
// the manager's hooks.
func Run(cfg *config.Config) error {
	repo, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer repo.Close()

	initial, err := repo.ListEvents(context.Background())
	if err != nil {
		return fmt.Errorf("loading events: %w", err)
	}

	var p *tea.Program
	hooks := db.PersistHooks(repo, func(err error) {
		if p != nil {
			p.Send(persistErrMsg{err: err})
		}
	})

	model := New(cfg, event.NewManager(initial, hooks))
	p = tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
