package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove an event",
		Long: `Remove an event by its id. Ids are shown by the list command.

Removing an id that does not exist is not an error.`,
		Example: `  almanac remove evt-1756450800000-a1b2c3d4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			mgr, err := a.manager(context.Background())
			if err != nil {
				return err
			}

			if ev := mgr.Find(args[0]); ev != nil {
				fmt.Printf("Removed %s\n", ev.Title)
			} else {
				fmt.Printf("No event with id %s\n", args[0])
			}
			mgr.Delete(args[0])
			return nil
		},
	}
}
