package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"almanac/internal/dateutil"
	"almanac/internal/event"
)

func (a *App) addCmd() *cobra.Command {
	var (
		start       string
		end         string
		description string
		category    string
		color       string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new event",
		Long: `Add a new event to the calendar.

Dates take either "YYYY-MM-DD HH:MM" or a bare "YYYY-MM-DD", which
means midnight. A missing end defaults to one hour after the start.`,
		Example: `  almanac add "Team retro" --start="2026-09-01 15:00" --end="2026-09-01 16:00"
  almanac add "Conference" --start=2026-09-03 --category=Work`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			startAt, err := dateutil.ParseDateTime(start)
			if err != nil {
				return fmt.Errorf("parsing start: %w", err)
			}
			endAt := startAt.Add(time.Hour)
			if end != "" {
				endAt, err = dateutil.ParseDateTime(end)
				if err != nil {
					return fmt.Errorf("parsing end: %w", err)
				}
			}

			mgr, err := a.manager(context.Background())
			if err != nil {
				return err
			}

			created, err := mgr.Add(event.Draft{
				Title:       args[0],
				Description: description,
				StartDate:   startAt,
				EndDate:     endAt,
				Category:    category,
				Color:       color,
			})
			if err != nil {
				var verr *event.ValidationError
				if errors.As(err, &verr) {
					for _, v := range verr.Violations {
						fmt.Println(colorWarn.Sprint("  " + v))
					}
					return fmt.Errorf("event is invalid")
				}
				return err
			}

			fmt.Println(colorOK.Sprint("Created:"))
			fmt.Println(eventLine(created))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", `Start ("YYYY-MM-DD HH:MM", required)`)
	cmd.Flags().StringVar(&end, "end", "", "End (defaults to start + 1h)")
	cmd.Flags().StringVar(&description, "description", "", "Longer description")
	cmd.Flags().StringVar(&category, "category", "", "Category label")
	cmd.Flags().StringVar(&color, "color", "", "Hex color like #3b82f6")

	_ = cmd.MarkFlagRequired("start")

	return cmd
}
