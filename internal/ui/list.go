package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"almanac/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		date string
		week bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long: `List events for a day or a week, grouped by date.

Without flags, lists today's events. --week lists the whole week
containing the chosen date.`,
		Example: `  almanac list
  almanac list --date=2026-09-01
  almanac list --date=2026-09-01 --week`,
		RunE: func(_ *cobra.Command, _ []string) error {
			day := time.Now()
			if date != "" {
				parsed, err := dateutil.ParseDateTime(date)
				if err != nil {
					return fmt.Errorf("parsing date: %w", err)
				}
				day = parsed
			}

			days := []time.Time{dateutil.TruncateToDay(day)}
			if week {
				days = dateutil.WeekGrid(day)
			}

			mgr, err := a.manager(context.Background())
			if err != nil {
				return err
			}

			total := 0
			for _, d := range days {
				events := mgr.OnDay(d)
				if len(events) == 0 {
					continue
				}
				if total > 0 {
					fmt.Println()
				}
				printDayHeading(d.Format("Monday, January 2, 2006"))
				for _, ev := range events {
					fmt.Println(eventLine(ev))
				}
				total += len(events)
			}

			if total == 0 {
				fmt.Println("No events found.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVar(&week, "week", false, "List the whole week containing the date")

	return cmd
}
