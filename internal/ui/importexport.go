package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"almanac/internal/event"
	"almanac/internal/ics"
)

func (a *App) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file.ics]",
		Short: "Import events from an iCalendar file",
		Long: `Import every VEVENT from an iCalendar file into the calendar.

Components the parser cannot read are skipped with a warning instead
of aborting the import.`,
		Example: `  almanac import holidays.ics`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			drafts, warnings, err := ics.Import(f)
			if err != nil {
				return fmt.Errorf("reading calendar: %w", err)
			}
			for _, w := range warnings {
				fmt.Println(colorWarn.Sprint("warning: " + w))
			}

			mgr, err := a.manager(context.Background())
			if err != nil {
				return err
			}

			created := 0
			for _, d := range drafts {
				if _, err := mgr.Add(d); err != nil {
					var verr *event.ValidationError
					if errors.As(err, &verr) {
						fmt.Println(colorWarn.Sprintf("warning: skipping %q: %v", d.Title, err))
						continue
					}
					return err
				}
				created++
			}

			fmt.Println(colorOK.Sprintf("Imported %d events from %s", created, args[0]))
			return nil
		},
	}
}

func (a *App) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export events to an iCalendar file",
		Long:  "Export every stored event as an iCalendar stream, to stdout or a file.",
		Example: `  almanac export
  almanac export --output=calendar.ics`,
		RunE: func(_ *cobra.Command, _ []string) error {
			mgr, err := a.manager(context.Background())
			if err != nil {
				return err
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}

			if err := ics.Export(out, mgr.Events()); err != nil {
				return fmt.Errorf("writing calendar: %w", err)
			}
			if output != "" {
				fmt.Println(colorOK.Sprintf("Exported %d events to %s", mgr.Len(), output))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Destination file (defaults to stdout)")

	return cmd
}
