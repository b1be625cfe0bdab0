package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"almanac/internal/event"
	"almanac/internal/llm"
)

func (a *App) quickCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "quick [text]",
		Short: "Create events from natural language",
		Long: `Turn a natural-language phrase into one or more events using the
configured language model. The proposed events are shown for
confirmation before anything is created.`,
		Example: `  almanac quick "lunch with Ana tomorrow at noon"
  almanac quick "gym mon/wed/fri at 7am next week" --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := llm.NewClient(a.config.LLM.Provider, a.config.LLM.Model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("configuring language model: %w", err)
			}
			parser := llm.NewParser(client, a.config.Calendar.Categories)

			ctx := context.Background()
			drafts, warnings, err := parser.Parse(ctx, args[0], time.Now())
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Println(colorWarn.Sprint("warning: " + w))
			}
			if len(drafts) == 0 {
				fmt.Println("Nothing to schedule.")
				return nil
			}

			fmt.Println(colorHeader.Sprint("Proposed events:"))
			for _, d := range drafts {
				fmt.Println(draftLine(d))
			}

			if !yes && !confirm("Create these events?") {
				fmt.Println("Aborted.")
				return nil
			}

			mgr, err := a.manager(ctx)
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

			fmt.Println(colorOK.Sprintf("Created %d events", created))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Create without confirmation")

	return cmd
}

func confirm(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
