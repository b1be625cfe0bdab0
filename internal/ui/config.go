package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"almanac/internal/config"
	"almanac/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.`,
		Example: `  almanac config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)

	if !confirm("\nWould you like to edit the configuration?") {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	cfg.UI.Theme = promptTheme(reader, cfg.UI.Theme)
	cfg.UI.DefaultView = promptValue(reader, "Default view (month/week)", cfg.UI.DefaultView)
	cfg.Calendar.SlotMinutes = promptInt(reader, "Week view slot minutes", cfg.Calendar.SlotMinutes)
	cfg.Calendar.DefaultColor = promptValue(reader, "Default event color", cfg.Calendar.DefaultColor)
	cfg.Calendar.Categories = promptSlice(reader, "Categories (comma-separated)", cfg.Calendar.Categories)
	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)
	cfg.LLM.Provider = promptValue(reader, "LLM provider (openai/ollama)", cfg.LLM.Provider)
	cfg.LLM.Model = promptValue(reader, "LLM model", cfg.LLM.Model)
	cfg.LLM.BaseURL = promptValue(reader, "LLM base URL (empty for provider default)", cfg.LLM.BaseURL)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[ui]")
	fmt.Printf("  theme         = %s\n", cfg.UI.Theme)
	fmt.Printf("  default_view  = %s\n", cfg.UI.DefaultView)
	fmt.Println("\n[calendar]")
	fmt.Printf("  slot_minutes  = %d\n", cfg.Calendar.SlotMinutes)
	fmt.Printf("  default_color = %s\n", cfg.Calendar.DefaultColor)
	fmt.Printf("  categories    = %s\n", strings.Join(cfg.Calendar.Categories, ", "))
	fmt.Printf("  colors        = %s\n", strings.Join(cfg.Calendar.Colors, ", "))
	fmt.Println("\n[storage]")
	fmt.Printf("  db_path       = %s\n", cfg.Storage.DBPath)
	fmt.Println("\n[llm]")
	fmt.Printf("  provider      = %s\n", cfg.LLM.Provider)
	fmt.Printf("  model         = %s\n", cfg.LLM.Model)
	fmt.Printf("  base_url      = %s\n", cfg.LLM.BaseURL)
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	for {
		value := promptValue(reader, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Printf("  Not a number: %q\n", value)
	}
}

func promptSlice(reader *bufio.Reader, label string, current []string) []string {
	input := promptValue(reader, label, strings.Join(current, ", "))
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func promptTheme(reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}
