// Command forgewright launches the Fantasy Forgewright command palette: it
// loads settings, builds the command registry and dispatcher, registers the
// built-in editor command set, and runs the palette TUI on top.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wellingtongranja/fantasy-forgewright-sub001/internal/commands"
	"github.com/wellingtongranja/fantasy-forgewright-sub001/internal/config"
	"github.com/wellingtongranja/fantasy-forgewright-sub001/internal/editor"
	"github.com/wellingtongranja/fantasy-forgewright-sub001/internal/tui/components/palette"
)

var version = "dev"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "forgewright",
	Short: "Fantasy Forgewright command palette",
	Long: `Fantasy Forgewright is a markdown editor; this binary runs its
command palette shell: type to fuzzy-search commands, confirm to execute.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPalette()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("forgewright", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $XDG_CONFIG_HOME/forgewright/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.AddCommand(versionCmd)
}

func runPalette() error {
	settings, err := config.Load(cfgFile)
	if err != nil {
		slog.Warn("Falling back to default settings", "error", err)
	}

	level := settings.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	registry := commands.NewRegistry()
	executor := commands.NewExecutor(registry, commands.NewHistory(settings.HistoryLimit))

	ed := editor.New()
	ed.SetTheme(settings.Theme)
	if err := editor.RegisterBuiltins(registry, executor, ed); err != nil {
		return fmt.Errorf("registering built-in commands: %w", err)
	}

	// Passive observer of the dispatcher's notification surface: every
	// execution outcome lands in the log regardless of who triggered it.
	cancel := executor.Subscribe(func(ev commands.Event) {
		switch ev.Type {
		case commands.EventExecute:
			slog.Info("Command executed",
				"event_id", ev.ID,
				"command", ev.Command.Name,
				"args", ev.Args,
			)
		case commands.EventError:
			slog.Warn("Command failed",
				"event_id", ev.ID,
				"input", ev.Input,
				"error", ev.Err,
			)
		}
	})
	defer cancel()

	program := tea.NewProgram(palette.New(registry, executor, settings.PageSize))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running palette: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
