package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command. Running pakuni with no arguments
// launches the same interface.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for PakUni.

The TUI provides live search over universities and scholarships,
favourite management, and cache syncing with keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select
  Tab      - Switch universities/scholarships
  f        - Toggle favourite
  Esc      - Back / Cancel
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Directory:  directoryService,
		Favourites: favouritesService,
		Sync:       syncService,
		Settings:   settingsService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
