package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive calculators in the terminal",
	Long: `Start the calculators in the terminal. Results update on every keystroke.

Navigation:
  Tab / Down        - Next field
  Shift+Tab / Up    - Previous field
  Esc / Ctrl+C      - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	// The model logs nothing while the alternate screen is active.
	p := tea.NewProgram(tui.NewModel(cfg, nil), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
