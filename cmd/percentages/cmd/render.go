package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/output"
)

var (
	renderOut     string
	renderFormats []string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the page and its data files",
	Long: fmt.Sprintf(`Render the calculators with their configured inputs and write one file per
format into the output directory.

Formats: %s
Aliases: %s`, strings.Join(output.AvailableFormatterNames(), ", "), strings.Join(output.AvailableFormatAliases(), ", ")),
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output directory (default: output.directory from the configuration)")
	renderCmd.Flags().StringSliceVarP(&renderFormats, "format", "f", nil, "formats to write (default: output.formats from the configuration)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	dir := cfg.Output.Directory
	if renderOut != "" {
		dir = renderOut
	}
	formats := cfg.Output.Formats
	if len(renderFormats) > 0 {
		formats = renderFormats
	}

	engine := newEngine(cmd)
	report := engine.BuildReport(cfg)
	paths, err := output.GenerateReport(report, dir, formats...)
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	engine.Logger.Infof("wrote %d files to %s", len(paths), dir)

	for _, path := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
