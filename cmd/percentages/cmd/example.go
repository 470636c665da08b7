package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/config"
)

var exampleOut string

var exampleCmd = &cobra.Command{
	Use:   "example-config",
	Short: "Print or save the built-in configuration",
	Long: `Print the built-in configuration as YAML, or save it with --out.
A path ending in .toml is written as TOML.`,
	Args: cobra.NoArgs,
	RunE: runExample,
}

func init() {
	exampleCmd.Flags().StringVarP(&exampleOut, "out", "o", "", "file to write instead of stdout")
	rootCmd.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, args []string) error {
	cfg := config.NewInputParser().CreateExampleConfiguration()

	if exampleOut != "" {
		if err := config.SaveConfiguration(cfg, exampleOut); err != nil {
			return fmt.Errorf("failed to save example configuration: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", exampleOut)
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode example configuration: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
