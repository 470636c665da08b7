package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/calculation"
	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/config"
	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "percentages",
	Short: "Everyday percentage calculators",
	Long: `percentages renders a Hebrew right-to-left page that teaches percentages
through three calculators:

  discount  - price after a percentage discount
  tip       - tip, total and per-diner share of a restaurant bill
  progress  - completion of a goal and the remaining amount

The page content, calculator inputs and display precision come from a YAML
or TOML configuration file. Without --config the built-in content is used.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file, YAML or TOML (default: built-in content)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log to stderr at this level: debug, info, warn or error")
}

func loadConfiguration() (*domain.Configuration, error) {
	parser := config.NewInputParser()
	if cfgFile == "" {
		return parser.CreateExampleConfiguration(), nil
	}
	cfg, err := parser.LoadFromFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	switch {
	case verbose:
		engine.SetLogger(calculation.NewStdLogger(cmd.ErrOrStderr(), calculation.LevelDebug))
	case logLevel != "":
		engine.SetLogger(calculation.NewStdLogger(cmd.ErrOrStderr(), calculation.ParseLevel(logLevel)))
	}
	return engine
}
