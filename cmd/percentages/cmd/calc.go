package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/output"
)

var calcFormat string

// Calculator inputs; flags left unset keep the configured values
var (
	discountPrice   string
	discountPercent string
	tipBill         string
	tipPercent      string
	tipDiners       string
	progressTarget  string
	progressCurrent string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run a single calculator",
	Long: `Run one calculator and print its inputs and results.

Numbers are read the way the page reads them: a comma may stand in for the
decimal point, and anything that is not a finite number shows as "—".`,
}

var discountCmd = &cobra.Command{
	Use:   "discount",
	Short: "Price after a percentage discount",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalc(cmd, domain.CalculatorDiscount, func(in *domain.CalculatorInputs) {
			override(cmd, "price", &in.Discount.OriginalPrice, discountPrice)
			override(cmd, "percent", &in.Discount.DiscountPercent, discountPercent)
		})
	},
}

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Tip, total and per-diner share of a bill",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalc(cmd, domain.CalculatorTip, func(in *domain.CalculatorInputs) {
			override(cmd, "bill", &in.Tip.BillAmount, tipBill)
			override(cmd, "tip", &in.Tip.TipPercent, tipPercent)
			override(cmd, "diners", &in.Tip.DinerCount, tipDiners)
		})
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Completion of a goal and the remaining amount",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalc(cmd, domain.CalculatorProgress, func(in *domain.CalculatorInputs) {
			override(cmd, "target", &in.Progress.TargetValue, progressTarget)
			override(cmd, "current", &in.Progress.CurrentValue, progressCurrent)
		})
	},
}

func init() {
	calcCmd.PersistentFlags().StringVarP(&calcFormat, "format", "f", "console", "output format: console, json, yaml or csv")

	discountCmd.Flags().StringVar(&discountPrice, "price", "", "original price")
	discountCmd.Flags().StringVar(&discountPercent, "percent", "", "discount percentage")

	tipCmd.Flags().StringVar(&tipBill, "bill", "", "bill amount")
	tipCmd.Flags().StringVar(&tipPercent, "tip", "", "tip percentage")
	tipCmd.Flags().StringVar(&tipDiners, "diners", "", "number of diners")

	progressCmd.Flags().StringVar(&progressTarget, "target", "", "goal value")
	progressCmd.Flags().StringVar(&progressCurrent, "current", "", "value reached so far")

	calcCmd.AddCommand(discountCmd, tipCmd, progressCmd)
	rootCmd.AddCommand(calcCmd)
}

// override replaces a configured input when its flag was given, even as ""
func override(cmd *cobra.Command, flag string, field *string, value string) {
	if cmd.Flags().Changed(flag) {
		*field = value
	}
}

func runCalc(cmd *cobra.Command, kind domain.CalculatorKind, apply func(*domain.CalculatorInputs)) error {
	formatter := output.GetFormatterByName(calcFormat)
	if formatter == nil {
		return output.UnsupportedFormatError(calcFormat)
	}

	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}
	apply(&cfg.Calculators)

	report, err := newEngine(cmd).BuildCalculatorReport(kind, cfg)
	if err != nil {
		return err
	}
	data, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format %s result: %w", kind, err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
