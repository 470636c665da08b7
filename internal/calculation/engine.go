package calculation

import (
	"errors"
	"fmt"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
)

// ErrUnknownCalculator is returned for a calculator kind the engine does not know.
var ErrUnknownCalculator = errors.New("unknown calculator")

// Engine evaluates the calculators and assembles reports for the formatters
type Engine struct {
	Logger Logger
}

// NewEngine creates a new calculation engine
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Evaluate runs all three calculators against their inputs
func (e *Engine) Evaluate(in domain.CalculatorInputs) domain.CalculatorResults {
	results := domain.CalculatorResults{
		Discount: CalculateDiscount(in.Discount),
		Tip:      CalculateTip(in.Tip),
		Progress: CalculateProgress(in.Progress),
	}
	if !results.Discount.FinalPrice.Valid {
		e.Logger.Debugf("discount undefined: price=%q percent=%q", in.Discount.OriginalPrice, in.Discount.DiscountPercent)
	}
	if !results.Tip.TotalAmount.Valid {
		e.Logger.Debugf("tip undefined: bill=%q percent=%q diners=%q", in.Tip.BillAmount, in.Tip.TipPercent, in.Tip.DinerCount)
	} else if !results.Tip.PerPersonAmount.Valid {
		e.Logger.Debugf("tip per-person share undefined: diners=%q", in.Tip.DinerCount)
	}
	if !results.Progress.RemainingAmount.Valid {
		e.Logger.Debugf("progress undefined: target=%q current=%q", in.Progress.TargetValue, in.Progress.CurrentValue)
	}
	return results
}

// BuildReport evaluates every calculator and returns the full page report
func (e *Engine) BuildReport(config *domain.Configuration) *domain.Report {
	results := e.Evaluate(config.Calculators)
	report := newReport(config)
	for _, kind := range domain.CalculatorKinds {
		report.Calculators = append(report.Calculators, calculatorReport(kind, config, results))
	}
	e.Logger.Infof("built report with %d calculators", len(report.Calculators))
	return report
}

// BuildCalculatorReport returns a report holding only the given calculator
func (e *Engine) BuildCalculatorReport(kind domain.CalculatorKind, config *domain.Configuration) (*domain.Report, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalculator, kind)
	}
	results := e.Evaluate(config.Calculators)
	report := newReport(config)
	report.Calculators = []domain.CalculatorReport{calculatorReport(kind, config, results)}
	return report, nil
}

func newReport(config *domain.Configuration) *domain.Report {
	return &domain.Report{Site: config.Site, Content: config.Content}
}

func calculatorReport(kind domain.CalculatorKind, config *domain.Configuration, results domain.CalculatorResults) domain.CalculatorReport {
	text := domain.Copy[kind]
	in := config.Calculators
	d := config.Display
	report := domain.CalculatorReport{Kind: kind, Title: text.Title, Description: text.Description}

	field := func(key, value, mode string) domain.InputField {
		return domain.InputField{Key: key, Label: text.Labels[key], Value: value, Placeholder: text.Placeholders[key], InputMode: mode}
	}
	currency := func(key string, digits int) domain.ResultRow {
		return domain.ResultRow{Key: key, Label: text.Labels[key], Kind: domain.ValueCurrency, Digits: digits}
	}
	percent := func(key string) domain.ResultRow {
		return domain.ResultRow{Key: key, Label: text.Labels[key], Kind: domain.ValuePercent, Digits: d.PercentDigits}
	}

	switch kind {
	case domain.CalculatorDiscount:
		report.Fields = []domain.InputField{
			field(domain.KeyOriginalPrice, in.Discount.OriginalPrice, "decimal"),
			field(domain.KeyDiscountPercent, in.Discount.DiscountPercent, "decimal"),
		}
		final, saved := currency(domain.KeyFinalPrice, d.DiscountCurrencyDigits), currency(domain.KeySavedAmount, d.DiscountCurrencyDigits)
		final.Value, saved.Value = results.Discount.FinalPrice, results.Discount.SavedAmount
		report.Rows = []domain.ResultRow{final, saved}

	case domain.CalculatorTip:
		report.Fields = []domain.InputField{
			field(domain.KeyBillAmount, in.Tip.BillAmount, "decimal"),
			field(domain.KeyTipPercent, in.Tip.TipPercent, "decimal"),
			field(domain.KeyDinerCount, in.Tip.DinerCount, "numeric"),
		}
		tip := currency(domain.KeyTipAmount, d.TipCurrencyDigits)
		total := currency(domain.KeyTotalAmount, d.TipCurrencyDigits)
		perPerson := currency(domain.KeyPerPersonAmount, d.TipCurrencyDigits)
		tip.Value, total.Value, perPerson.Value = results.Tip.TipAmount, results.Tip.TotalAmount, results.Tip.PerPersonAmount
		report.Rows = []domain.ResultRow{tip, total, perPerson}

	case domain.CalculatorProgress:
		report.Fields = []domain.InputField{
			field(domain.KeyTargetValue, in.Progress.TargetValue, "decimal"),
			field(domain.KeyCurrentValue, in.Progress.CurrentValue, "decimal"),
		}
		completion := percent(domain.KeyCompletionPercent)
		remaining := currency(domain.KeyRemainingAmount, d.ProgressCurrencyDigits)
		difference := percent(domain.KeyDifferencePercent)
		completion.Value = results.Progress.CompletionPercent
		remaining.Value = results.Progress.RemainingAmount
		difference.Value = results.Progress.DifferencePercent
		report.Rows = []domain.ResultRow{completion, remaining, difference}
		report.Completion = results.Progress.CompletionPercent
		report.HasProgressBar = true
	}
	return report
}
