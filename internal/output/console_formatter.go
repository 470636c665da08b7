package output

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
)

const consoleBarWidth = 20

var hundred = decimal.NewFromInt(100)

// ConsoleFormatter prints each calculator as a plain-text card.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string     { return "console" }
func (c ConsoleFormatter) FileName() string { return "percentages.txt" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	for i, calc := range report.Calculators {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		fmt.Fprintln(&buf, calc.Title)
		fmt.Fprintln(&buf, strings.Repeat("=", utf8.RuneCountInString(calc.Title)))
		for _, f := range calc.Fields {
			fmt.Fprintf(&buf, "  %s: %s\n", f.Label, f.Value)
		}
		fmt.Fprintln(&buf, "  "+strings.Repeat("-", consoleBarWidth))
		for _, r := range calc.Rows {
			fmt.Fprintf(&buf, "  %s: %s\n", r.Label, r.Display())
		}
		if calc.HasProgressBar {
			fmt.Fprintf(&buf, "  [%s]\n", TextBar(calc, consoleBarWidth))
		}
	}
	return buf.Bytes(), nil
}

// TextBar draws the completion of a goal tracker as a fixed-width bar.
func TextBar(calc domain.CalculatorReport, width int) string {
	filled := 0
	if calc.Completion.Valid {
		filled = int(calc.Completion.Decimal.Mul(decimal.NewFromInt(int64(width))).Div(hundred).IntPart())
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}
