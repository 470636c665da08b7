package output

import (
	"bytes"
	"encoding/csv"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
)

// CSVFormatter writes one row per calculator result.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string     { return "csv" }
func (c CSVFormatter) FileName() string { return "percentages.csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"calculator", "key", "value", "display"}); err != nil {
		return nil, err
	}
	for _, calc := range buildRecords(report).Calculators {
		for _, r := range calc.Results {
			value := ""
			if r.Value != nil {
				value = *r.Value
			}
			if err := w.Write([]string{calc.Calculator, r.Key, value, r.Display}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
