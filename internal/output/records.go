package output

import (
	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
)

// resultRecord is one result row in the machine-readable formats. Value is
// nil when the result is undefined.
type resultRecord struct {
	Key     string  `json:"key" yaml:"key"`
	Label   string  `json:"label" yaml:"label"`
	Kind    string  `json:"kind" yaml:"kind"`
	Value   *string `json:"value" yaml:"value"`
	Display string  `json:"display" yaml:"display"`
}

type calculatorRecord struct {
	Calculator string            `json:"calculator" yaml:"calculator"`
	Title      string            `json:"title" yaml:"title"`
	Inputs     map[string]string `json:"inputs" yaml:"inputs"`
	Results    []resultRecord    `json:"results" yaml:"results"`
}

type reportRecord struct {
	Title       string             `json:"title" yaml:"title"`
	Lang        string             `json:"lang" yaml:"lang"`
	Dir         string             `json:"dir" yaml:"dir"`
	Calculators []calculatorRecord `json:"calculators" yaml:"calculators"`
}

func buildRecords(report *domain.Report) reportRecord {
	rec := reportRecord{
		Title:       report.Site.Title,
		Lang:        report.Site.Lang,
		Dir:         report.Site.Dir,
		Calculators: make([]calculatorRecord, 0, len(report.Calculators)),
	}
	for _, c := range report.Calculators {
		cr := calculatorRecord{
			Calculator: string(c.Kind),
			Title:      c.Title,
			Inputs:     make(map[string]string, len(c.Fields)),
			Results:    make([]resultRecord, 0, len(c.Rows)),
		}
		for _, f := range c.Fields {
			cr.Inputs[f.Key] = f.Value
		}
		for _, r := range c.Rows {
			cr.Results = append(cr.Results, resultRecord{
				Key:     r.Key,
				Label:   r.Label,
				Kind:    string(r.Kind),
				Value:   rawValue(r),
				Display: r.Display(),
			})
		}
		rec.Calculators = append(rec.Calculators, cr)
	}
	return rec
}

func rawValue(r domain.ResultRow) *string {
	if !r.Value.Valid {
		return nil
	}
	s := r.Value.Decimal.String()
	return &s
}
