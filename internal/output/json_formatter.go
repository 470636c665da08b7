package output

import (
	"encoding/json"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
)

// JSONFormatter serializes the calculator results as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string     { return "json" }
func (j JSONFormatter) FileName() string { return "percentages.json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(buildRecords(report), "", "  ")
}
