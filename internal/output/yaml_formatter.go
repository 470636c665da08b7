package output

import (
	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the calculator results as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string     { return "yaml" }
func (y YAMLFormatter) FileName() string { return "percentages.yaml" }

func (y YAMLFormatter) Format(report *domain.Report) ([]byte, error) {
	return yaml.Marshal(buildRecords(report))
}
