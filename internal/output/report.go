package output

import (
	"fmt"
	"strings"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
)

// UnsupportedFormatError enriches ErrUnsupportedFormat with the valid choices.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GenerateReport renders the report in each format into dir and returns every
// written path. All formats are resolved before anything is written.
func GenerateReport(report *domain.Report, dir string, formats ...string) ([]string, error) {
	formatters := make([]Formatter, 0, len(formats))
	seen := make(map[string]bool)
	for _, format := range formats {
		f := GetFormatterByName(format)
		if f == nil {
			return nil, UnsupportedFormatError(format)
		}
		if seen[f.Name()] {
			continue
		}
		seen[f.Name()] = true
		formatters = append(formatters, f)
	}

	var written []string
	for _, f := range formatters {
		paths, err := WriteFormatted(f, report, dir)
		written = append(written, paths...)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
