package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// FileName is the name the output is written under.
	FileName() string
}

// AssetProvider is implemented by formatters whose output references extra
// files, such as the stylesheet of the HTML page.
type AssetProvider interface {
	Assets() map[string][]byte
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID   string
	File string
	F    func(*domain.Report) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.Report) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                            { return ff.ID }
func (ff FormatterFunc) FileName() string                        { return ff.File }

// WriteFormatted runs a formatter and writes its output, plus any assets, into dir.
// It returns the written paths.
func WriteFormatted(f Formatter, report *domain.Report, dir string) ([]string, error) {
	data, err := f.Format(report)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", f.Name(), err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	files := map[string][]byte{f.FileName(): data}
	if ap, ok := f.(AssetProvider); ok {
		for name, content := range ap.Assets() {
			files[name] = content
		}
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	written := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, files[name], 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	HTMLFormatter{},
	JSONFormatter{},
	YAMLFormatter{},
	CSVFormatter{},
	ConsoleFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"web":  "html",
	"site": "html",
	"page": "html",
	"text": "console",
	"txt":  "console",
	"yml":  "yaml",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
