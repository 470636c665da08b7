package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/output"
	pkgdecimal "github.com/Design-Arena-Gens/agentic-6b10b7fb/pkg/decimal"
)

// MaxFractionDigits bounds every display precision setting
const MaxFractionDigits = pkgdecimal.MaxFractionDigits

// FileFormat is the syntax of a configuration file
type FileFormat string

const (
	FormatYAML FileFormat = "yaml"
	FormatTOML FileFormat = "toml"
)

// FormatForPath picks the file syntax from the extension. Anything other
// than .toml is read as YAML.
func FormatForPath(path string) FileFormat {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or TOML file. Keys missing from
// the file keep the values of CreateExampleConfiguration.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data, FormatForPath(filename))
}

// Parse decodes configuration data over the defaults and validates the result
func (ip *InputParser) Parse(data []byte, format FileFormat) (*domain.Configuration, error) {
	config := ip.CreateExampleConfiguration()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ValidateConfiguration validates the loaded configuration. Calculator inputs
// are not checked: unparseable text renders as a placeholder.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateSite(&config.Site); err != nil {
		return fmt.Errorf("site: %w", err)
	}
	if err := ip.validateDisplay(&config.Display); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	if err := ip.validateOutput(&config.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

func (ip *InputParser) validateSite(site *domain.SiteSettings) error {
	if strings.TrimSpace(site.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(site.Lang) == "" {
		return fmt.Errorf("lang is required")
	}
	if site.Dir != "rtl" && site.Dir != "ltr" {
		return fmt.Errorf("dir must be 'rtl' or 'ltr', got %q", site.Dir)
	}
	return nil
}

func (ip *InputParser) validateDisplay(display *domain.DisplaySettings) error {
	digits := []struct {
		name  string
		value int
	}{
		{"discount_currency_digits", display.DiscountCurrencyDigits},
		{"tip_currency_digits", display.TipCurrencyDigits},
		{"progress_currency_digits", display.ProgressCurrencyDigits},
		{"percent_digits", display.PercentDigits},
	}
	for _, d := range digits {
		if d.value < 0 || d.value > MaxFractionDigits {
			return fmt.Errorf("%s must be between 0 and %d, got %d", d.name, MaxFractionDigits, d.value)
		}
	}
	return nil
}

func (ip *InputParser) validateOutput(out *domain.OutputSettings) error {
	if strings.TrimSpace(out.Directory) == "" {
		return fmt.Errorf("directory is required")
	}
	if len(out.Formats) == 0 {
		return fmt.Errorf("at least one format is required")
	}
	for _, format := range out.Formats {
		if output.GetFormatterByName(format) == nil {
			return output.UnsupportedFormatError(format)
		}
	}
	return nil
}

// SaveConfiguration writes the configuration as YAML, or TOML for .toml paths
func SaveConfiguration(config *domain.Configuration, filename string) error {
	var data []byte
	switch FormatForPath(filename) {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
		data = buf.Bytes()
	default:
		b, err := yaml.Marshal(config)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		data = b
	}
	return os.WriteFile(filename, data, 0644)
}
