package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/config"
	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/output"
)

// execute runs the root command with fresh flag values and returns stdout and stderr
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfgFile, verbose, logLevel = "", false, ""
	renderOut, renderFormats = "", nil
	calcFormat = "console"
	discountPrice, discountPercent = "", ""
	tipBill, tipPercent, tipDiners = "", "", ""
	progressTarget, progressCurrent = "", ""
	exampleOut = ""
	for _, c := range []*cobra.Command{discountCmd, tipCmd, progressCmd} {
		for _, name := range []string{"price", "percent", "bill", "tip", "diners", "target", "current"} {
			if f := c.Flags().Lookup(name); f != nil {
				f.Changed = false
			}
		}
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCalcDiscountJSON(t *testing.T) {
	stdout, _, err := execute(t, "calc", "discount", "--price", "100", "--percent", "20", "--format", "json")
	require.NoError(t, err)

	var decoded struct {
		Calculators []struct {
			Calculator string            `json:"calculator"`
			Inputs     map[string]string `json:"inputs"`
			Results    []struct {
				Key   string  `json:"key"`
				Value *string `json:"value"`
			} `json:"results"`
		} `json:"calculators"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	require.Len(t, decoded.Calculators, 1)

	discount := decoded.Calculators[0]
	assert.Equal(t, "discount", discount.Calculator)
	assert.Equal(t, "100", discount.Inputs[domain.KeyOriginalPrice])
	require.Len(t, discount.Results, 2)
	require.NotNil(t, discount.Results[0].Value)
	assert.Equal(t, "80", *discount.Results[0].Value)
	assert.Equal(t, "20", *discount.Results[1].Value)
}

func TestCalcTipCSVWithVerboseLogging(t *testing.T) {
	stdout, stderr, err := execute(t, "-v", "calc", "tip", "--bill", "200", "--tip", "10", "--diners", "0", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "tip,tip_amount,20,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "tip,total_amount,220,"), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "tip,per_person_amount,,"), lines[3])
	assert.Contains(t, stderr, "[DEBUG] tip per-person share undefined")
}

func perPersonValue(t *testing.T, stdout string) *string {
	t.Helper()
	var decoded struct {
		Calculators []struct {
			Results []struct {
				Key   string  `json:"key"`
				Value *string `json:"value"`
			} `json:"results"`
		} `json:"calculators"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	require.Len(t, decoded.Calculators, 1)
	for _, r := range decoded.Calculators[0].Results {
		if r.Key == domain.KeyPerPersonAmount {
			return r.Value
		}
	}
	t.Fatalf("no %s result", domain.KeyPerPersonAmount)
	return nil
}

func TestCalcTipBlankDinersFlagCountsAsZero(t *testing.T) {
	stdout, _, err := execute(t, "calc", "tip", "--bill", "200", "--tip", "10", "--format", "json")
	require.NoError(t, err)
	share := perPersonValue(t, stdout)
	require.NotNil(t, share, "configured diner count applies when the flag is absent")
	assert.Equal(t, "110", *share)

	stdout, _, err = execute(t, "calc", "tip", "--bill", "200", "--tip", "10", "--diners", "", "--format", "json")
	require.NoError(t, err)
	assert.Nil(t, perPersonValue(t, stdout), "a blank diner count is zero")
}

func TestCalcProgressConsoleKeepsConfiguredInputs(t *testing.T) {
	stdout, _, err := execute(t, "calc", "progress", "--target", "0")
	require.NoError(t, err)

	assert.Contains(t, stdout, "  השלמה עד כה: —\n")
	assert.Contains(t, stdout, "  התקדמות נוכחית: 6300\n")
}

func TestCalcRejectsUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "calc", "discount", "--format", "pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
}

func TestRenderWritesRequestedFormats(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := execute(t, "render", "--out", dir, "--format", "html,json")
	require.NoError(t, err)

	for _, name := range []string{"index.html", "styles.css", "percentages.json"} {
		path := filepath.Join(dir, name)
		assert.Contains(t, stdout, path)
		assert.FileExists(t, path)
	}
}

func TestRenderUsesConfiguredFormats(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := execute(t, "--log-level", "info", "render", "--config", filepath.Join("..", "..", "..", "internal", "config", "testdata", "site.yaml"), "--out", dir)
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `dir="rtl"`)
	assert.FileExists(t, filepath.Join(dir, "percentages.json"))
	assert.NoFileExists(t, filepath.Join(dir, "percentages.csv"))
	assert.Contains(t, stderr, "[INFO] built report with 3 calculators")
	assert.NotContains(t, stderr, "[DEBUG]")
}

func TestRenderFailsOnMissingConfiguration(t *testing.T) {
	_, _, err := execute(t, "render", "--config", "missing.yaml", "--out", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExampleConfigToStdout(t *testing.T) {
	stdout, _, err := execute(t, "example-config")
	require.NoError(t, err)

	var decoded domain.Configuration
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, "he", decoded.Site.Lang)
	assert.Equal(t, "220", decoded.Calculators.Discount.OriginalPrice)
}

func TestExampleConfigToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "percentages.toml")
	stdout, _, err := execute(t, "example-config", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, path)

	loaded, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.NewInputParser().CreateExampleConfiguration(), loaded)
}
