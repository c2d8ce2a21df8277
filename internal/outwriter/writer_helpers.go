package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alutools/dieprofile/internal/contract"
	"github.com/alutools/dieprofile/internal/report"
	"github.com/alutools/dieprofile/schema"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeYAML mirrors writeJSON for the yaml output mode.
func writeYAML(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// writePDF renders the report for an evaluation, placing the configured logo.
func writePDF(w io.Writer, eval schema.Evaluation, cfg *contract.Config) error {
	rep := report.Build(eval, cfg.ReportMeta())
	return report.WritePDF(w, rep, report.PDFOptions{LogoPath: cfg.Company.LogoPath, Compress: true})
}

// levelLabel returns the level, colored when the config allows it.
func levelLabel(level schema.Level, cfg *contract.Config) string {
	if !cfg.UseColors {
		return string(level)
	}
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()
	return contract.GetColorLabel(level)
}

// header returns a title line with an optional emoji prefix.
func header(title, emoji string, cfg *contract.Config) string {
	if cfg.UseEmojis {
		return emoji + " " + title
	}
	return title
}
