package outwriter

import (
	"fmt"
	"io"

	"github.com/alutools/dieprofile/internal/contract"
	"github.com/alutools/dieprofile/internal/report"
	"github.com/alutools/dieprofile/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// sectionEmojis decorates section titles when emojis are enabled.
var sectionEmojis = map[string]string{
	report.SectionInputs:     "📝",
	report.SectionSales:      "💼",
	report.SectionResults:    "🎯",
	report.SectionCalculated: "📏",
	report.SectionFactors:    "🔢",
	report.SectionWeights:    "⚖️ ",
}

// PrintReport outputs the full report of a scoring pass in the format selected by cfg.Output.
func PrintReport(eval schema.Evaluation, cfg *contract.Config) error {
	rep := report.Build(eval, cfg.ReportMeta())

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rep)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, rep)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVReport(w, rep)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeParquetReport(w, rep)
		}, "Wrote Parquet")
	case schema.PDFOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return report.WritePDF(w, rep, report.PDFOptions{LogoPath: cfg.Company.LogoPath, Compress: true})
		}, "Wrote PDF")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(w, rep, eval.Result.Level, cfg)
		}, "Wrote text")
	}
}

// writeReportText prints each report section as its own table.
func writeReportText(w io.Writer, rep *schema.Report, level schema.Level, cfg *contract.Config) error {
	title := rep.Title
	if rep.Company != "" {
		title = fmt.Sprintf("%s · %s", rep.Company, rep.Title)
	}
	if _, err := fmt.Fprintf(w, "%s\nGenerated on %s\n", header(title, "📄", cfg), rep.GeneratedOn); err != nil {
		return err
	}

	for _, section := range rep.Sections {
		if section.Title == report.SectionResults && cfg.UseColors {
			section = colorizeLevel(section, level, cfg)
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", header(section.Title, sectionEmojis[section.Title], cfg)); err != nil {
			return err
		}
		if err := writeSectionTable(w, section); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s\n", rep.Footer)
	return err
}

// writeSectionTable renders a two-column label/value table.
func writeSectionTable(w io.Writer, section schema.ReportSection) error {
	table := tablewriter.NewWriter(w)
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignLeft
	})

	data := make([][]string, 0, len(section.Rows))
	for _, row := range section.Rows {
		data = append(data, []string{row.Label, row.Value})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// colorizeLevel returns a copy of the results section with a colored level value.
func colorizeLevel(section schema.ReportSection, level schema.Level, cfg *contract.Config) schema.ReportSection {
	rows := make([]schema.LabeledValue, len(section.Rows))
	copy(rows, section.Rows)
	for i := range rows {
		if rows[i].Value == string(level) {
			rows[i].Value = levelLabel(level, cfg)
		}
	}
	section.Rows = rows
	return section
}
