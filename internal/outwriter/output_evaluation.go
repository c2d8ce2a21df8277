package outwriter

import (
	"fmt"
	"io"

	"github.com/alutools/dieprofile/internal/contract"
	"github.com/alutools/dieprofile/internal/numfmt"
	"github.com/alutools/dieprofile/internal/report"
	"github.com/alutools/dieprofile/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintEvaluation outputs a scoring pass in the format selected by cfg.Output.
func PrintEvaluation(eval schema.Evaluation, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, eval)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, eval)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVEvaluation(w, eval)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeParquetEvaluation(w, eval, cfg)
		}, "Wrote Parquet")
	case schema.PDFOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePDF(w, eval, cfg)
		}, "Wrote PDF")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEvaluationText(w, eval, cfg)
		}, "Wrote text")
	}
}

// writeEvaluationText prints the criteria table, the derived metrics and the score.
func writeEvaluationText(w io.Writer, eval schema.Evaluation, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", header("Profile Difficulty Score", "📐", cfg)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Criterion", "Input", "Factor", "Weight"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, key := range schema.AllCriteria {
		data = append(data, []string{
			schema.CriterionLabel(key),
			criterionInput(eval, key, cfg.Locale),
			numfmt.FormatInt(eval.Factors[key], cfg.Locale),
			numfmt.FormatInput(eval.Weights.Get(key), cfg.Locale),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	rep := report.Build(eval, cfg.ReportMeta())
	if calc, ok := rep.Section(report.SectionCalculated); ok {
		if _, err := fmt.Fprintf(w, "\n%s\n", header(calc.Title, "📏", cfg)); err != nil {
			return err
		}
		if err := writeSectionTable(w, calc); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s %s / 100 (%s)\n",
		header("Difficulty score:", "🎯", cfg),
		numfmt.Format(eval.Result.Score, 1, cfg.Locale),
		levelLabel(eval.Result.Level, cfg))
	return err
}

// criterionInput returns the value a criterion's rule reads, formatted for display.
func criterionInput(eval schema.Evaluation, key schema.CriterionKey, locale schema.LocaleName) string {
	in, m := eval.Input, eval.Metrics
	switch key {
	case schema.CriterionType:
		return string(in.ProfileType)
	case schema.CriterionCategory:
		return string(in.Category)
	case schema.CriterionTongue:
		return numfmt.Format(m.TongueRatio, 2, locale)
	case schema.CriterionHollows:
		return numfmt.FormatInt(in.HollowSectionCount, locale)
	case schema.CriterionWall:
		return numfmt.FormatInput(in.WallThicknessMm, locale) + " mm"
	case schema.CriterionPerimeterOverArea:
		return numfmt.Format(m.PerimeterOverArea, 3, locale)
	case schema.CriterionCavities:
		return numfmt.FormatInt(in.CavityCount, locale)
	case schema.CriterionCDOverWall:
		return numfmt.Format(m.CDOverWall, 1, locale)
	case schema.CriterionAlloy:
		return string(in.Alloy)
	case schema.CriterionTolerance:
		return string(in.ToleranceClass)
	case schema.CriterionSurface:
		return string(in.SurfaceClass)
	case schema.CriterionExtrusionRatio:
		return numfmt.Format(m.ExtrusionRatio, 1, locale)
	default:
		return numfmt.Placeholder
	}
}
