package outwriter

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/alutools/dieprofile/internal/contract"
	"github.com/alutools/dieprofile/internal/numfmt"
	"github.com/alutools/dieprofile/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintRules displays the factor tables used by the scoring engine.
// This is a static display that does not need a profile.
func PrintRules(model *schema.RulesRenderModel, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, model)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVRules(w, model)
		}, "Wrote CSV")
	case schema.TextOut, "":
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRulesText(w, model, cfg)
		}, "Wrote text")
	default:
		return fmt.Errorf("output mode %s is not supported for rules", cfg.Output)
	}
}

// writeRulesText prints the formula, the level bands and one table per criterion.
func writeRulesText(w io.Writer, model *schema.RulesRenderModel, cfg *contract.Config) error {
	title := header(model.Title, "📐", cfg)
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", title, underline(title)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\nFormula: %s\n\n", model.Description, model.Formula); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s\n", header("Levels", "🎯", cfg)); err != nil {
		return err
	}
	lower := 0.0
	for _, band := range model.Levels {
		var rng string
		if band.Below > 0 {
			rng = fmt.Sprintf("[%s, %s)", numfmt.FormatInput(lower, cfg.Locale), numfmt.FormatInput(band.Below, cfg.Locale))
			lower = band.Below
		} else {
			rng = fmt.Sprintf(">= %s", numfmt.FormatInput(lower, cfg.Locale))
		}
		if _, err := fmt.Fprintf(w, "   %-16s %s\n", band.Level, rng); err != nil {
			return err
		}
	}

	for _, t := range model.Tables {
		if _, err := fmt.Fprintf(w, "\n%s (%s), weight %s\n", t.Name, t.Input, numfmt.FormatInput(t.Weight, cfg.Locale)); err != nil {
			return err
		}
		if err := writeRuleTable(w, t); err != nil {
			return err
		}
	}
	return nil
}

func writeRuleTable(w io.Writer, t schema.RuleTable) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Condition", "Factor"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(t.Branches)+1)
	for _, b := range t.Branches {
		data = append(data, []string{b.Condition, fmt.Sprint(b.Factor)})
	}
	data = append(data, []string{"otherwise", fmt.Sprint(t.Fallback)})
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func underline(s string) string {
	return strings.Repeat("=", utf8.RuneCountInString(s))
}
