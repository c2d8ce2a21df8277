package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alutools/dieprofile/internal/contract"
	"github.com/alutools/dieprofile/internal/numfmt"
	"github.com/alutools/dieprofile/schema"
)

// PrintCheckResult prints the result of a score gate in a concise format suitable for CI/CD.
func PrintCheckResult(result schema.CheckResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, result)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVCheck(w, result)
		}, "Wrote CSV")
	case schema.TextOut, "":
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCheckText(w, result, cfg)
		}, "Wrote text")
	default:
		return fmt.Errorf("output mode %s is not supported for check", cfg.Output)
	}
}

func writeCheckText(w io.Writer, result schema.CheckResult, cfg *contract.Config) error {
	if _, err := fmt.Fprintln(w, "Difficulty Check Results:"); err != nil {
		return err
	}

	labels := []string{"Score:", "Level:", "Max score:"}
	values := []string{
		numfmt.Format(result.Score, 1, cfg.Locale),
		levelLabel(result.Level, cfg),
		numfmt.FormatInput(result.MaxScore, cfg.Locale),
	}
	maxLabelLen := 0
	for _, label := range labels {
		maxLabelLen = max(maxLabelLen, len(label))
	}
	for i, label := range labels {
		if _, err := fmt.Fprintf(w, "  %-*s %s\n", maxLabelLen+1, label, values[i]); err != nil {
			return err
		}
	}

	verdict := "Profile is within the difficulty limit"
	mark := "✅"
	if !result.Passed {
		verdict = "Profile exceeds the difficulty limit"
		mark = "❌"
	}
	if cfg.UseEmojis {
		verdict = mark + " " + verdict
	}
	_, err := fmt.Fprintf(w, "\n%s\n", verdict)
	return err
}

func writeCSVCheck(w io.Writer, result schema.CheckResult) error {
	return writeCSVWithHeader(w, []string{"passed", "score", "level", "max_score"}, func(cw *csv.Writer) error {
		return cw.Write([]string{
			strconv.FormatBool(result.Passed),
			strconv.FormatFloat(result.Score, 'f', 2, 64),
			string(result.Level),
			strconv.FormatFloat(result.MaxScore, 'f', -1, 64),
		})
	})
}
