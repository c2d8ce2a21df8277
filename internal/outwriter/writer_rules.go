package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alutools/dieprofile/schema"
)

// writeCSVRules writes one record per table row; the fallback row has condition "otherwise".
func writeCSVRules(w io.Writer, model *schema.RulesRenderModel) error {
	header := []string{"Criterion", "Name", "Input", "Weight", "Condition", "Factor"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, t := range model.Tables {
			weight := strconv.FormatFloat(t.Weight, 'f', -1, 64)
			rows := make([]schema.RuleBranch, 0, len(t.Branches)+1)
			rows = append(rows, t.Branches...)
			rows = append(rows, schema.RuleBranch{Condition: "otherwise", Factor: t.Fallback})
			for _, b := range rows {
				record := []string{string(t.Key), t.Name, t.Input, weight, b.Condition, strconv.Itoa(b.Factor)}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
		return nil
	})
}
