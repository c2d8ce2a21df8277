package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alutools/dieprofile/internal/parquet"
	"github.com/alutools/dieprofile/schema"
)

// writeCSVReport writes one row per labeled value, keeping the localized formatting.
func writeCSVReport(w io.Writer, rep *schema.Report) error {
	return writeCSVWithHeader(w, []string{"Section", "Label", "Value"}, func(cw *csv.Writer) error {
		for _, section := range rep.Sections {
			for _, row := range section.Rows {
				if err := cw.Write([]string{section.Title, row.Label, row.Value}); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
		return nil
	})
}

// writeParquetReport writes the report rows as a Parquet file.
func writeParquetReport(w io.Writer, rep *schema.Report) error {
	return parquet.WriteReportRowsParquet(w, parquet.ConvertReport(rep))
}
