package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alutools/dieprofile/internal/contract"
	"github.com/alutools/dieprofile/internal/parquet"
	"github.com/alutools/dieprofile/schema"
)

// writeCSVEvaluation writes one machine-readable row per value of the evaluation.
// Numbers use a plain decimal point so the file loads anywhere.
func writeCSVEvaluation(w io.Writer, eval schema.Evaluation) error {
	return writeCSVWithHeader(w, []string{"section", "key", "value"}, func(cw *csv.Writer) error {
		for _, rec := range evaluationRecords(eval) {
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// evaluationRecords flattens an evaluation into section/key/value triples.
func evaluationRecords(eval schema.Evaluation) [][]string {
	fmtFloat := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	in, m := eval.Input, eval.Metrics

	records := [][]string{
		{"input", "profile_type", string(in.ProfileType)},
		{"input", "category", string(in.Category)},
		{"input", "hollow_section_count", strconv.Itoa(in.HollowSectionCount)},
		{"input", "wall_thickness_mm", fmtFloat(in.WallThicknessMm)},
		{"input", "slot_depth_mm", fmtFloat(in.SlotDepthMm)},
		{"input", "slot_opening_width_mm", fmtFloat(in.SlotOpeningWidthMm)},
		{"input", "perimeter_mm", fmtFloat(in.PerimeterMm)},
		{"input", "weight_kg_per_m", fmtFloat(in.WeightKgPerM)},
		{"input", "cavity_count", strconv.Itoa(in.CavityCount)},
		{"input", "container_diameter_mm", fmtFloat(in.ContainerDiameterMm)},
		{"input", "press_size_inch", fmtFloat(in.PressSizeInch)},
		{"input", "alloy", string(in.Alloy)},
		{"input", "tolerance_class", string(in.ToleranceClass)},
		{"input", "surface_class", string(in.SurfaceClass)},
		{"metric", "tongue_ratio", fmtFloat(m.TongueRatio)},
		{"metric", "profile_area_mm2", fmtFloat(m.ProfileAreaMm2)},
		{"metric", "weight_in_die_kg_per_m", fmtFloat(m.WeightInDieKgPerM)},
		{"metric", "perimeter_over_area", fmtFloat(m.PerimeterOverArea)},
		{"metric", "container_diameter_mm", fmtFloat(m.ContainerDiameterMm)},
		{"metric", "container_area_mm2", fmtFloat(m.ContainerAreaMm2)},
		{"metric", "cd_over_wall", fmtFloat(m.CDOverWall)},
		{"metric", "extrusion_ratio", fmtFloat(m.ExtrusionRatio)},
	}
	for _, key := range schema.AllCriteria {
		records = append(records, []string{"factor", string(key), strconv.Itoa(eval.Factors[key])})
	}
	for _, key := range schema.AllCriteria {
		records = append(records, []string{"weight", string(key), fmtFloat(eval.Weights.Get(key))})
	}
	return append(records,
		[]string{"result", "score", strconv.FormatFloat(eval.Result.Score, 'f', 2, 64)},
		[]string{"result", "level", string(eval.Result.Level)},
	)
}

// writeParquetEvaluation writes the evaluation as a single-row Parquet file.
func writeParquetEvaluation(w io.Writer, eval schema.Evaluation, cfg *contract.Config) error {
	record := parquet.ConvertEvaluation(eval, cfg.ReportMeta())
	return parquet.WriteEvaluationsParquet(w, []parquet.EvaluationRecord{record})
}
