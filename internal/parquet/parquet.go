// Package parquet provides data structures and functions for exporting dieprofile
// evaluations and reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"time"

	"github.com/alutools/dieprofile/schema"
	"github.com/parquet-go/parquet-go"
)

// ReportRow is one labeled value of a report section.
type ReportRow struct {
	// Section is the title of the table the row belongs to
	Section string `parquet:"section,snappy"`

	// Position is the row index inside its section, starting at 0
	Position int32 `parquet:"position,snappy"`

	Label string `parquet:"label,snappy"`
	Value string `parquet:"value,snappy"`
}

// EvaluationRecord is a flat record of one scoring pass.
type EvaluationRecord struct {
	// GeneratedAt is when the evaluation ran (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// ProfileReference is the quotation reference of the profile (nullable)
	ProfileReference *string `parquet:"profile_reference,optional,snappy"`

	// --- Inputs ---
	ProfileType         string  `parquet:"profile_type,snappy"`
	Category            string  `parquet:"category,snappy"`
	HollowSectionCount  int32   `parquet:"hollow_section_count,snappy"`
	WallThicknessMm     float64 `parquet:"wall_thickness_mm,snappy"`
	SlotDepthMm         float64 `parquet:"slot_depth_mm,snappy"`
	SlotOpeningWidthMm  float64 `parquet:"slot_opening_width_mm,snappy"`
	PerimeterMm         float64 `parquet:"perimeter_mm,snappy"`
	WeightKgPerM        float64 `parquet:"weight_kg_per_m,snappy"`
	CavityCount         int32   `parquet:"cavity_count,snappy"`
	ContainerDiameterMm float64 `parquet:"cd_mm,snappy"`
	PressSizeInch       float64 `parquet:"press_size_inch,snappy"`
	Alloy               string  `parquet:"alloy,snappy"`
	ToleranceClass      string  `parquet:"tolerance_class,snappy"`
	SurfaceClass        string  `parquet:"surface_class,snappy"`

	// --- Derived metrics ---
	TongueRatio       float64 `parquet:"tongue_ratio,snappy"`
	ProfileAreaMm2    float64 `parquet:"profile_area_mm2,snappy"`
	WeightInDieKgPerM float64 `parquet:"weight_in_die_kg_per_m,snappy"`
	PerimeterOverArea float64 `parquet:"perimeter_over_area,snappy"`
	PressDiameterMm   float64 `parquet:"container_diameter_mm,snappy"`
	ContainerAreaMm2  float64 `parquet:"container_area_mm2,snappy"`
	CDOverWall        float64 `parquet:"cd_over_wall,snappy"`
	ExtrusionRatio    float64 `parquet:"extrusion_ratio,snappy"`

	// Factors and Weights are keyed by criterion
	Factors map[string]int32   `parquet:"factors,snappy"`
	Weights map[string]float64 `parquet:"weights,snappy"`

	Score float64 `parquet:"score,snappy"`
	Level string  `parquet:"level,snappy"`
}

// WriteReportRowsParquet writes report rows to w.
func WriteReportRowsParquet(w io.Writer, data []ReportRow) error {
	return writeParquet(w, data)
}

// WriteEvaluationsParquet writes evaluation records to w.
func WriteEvaluationsParquet(w io.Writer, data []EvaluationRecord) error {
	return writeParquet(w, data)
}

// writeParquet writes rows using struct schema inference from the parquet tags.
func writeParquet[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// ConvertReport flattens every section of a report into rows.
func ConvertReport(rep *schema.Report) []ReportRow {
	var rows []ReportRow
	for _, section := range rep.Sections {
		for i, row := range section.Rows {
			rows = append(rows, ReportRow{
				Section:  section.Title,
				Position: int32(i),
				Label:    row.Label,
				Value:    row.Value,
			})
		}
	}
	return rows
}

// ConvertEvaluation maps an evaluation and its metadata to a record.
func ConvertEvaluation(eval schema.Evaluation, meta schema.ReportMeta) EvaluationRecord {
	in, m := eval.Input, eval.Metrics

	var ref *string
	if meta.Sales.ProfileReference != "" {
		r := meta.Sales.ProfileReference
		ref = &r
	}

	factors := make(map[string]int32, len(schema.AllCriteria))
	weights := make(map[string]float64, len(schema.AllCriteria))
	for _, key := range schema.AllCriteria {
		factors[string(key)] = int32(eval.Factors[key])
		weights[string(key)] = eval.Weights.Get(key)
	}

	return EvaluationRecord{
		GeneratedAt:         meta.GeneratedAt,
		ProfileReference:    ref,
		ProfileType:         string(in.ProfileType),
		Category:            string(in.Category),
		HollowSectionCount:  int32(in.HollowSectionCount),
		WallThicknessMm:     in.WallThicknessMm,
		SlotDepthMm:         in.SlotDepthMm,
		SlotOpeningWidthMm:  in.SlotOpeningWidthMm,
		PerimeterMm:         in.PerimeterMm,
		WeightKgPerM:        in.WeightKgPerM,
		CavityCount:         int32(in.CavityCount),
		ContainerDiameterMm: in.ContainerDiameterMm,
		PressSizeInch:       in.PressSizeInch,
		Alloy:               string(in.Alloy),
		ToleranceClass:      string(in.ToleranceClass),
		SurfaceClass:        string(in.SurfaceClass),
		TongueRatio:         m.TongueRatio,
		ProfileAreaMm2:      m.ProfileAreaMm2,
		WeightInDieKgPerM:   m.WeightInDieKgPerM,
		PerimeterOverArea:   m.PerimeterOverArea,
		PressDiameterMm:     m.ContainerDiameterMm,
		ContainerAreaMm2:    m.ContainerAreaMm2,
		CDOverWall:          m.CDOverWall,
		ExtrusionRatio:      m.ExtrusionRatio,
		Factors:             factors,
		Weights:             weights,
		Score:               eval.Result.Score,
		Level:               string(eval.Result.Level),
	}
}
