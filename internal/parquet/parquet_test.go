package parquet

import (
	"bytes"
	"testing"
	"time"

	"github.com/alutools/dieprofile/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(ReportRow))
	require.NotNil(t, s)

	for _, colName := range []string{"section", "position", "label", "value"} {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestEvaluationRecordStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(EvaluationRecord))
	require.NotNil(t, s)

	expectedColumns := []string{
		"generated_at",
		"profile_reference",
		"profile_type",
		"wall_thickness_mm",
		"cd_mm",
		"container_diameter_mm",
		"extrusion_ratio",
		"score",
		"level",
	}
	for _, colName := range expectedColumns {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestConvertReport(t *testing.T) {
	rep := &schema.Report{
		Sections: []schema.ReportSection{
			{Title: "Inputs", Rows: []schema.LabeledValue{{Label: "Alloy", Value: "6063"}, {Label: "Category", Value: "B"}}},
			{Title: "Results", Rows: []schema.LabeledValue{{Label: "Difficulty Level", Value: "Normal"}}},
		},
	}

	rows := ConvertReport(rep)
	require.Len(t, rows, 3)
	assert.Equal(t, ReportRow{Section: "Inputs", Position: 1, Label: "Category", Value: "B"}, rows[1])
	assert.Equal(t, "Results", rows[2].Section)
	assert.Equal(t, int32(0), rows[2].Position)
}

func TestWriteReportRowsParquetRoundTrip(t *testing.T) {
	data := []ReportRow{
		{Section: "Inputs", Position: 0, Label: "Profile Type", Value: "Hollow"},
		{Section: "Calculated", Position: 3, Label: "Perimeter / Area", Value: "0,614"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReportRowsParquet(&buf, data))
	assert.Greater(t, buf.Len(), 0)

	readData, err := parquet.Read[ReportRow](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, data, readData)
}

func TestWriteEvaluationsParquetRoundTrip(t *testing.T) {
	eval := schema.Evaluation{
		Input:   schema.DefaultProfileInput(),
		Weights: schema.DefaultWeights(),
		Metrics: schema.DerivedMetrics{ContainerDiameterMm: 177.8, CDOverWall: 25},
		Factors: schema.FactorSet{schema.CriterionType: 10, schema.CriterionSurface: 3},
		Result:  schema.ScoreResult{Score: 41.5, Level: schema.NormalLevel},
	}
	meta := schema.ReportMeta{
		GeneratedAt: time.Date(2026, 2, 1, 8, 30, 0, 0, time.UTC),
		Sales:       schema.SalesInfo{ProfileReference: "P-7"},
	}

	record := ConvertEvaluation(eval, meta)
	require.NotNil(t, record.ProfileReference)
	assert.Equal(t, "P-7", *record.ProfileReference)
	assert.Equal(t, int32(10), record.Factors["type"])
	assert.Equal(t, int32(0), record.Factors["wall"])
	assert.Equal(t, 15.0, record.Weights["extrusionRatio"])

	noRef := ConvertEvaluation(eval, schema.ReportMeta{})
	assert.Nil(t, noRef.ProfileReference)

	var buf bytes.Buffer
	require.NoError(t, WriteEvaluationsParquet(&buf, []EvaluationRecord{record, noRef}))

	readData, err := parquet.Read[EvaluationRecord](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, readData, 2)

	got := readData[0]
	assert.WithinDuration(t, meta.GeneratedAt, got.GeneratedAt, time.Nanosecond)
	require.NotNil(t, got.ProfileReference)
	assert.Equal(t, "P-7", *got.ProfileReference)
	assert.Equal(t, "Hollow", got.ProfileType)
	assert.Equal(t, 177.8, got.PressDiameterMm)
	assert.Equal(t, 41.5, got.Score)
	assert.Equal(t, "Normal", got.Level)
	assert.Equal(t, int32(3), got.Factors["surface"])
	assert.Nil(t, readData[1].ProfileReference)
}
