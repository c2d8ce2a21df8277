package outwriter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alutools/dieprofile/internal/contract"
	"github.com/alutools/dieprofile/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEvaluation is a hollow B profile whose factors sum to a score of 38.
func testEvaluation() schema.Evaluation {
	return schema.Evaluation{
		Input: schema.ProfileInput{
			ProfileType:         schema.HollowProfile,
			Category:            schema.CategoryB,
			HollowSectionCount:  2,
			WallThicknessMm:     2,
			SlotDepthMm:         10,
			SlotOpeningWidthMm:  4,
			PerimeterMm:         200,
			WeightKgPerM:        1.35,
			CavityCount:         2,
			ContainerDiameterMm: 60,
			PressSizeInch:       7,
			Alloy:               schema.Alloy6063,
			ToleranceClass:      schema.ToleranceStandard120202,
			SurfaceClass:        schema.SurfaceMillFinish,
		},
		Weights: schema.DefaultWeights(),
		Metrics: schema.DerivedMetrics{
			TongueRatio:         2.5,
			ProfileAreaMm2:      500,
			WeightInDieKgPerM:   2.7,
			PerimeterOverArea:   0.4,
			ContainerDiameterMm: 177.8,
			ContainerAreaMm2:    24828.9,
			CDOverWall:          30,
			ExtrusionRatio:      24.83,
		},
		Factors: schema.FactorSet{
			schema.CriterionType:              10,
			schema.CriterionCategory:          3,
			schema.CriterionTongue:            1,
			schema.CriterionHollows:           4,
			schema.CriterionWall:              3,
			schema.CriterionPerimeterOverArea: 10,
			schema.CriterionCavities:          3,
			schema.CriterionCDOverWall:        1,
			schema.CriterionAlloy:             1,
			schema.CriterionTolerance:         5,
			schema.CriterionSurface:           3,
			schema.CriterionExtrusionRatio:    2,
		},
		Result: schema.ScoreResult{Score: 38, Level: schema.EasyLevel},
	}
}

func testConfig(output schema.OutputMode) *contract.Config {
	return &contract.Config{
		Profile:     testEvaluation().Input,
		Weights:     schema.DefaultWeights(),
		Company:     schema.CompanyInfo{Name: "ACME Extrusions"},
		Sales:       schema.SalesInfo{ManagerName: "J. Doe", ProfileReference: "P-100"},
		GeneratedAt: time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC),
		Locale:      schema.LocaleEN,
		Output:      output,
		MaxScore:    contract.DefaultMaxScore,
	}
}

func TestOutWriterDelegates(t *testing.T) {
	ow := NewOutWriter()
	dir := t.TempDir()

	cfg := testConfig(schema.JSONOut)
	cfg.OutputFile = filepath.Join(dir, "eval.json")
	require.NoError(t, ow.WriteEvaluation(testEvaluation(), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "factors")
	assert.Contains(t, decoded, "result")

	cfg.OutputFile = filepath.Join(dir, "check.json")
	require.NoError(t, ow.WriteCheck(schema.CheckResult{Passed: true, Score: 38, Level: schema.EasyLevel, MaxScore: 60}, cfg))
	data, err = os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"passed": true`)
}
