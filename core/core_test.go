package core

import (
	"context"
	"encoding/csv"
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

func newTestConfig(t *testing.T, output schema.OutputMode, name string) *contract.Config {
	t.Helper()
	return &contract.Config{
		Profile:     scenarioProfile(),
		Weights:     schema.DefaultWeights(),
		Company:     schema.CompanyInfo{Name: "ACME Extrusions"},
		GeneratedAt: time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
		Locale:      schema.LocaleDE,
		Output:      output,
		OutputFile:  filepath.Join(t.TempDir(), name),
		MaxScore:    contract.DefaultMaxScore,
	}
}

func TestExecuteScoreJSON(t *testing.T) {
	cfg := newTestConfig(t, schema.JSONOut, "score.json")
	require.NoError(t, ExecuteScore(context.Background(), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var eval schema.Evaluation
	require.NoError(t, json.Unmarshal(data, &eval))
	assert.InDelta(t, 34.5, eval.Result.Score, 1e-9)
	assert.Equal(t, schema.EasyLevel, eval.Result.Level)
	assert.Equal(t, 5, eval.Factors[schema.CriterionWall])
}

func TestExecuteReportText(t *testing.T) {
	cfg := newTestConfig(t, schema.TextOut, "report.txt")
	require.NoError(t, ExecuteReport(context.Background(), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "Profile Difficulty Analysis")
	assert.Contains(t, out, "34,5")
	assert.Contains(t, out, "407,41")
}

func TestExecuteRulesCSV(t *testing.T) {
	cfg := newTestConfig(t, schema.CSVOut, "rules.csv")
	require.NoError(t, ExecuteRules(context.Background(), cfg))

	f, err := os.Open(cfg.OutputFile)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	expected := 1
	for _, table := range RuleTables(cfg.Weights) {
		expected += len(table.Branches) + 1
	}
	assert.Len(t, records, expected)
}

func TestExecuteCheck(t *testing.T) {
	t.Run("pass", func(t *testing.T) {
		cfg := newTestConfig(t, schema.JSONOut, "check.json")
		require.NoError(t, ExecuteCheck(context.Background(), cfg))
	})

	t.Run("fail", func(t *testing.T) {
		cfg := newTestConfig(t, schema.JSONOut, "check.json")
		cfg.MaxScore = 30
		err := ExecuteCheck(context.Background(), cfg)
		require.ErrorIs(t, err, ErrCheckFailed)

		data, readErr := os.ReadFile(cfg.OutputFile)
		require.NoError(t, readErr)
		var result schema.CheckResult
		require.NoError(t, json.Unmarshal(data, &result))
		assert.False(t, result.Passed)
		assert.Equal(t, 30.0, result.MaxScore)
	})

	t.Run("unsupported output", func(t *testing.T) {
		cfg := newTestConfig(t, schema.PDFOut, "check.pdf")
		err := ExecuteCheck(context.Background(), cfg)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCheckFailed)
	})
}

func TestExecutorFuncs(t *testing.T) {
	executors := map[string]ExecutorFunc{
		"score":  ExecuteScore,
		"report": ExecuteReport,
		"rules":  ExecuteRules,
		"check":  ExecuteCheck,
	}
	for name, exec := range executors {
		t.Run(name, func(t *testing.T) {
			cfg := newTestConfig(t, schema.YAMLOut, name+".yaml")
			require.NoError(t, exec(context.Background(), cfg))
			info, err := os.Stat(cfg.OutputFile)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}
