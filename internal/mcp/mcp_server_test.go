package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alutools/dieprofile/internal/contract"
	mcp_internal "github.com/alutools/dieprofile/internal/mcp"
	"github.com/alutools/dieprofile/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig(t *testing.T) *contract.Config {
	t.Helper()
	cfg := &contract.Config{}
	require.NoError(t, contract.ProcessAndValidate(cfg, &contract.ConfigRawInput{Output: "json", Locale: "en", Color: "no"}))
	return cfg
}

func callTool(t *testing.T, cfg *contract.Config, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(cfg, "test")
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestScoreProfile(t *testing.T) {
	cfg := baseConfig(t)
	res := callTool(t, cfg, "score_profile", map[string]any{
		"type":      "Hollow",
		"category":  "B",
		"wall":      1.2,
		"perimeter": 250.0,
		"weight":    1.1,
		"cavities":  2.0,
		"cd":        30.0,
		"press":     7.0,
		"alloy":     "6063",
		"tolerance": "Acc. 12020-2",
		"surface":   "Mill Finish",
	})
	require.False(t, res.IsError, resultText(t, res))

	var eval schema.Evaluation
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &eval))
	assert.InDelta(t, 34.5, eval.Result.Score, 1e-9)
	assert.Equal(t, schema.EasyLevel, eval.Result.Level)
	assert.InDelta(t, 407.407, eval.Metrics.ProfileAreaMm2, 0.001)

	assert.Equal(t, 0.0, cfg.Profile.WallThicknessMm, "base config must not change between calls")
}

func TestScoreProfileWeightsAndReport(t *testing.T) {
	res := callTool(t, baseConfig(t), "score_profile", map[string]any{
		"wall":    0.8,
		"weights": map[string]any{"wall": 100.0},
		"format":  "report",
	})
	require.False(t, res.IsError, resultText(t, res))

	var rep schema.Report
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &rep))
	assert.Equal(t, "Profile Difficulty Analysis", rep.Title)
	assert.Len(t, rep.Sections, 6)
}

func TestScoreProfileValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]any
		expected string
	}{
		{"unknown surface", map[string]any{"surface": "Chrome"}, "invalid surface class"},
		{"unknown criterion", map[string]any{"weights": map[string]any{"colour": 5.0}}, "unknown criterion"},
		{"weight out of range", map[string]any{"weights": map[string]any{"wall": 250.0}}, "must be between 0 and 100"},
		{"unreadable number", map[string]any{"wall": "thin"}, "cannot read"},
		{"bad format", map[string]any{"format": "xml"}, "invalid format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callTool(t, baseConfig(t), "score_profile", tt.args)
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, resultText(t, res), tt.expected)
		})
	}
}

func TestListRules(t *testing.T) {
	res := callTool(t, baseConfig(t), "list_rules", map[string]any{"weights": map[string]any{"alloy": 0.0}})
	require.False(t, res.IsError, resultText(t, res))

	var model schema.RulesRenderModel
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &model))
	require.Len(t, model.Tables, len(schema.AllCriteria))
	for _, table := range model.Tables {
		if table.Key == schema.CriterionAlloy {
			assert.Equal(t, 0.0, table.Weight)
		}
	}
}
