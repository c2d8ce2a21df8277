package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/alutools/dieprofile/core"
	"github.com/alutools/dieprofile/internal/contract"
	"github.com/alutools/dieprofile/internal/report"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleScoreProfile(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Coercions = nil

	args := request.GetArguments()
	input := &contract.ConfigRawInput{
		Type:        argString(args, "type"),
		Category:    argString(args, "category"),
		Hollows:     argString(args, "hollows"),
		Wall:        argString(args, "wall"),
		SlotDepth:   argString(args, "slot_depth"),
		SlotOpening: argString(args, "slot_opening"),
		Perimeter:   argString(args, "perimeter"),
		Weight:      argString(args, "weight"),
		Cavities:    argString(args, "cavities"),
		CD:          argString(args, "cd"),
		Press:       argString(args, "press"),
		Alloy:       argString(args, "alloy"),
		Tolerance:   argString(args, "tolerance"),
		Surface:     argString(args, "surface"),
		Weights:     argWeights(args),
	}
	if err := contract.RevalidateProfile(cfg, input); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid profile: %v", err)), nil
	}
	if len(cfg.Coercions) > 0 {
		return mcp.NewToolResultError(fmt.Sprintf("invalid profile: %v", cfg.Coercions[0])), nil
	}

	eval := core.Evaluate(cfg.Profile, cfg.Weights)

	var payload any = eval
	switch format := request.GetString("format", "evaluation"); format {
	case "evaluation":
	case "report":
		payload = report.Build(eval, cfg.ReportMeta())
	default:
		return mcp.NewToolResultError(fmt.Sprintf("invalid format '%s'. must be evaluation or report", format)), nil
	}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListRules(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Coercions = nil

	if err := contract.RevalidateProfile(cfg, &contract.ConfigRawInput{Weights: argWeights(request.GetArguments())}); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid weights: %v", err)), nil
	}
	if len(cfg.Coercions) > 0 {
		return mcp.NewToolResultError(fmt.Sprintf("invalid weights: %v", cfg.Coercions[0])), nil
	}

	jsonData, _ := json.MarshalIndent(core.RulesModel(cfg.Weights), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// argString renders a tool argument as the raw string the config layer expects.
// Missing and null arguments are blank.
func argString(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// argWeights converts the weights object into raw config entries.
func argWeights(args map[string]any) map[string]string {
	obj, ok := args["weights"].(map[string]any)
	if !ok || len(obj) == 0 {
		return nil
	}
	weights := make(map[string]string, len(obj))
	for k := range obj {
		weights[k] = argString(obj, k)
	}
	return weights
}
