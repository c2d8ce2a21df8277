// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/alutools/dieprofile/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the dieprofile MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"Die Profile Difficulty Server",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: score_profile ---
	s.AddTool(mcp.NewTool("score_profile",
		mcp.WithDescription("Score the manufacturing difficulty of an extrusion die profile. "+
			"Omitted fields keep the server defaults. Returns the derived metrics, factors, weights and score as JSON."),
		mcp.WithString("type", mcp.Description("Profile type."), mcp.Enum("Solid", "Hollow")),
		mcp.WithString("category", mcp.Description("Profile category."), mcp.Enum("A", "B", "C", "SP")),
		mcp.WithNumber("hollows", mcp.Description("Number of hollow sections (ignored for solid profiles).")),
		mcp.WithNumber("wall", mcp.Description("Wall thickness in mm.")),
		mcp.WithNumber("slot_depth", mcp.Description("Slot depth in mm.")),
		mcp.WithNumber("slot_opening", mcp.Description("Slot opening width in mm.")),
		mcp.WithNumber("perimeter", mcp.Description("Profile perimeter in mm.")),
		mcp.WithNumber("weight", mcp.Description("Profile weight in kg/m.")),
		mcp.WithNumber("cavities", mcp.Description("Cavities in the die.")),
		mcp.WithNumber("cd", mcp.Description("Container diameter (CD) in mm.")),
		mcp.WithNumber("press", mcp.Description("Press size in inches.")),
		mcp.WithString("alloy", mcp.Description("Alloy code, e.g. 6063 or 6082.")),
		mcp.WithString("tolerance", mcp.Description("Tolerance class, e.g. 'Acc. 12020-2' or 'More restrictive'.")),
		mcp.WithString("surface", mcp.Description("Surface class."), mcp.Enum("None", "Mill Finish", "Powder Coated", "Anodised")),
		mcp.WithObject("weights", mcp.Description("Weight overrides per criterion (0-100), e.g. {\"wall\": 20}.")),
		mcp.WithString("format", mcp.Description("Result format. 'evaluation' returns raw values, 'report' the formatted report sections."), mcp.Enum("evaluation", "report")),
	), h.handleScoreProfile)

	// --- 2. Tool: list_rules ---
	s.AddTool(mcp.NewTool("list_rules",
		mcp.WithDescription("List the factor tables, level bands and scoring formula used by score_profile."),
		mcp.WithObject("weights", mcp.Description("Weight overrides per criterion to show next to each table.")),
	), h.handleListRules)

	return s
}

// StartMCPServer starts the dieprofile MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, version string) error {
	s := NewMCPServer(baseCfg, version)
	return server.ServeStdio(s)
}
