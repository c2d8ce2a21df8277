// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/alutools/dieprofile/internal/contract"
	"github.com/alutools/dieprofile/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteEvaluation prints a scoring pass using the configured output format.
func (ow *OutWriter) WriteEvaluation(eval schema.Evaluation, cfg *contract.Config) error {
	return PrintEvaluation(eval, cfg)
}

// WriteReport prints the full report of a scoring pass using the configured output format.
func (ow *OutWriter) WriteReport(eval schema.Evaluation, cfg *contract.Config) error {
	return PrintReport(eval, cfg)
}

// WriteRules prints the factor rule tables using the configured output format.
func (ow *OutWriter) WriteRules(model *schema.RulesRenderModel, cfg *contract.Config) error {
	return PrintRules(model, cfg)
}

// WriteCheck prints the outcome of a score gate using the configured output format.
func (ow *OutWriter) WriteCheck(result schema.CheckResult, cfg *contract.Config) error {
	return PrintCheckResult(result, cfg)
}
