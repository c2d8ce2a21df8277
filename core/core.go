// Package core has core logic for metrics, factor rules and scoring.
package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/alutools/dieprofile/internal/contract"
	"github.com/alutools/dieprofile/internal/outwriter"
	"github.com/alutools/dieprofile/schema"
)

// ExecutorFunc defines the function signature for executing the different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ErrCheckFailed is returned by ExecuteCheck when the score is above the limit.
var ErrCheckFailed = errors.New("difficulty check failed")

// writer renders every command result.
var writer = outwriter.NewOutWriter()

// ExecuteScore evaluates the configured profile and prints the criteria, metrics and score.
// It serves as the main entry point for the 'score' command.
func ExecuteScore(_ context.Context, cfg *contract.Config) error {
	eval := Evaluate(cfg.Profile, cfg.Weights)
	return writer.WriteEvaluation(eval, cfg)
}

// ExecuteReport evaluates the configured profile and prints the full report.
func ExecuteReport(_ context.Context, cfg *contract.Config) error {
	eval := Evaluate(cfg.Profile, cfg.Weights)
	return writer.WriteReport(eval, cfg)
}

// ExecuteRules displays the factor tables with the active weights.
// This is a static display that does not require a profile.
func ExecuteRules(_ context.Context, cfg *contract.Config) error {
	return writer.WriteRules(RulesModel(cfg.Weights), cfg)
}

// ExecuteCheck gates a profile on its score for CI/CD use.
// It prints the result and returns ErrCheckFailed when the score exceeds cfg.MaxScore.
func ExecuteCheck(_ context.Context, cfg *contract.Config) error {
	result := Check(Evaluate(cfg.Profile, cfg.Weights), cfg.MaxScore)
	if err := writer.WriteCheck(result, cfg); err != nil {
		return err
	}
	if !result.Passed {
		return fmt.Errorf("%w: score %.1f is above %.1f", ErrCheckFailed, result.Score, result.MaxScore)
	}
	return nil
}

// Check compares an evaluation against a maximum score; a score equal to the limit passes.
func Check(eval schema.Evaluation, maxScore float64) schema.CheckResult {
	return schema.CheckResult{
		Passed:   eval.Result.Score <= maxScore,
		Score:    eval.Result.Score,
		Level:    eval.Result.Level,
		MaxScore: maxScore,
	}
}
