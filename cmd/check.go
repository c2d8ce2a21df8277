package cmd

import (
	"github.com/alutools/dieprofile/core"
	"github.com/alutools/dieprofile/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd gates a profile on its difficulty score.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fail when a profile is harder than the allowed score",
	Long: `Score a profile and exit with a non-zero code when the score is above --max-score.

Default limit: 60 (Difficult and Very Difficult profiles fail)

Use cases:
- Quotation pipelines - flag profiles that need a tooling review
- Batch scripts - stop on the first profile that is too hard

Examples:
  # Default limit
  dieprofile check --config quote.yaml

  # Stricter limit
  dieprofile check --config quote.yaml --max-score 40`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg); err != nil {
			contract.LogFatal("Difficulty check failed", err)
		}
	},
}
