package cmd

import (
	"github.com/alutools/dieprofile/core"
	"github.com/alutools/dieprofile/internal/contract"
	"github.com/spf13/cobra"
)

// rulesCmd displays the factor tables.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Display the factor tables, levels and scoring formula",
	Long: `Show how every criterion maps its input to a 0-10 factor, the active
weights and the level bands of the final score.

No profile is needed - this is purely informational.

Examples:
  # Show the tables with default weights
  dieprofile rules

  # View with custom weights from config file
  dieprofile rules --config .dieprofile.yaml`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRules(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display rules", err)
		}
	},
}
