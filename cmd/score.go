package cmd

import (
	"github.com/alutools/dieprofile/core"
	"github.com/alutools/dieprofile/internal/contract"
	"github.com/spf13/cobra"
)

// scoreCmd scores a single profile.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score the difficulty of one profile",
	Long: `Compute the derived metrics, the 0-10 factor of every criterion and the
weighted 0-100 difficulty score with its level.

Inputs come from flags, DIEPROFILE_* environment variables or .dieprofile.yaml.
Numbers accept both decimal commas and decimal points.

Examples:
  # Hollow B profile on a 7" press
  dieprofile score --wall 1,2 --perimeter 250 --weight 1,1 --cavities 2 --cd 30

  # Weigh wall thickness more heavily
  dieprofile score --wall 1.2 --weight 1.1 --cavities 2 --set-weight wall:30

  # Machine readable output
  dieprofile score --wall 1.2 --weight 1.1 --cavities 2 --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot score profile", err)
		}
	},
}
