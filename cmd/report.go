package cmd

import (
	"github.com/alutools/dieprofile/core"
	"github.com/alutools/dieprofile/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd renders the quotation report of a profile.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the difficulty report of one profile",
	Long: `Build the full report: inputs, sales manager info, results, calculated
values, factors and weights.

PDF and Parquet reports are written to Profile_Difficulty_Report_YYYYMMDD.<ext>
unless --output-file is given.

Examples:
  # Print the report tables
  dieprofile report --config quote.yaml

  # A4 PDF with company logo
  dieprofile report --config quote.yaml --output pdf --company "ACME" --logo logo.png`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot render report", err)
		}
	},
}
