// Package cmd defines the command-line interface for dieprofile.
package cmd

import (
	"github.com/alutools/dieprofile/internal/contract"
	"github.com/alutools/dieprofile/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Profile inputs. Numbers are read as text so that "1,2" and "1.2" both work.
	rootCmd.PersistentFlags().String("type", string(schema.HollowProfile), "Profile type: Solid or Hollow")
	rootCmd.PersistentFlags().String("category", string(schema.CategoryB), "Profile category: A or B or C or SP")
	rootCmd.PersistentFlags().String("hollows", "", "Number of hollow sections (forced to 0 for solid profiles)")
	rootCmd.PersistentFlags().String("wall", "", "Wall thickness in mm")
	rootCmd.PersistentFlags().String("slot-depth", "", "Slot depth in mm")
	rootCmd.PersistentFlags().String("slot-opening", "", "Slot opening width in mm")
	rootCmd.PersistentFlags().String("perimeter", "", "Profile perimeter in mm")
	rootCmd.PersistentFlags().String("weight", "", "Profile weight in kg/m")
	rootCmd.PersistentFlags().String("cavities", "", "Cavities in the die")
	rootCmd.PersistentFlags().String("cd", "", "Container diameter (CD) in mm")
	rootCmd.PersistentFlags().String("press", "", "Press size in inches (default 7)")
	rootCmd.PersistentFlags().String("alloy", string(schema.Alloy6063), "Alloy: 6060, 6063, 6463, 6101, 6106, 6005A, 6061 or 6082")
	rootCmd.PersistentFlags().String("tolerance", string(schema.ToleranceStandard120202), "Tolerance class, e.g. 'Acc. 755-9' or 'More restrictive'")
	rootCmd.PersistentFlags().String("surface", string(schema.SurfaceMillFinish), "Surface class: None, Mill Finish, Powder Coated or Anodised")
	rootCmd.PersistentFlags().StringArray("set-weight", nil, "Override a criterion weight (0-100), e.g. --set-weight wall:20; repeatable")

	// Report metadata
	rootCmd.PersistentFlags().String("company", "", "Company name printed on reports")
	rootCmd.PersistentFlags().String("logo", "", "Path to a PNG/JPG/GIF logo for PDF reports")
	rootCmd.PersistentFlags().String("sales-manager", "", "Sales manager name")
	rootCmd.PersistentFlags().String("quotation-date", "", "Quotation date")
	rootCmd.PersistentFlags().String("client", "", "Client company")
	rootCmd.PersistentFlags().String("profile-ref", "", "Profile reference")

	// Output
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or yaml or parquet or pdf")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("locale", string(schema.LocaleDE), "Number format: de or en")
	rootCmd.PersistentFlags().String("emoji", "no", "Prefix headers with emojis (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "auto", "Enable colored levels in output (auto/yes/no)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().String("max-score", "", "Highest score that still passes (default 60)")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}
}
