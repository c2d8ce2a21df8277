package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alutools/dieprofile/internal/contract"
	"github.com/alutools/dieprofile/internal/report"
	"github.com/alutools/dieprofile/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "dieprofile",
	Short:              "Score the manufacturing difficulty of extrusion die profiles.",
	Long:               `Dieprofile turns the physical inputs of an aluminium extrusion profile into a 0-100 difficulty score and a quotation report.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".dieprofile") // Name of config file (without extension)
		viper.SetConfigType("yaml")        // We'll use YAML format
		viper.AddConfigPath(".")           // Look in the current directory
		viper.AddConfigPath("$HOME")       // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("DIEPROFILE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("type", string(schema.HollowProfile))
	viper.SetDefault("category", string(schema.CategoryB))
	viper.SetDefault("press", contract.DefaultPressSizeInch)
	viper.SetDefault("alloy", string(schema.Alloy6063))
	viper.SetDefault("tolerance", string(schema.ToleranceStandard120202))
	viper.SetDefault("surface", string(schema.SurfaceMillFinish))
	viper.SetDefault("output", string(schema.TextOut))
	viper.SetDefault("locale", string(schema.LocaleDE))
	viper.SetDefault("emoji", "no")
	viper.SetDefault("color", "auto")
	viper.SetDefault("max-score", contract.DefaultMaxScore)
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, cmd *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Reports written to binary formats get the dated file name by default.
	if cmd.Name() == "report" {
		applyReportFilename(input, time.Now())
	}

	// 4. Run all validation and complex parsing.
	// This function populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	// 5. Unreadable numbers were scored as 0; tell the user which ones.
	for _, c := range cfg.Coercions {
		contract.LogWarn("Input coerced", c)
	}

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// applyReportFilename fills in Profile_Difficulty_Report_YYYYMMDD.<ext> for parquet and pdf
// reports when no output file was given.
func applyReportFilename(in *contract.ConfigRawInput, now time.Time) {
	if strings.TrimSpace(in.OutputFile) != "" {
		return
	}
	switch mode := schema.OutputMode(strings.ToLower(strings.TrimSpace(in.Output))); mode {
	case schema.ParquetOut, schema.PDFOut:
		in.OutputFile = report.Filename(now, string(mode))
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
