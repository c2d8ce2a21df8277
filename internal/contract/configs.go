// Package contract provides the validated configuration and shared utilities for internal packages.
package contract

import (
	"fmt"
	"maps"
	"os"
	"strings"
	"time"

	"github.com/alutools/dieprofile/internal/numfmt"
	"github.com/alutools/dieprofile/schema"
	"golang.org/x/term"
)

// Default values for configuration.
const (
	DefaultPressSizeInch = 7.0
	DefaultMaxScore      = 60.0 // Difficult and above fail the check
	MaxWeight            = 100.0
)

// Coercion records a non-blank input that could not be read as a number and became 0.
type Coercion struct {
	Field string
	Raw   string
}

func (c Coercion) Error() string {
	return fmt.Sprintf("%s: cannot read %q as a number, using 0", c.Field, c.Raw)
}

// Config holds the runtime configuration for scoring and reporting.
// This struct remains the "final, validated" config.
type Config struct {
	Profile schema.ProfileInput
	Weights schema.WeightSet

	Company     schema.CompanyInfo
	Sales       schema.SalesInfo
	GeneratedAt time.Time

	Locale     schema.LocaleName
	Output     schema.OutputMode
	OutputFile string
	MaxScore   float64 // Upper bound enforced by the check command

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output

	// Coercions lists every numeric input that silently fell back to 0.
	Coercions []Coercion
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct. Numbers stay strings so that "1,2" and
// "1.2" both reach the lenient parser.
type ConfigRawInput struct {
	// --- Profile fields ---
	Type        string `mapstructure:"type"`
	Category    string `mapstructure:"category"`
	Hollows     string `mapstructure:"hollows"`
	Wall        string `mapstructure:"wall"`
	SlotDepth   string `mapstructure:"slot-depth"`
	SlotOpening string `mapstructure:"slot-opening"`
	Perimeter   string `mapstructure:"perimeter"`
	Weight      string `mapstructure:"weight"`
	Cavities    string `mapstructure:"cavities"`
	CD          string `mapstructure:"cd"`
	Press       string `mapstructure:"press"`
	Alloy       string `mapstructure:"alloy"`
	Tolerance   string `mapstructure:"tolerance"`
	Surface     string `mapstructure:"surface"`

	// --- Report metadata ---
	Company       string `mapstructure:"company"`
	Logo          string `mapstructure:"logo"`
	SalesManager  string `mapstructure:"sales-manager"`
	QuotationDate string `mapstructure:"quotation-date"`
	Client        string `mapstructure:"client"`
	ProfileRef    string `mapstructure:"profile-ref"`

	// --- Output ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Locale     string `mapstructure:"locale"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`

	// --- Fields from checkCmd.Flags() ---
	MaxScore string `mapstructure:"max-score"`

	// --- Weights: config file map, then repeated --set-weight key:value flags ---
	Weights         map[string]string `mapstructure:"weights"`
	WeightOverrides []string          `mapstructure:"set-weight"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Weights != nil {
		clone.Weights = make(schema.WeightSet, len(c.Weights))
		maps.Copy(clone.Weights, c.Weights)
	}
	if c.Coercions != nil {
		clone.Coercions = make([]Coercion, len(c.Coercions))
		copy(clone.Coercions, c.Coercions)
	}
	return &clone
}

// ReportMeta returns the metadata printed around an evaluation.
func (c *Config) ReportMeta() schema.ReportMeta {
	return schema.ReportMeta{
		Company:     c.Company,
		Sales:       c.Sales,
		GeneratedAt: c.GeneratedAt,
		Locale:      c.Locale,
	}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.Coercions = nil
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processProfile(cfg, input); err != nil {
		return err
	}
	if err := processWeights(cfg, input); err != nil {
		return err
	}
	if err := processMaxScore(cfg, input); err != nil {
		return err
	}
	processReportMeta(cfg, input)
	return nil
}

// validateSimpleInputs processes output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)

	cfg.Output = schema.OutputMode(strings.ToLower(strings.TrimSpace(input.Output)))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, yaml, parquet, pdf", input.Output)
	}
	if (cfg.Output == schema.ParquetOut || cfg.Output == schema.PDFOut) && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for %s output", cfg.Output)
	}

	cfg.Locale = schema.LocaleName(strings.ToLower(strings.TrimSpace(input.Locale)))
	if cfg.Locale == "" {
		cfg.Locale = schema.LocaleDE
	}
	if _, ok := schema.ValidLocales[cfg.Locale]; !ok {
		return fmt.Errorf("invalid locale '%s'. must be de or en", input.Locale)
	}

	emojis, err := ParseBoolString(orDefault(input.Emoji, "no"))
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	if strings.EqualFold(strings.TrimSpace(input.Color), "auto") || strings.TrimSpace(input.Color) == "" {
		cfg.UseColors = term.IsTerminal(int(os.Stdout.Fd()))
	} else {
		colors, err := ParseBoolString(input.Color)
		if err != nil {
			return fmt.Errorf("invalid --color value: %w", err)
		}
		cfg.UseColors = colors
	}

	return nil
}

// processProfile parses the profile fields. Enums must be valid when given;
// numbers that cannot be read become 0 and are recorded as coercions.
func processProfile(cfg *Config, input *ConfigRawInput) error {
	p, err := cfg.applyProfile(schema.DefaultProfileInput(), input, false)
	if err != nil {
		return err
	}
	cfg.Profile = p
	return nil
}

// processWeights starts from the default weights and applies the config file map,
// then every --set-weight key:value override in order.
func processWeights(cfg *Config, input *ConfigRawInput) error {
	weights, err := cfg.applyWeights(schema.DefaultWeights(), input)
	if err != nil {
		return err
	}
	cfg.Weights = weights
	return nil
}

// RevalidateProfile applies profile and weight overrides on top of an already
// validated config. Blank fields keep their current values.
func RevalidateProfile(cfg *Config, input *ConfigRawInput) error {
	p, err := cfg.applyProfile(cfg.Profile, input, true)
	if err != nil {
		return err
	}
	weights, err := cfg.applyWeights(cfg.Weights.Clone(), input)
	if err != nil {
		return err
	}
	cfg.Profile = p
	cfg.Weights = weights
	return nil
}

func (c *Config) applyProfile(p schema.ProfileInput, input *ConfigRawInput, keepBlank bool) (schema.ProfileInput, error) {
	var err error

	if s := strings.TrimSpace(input.Type); s != "" {
		if p.ProfileType, err = schema.ParseProfileType(s); err != nil {
			return p, fmt.Errorf("invalid --type: %w", err)
		}
	}
	if s := strings.TrimSpace(input.Category); s != "" {
		if p.Category, err = schema.ParseCategory(s); err != nil {
			return p, fmt.Errorf("invalid --category: %w", err)
		}
	}
	if s := strings.TrimSpace(input.Alloy); s != "" {
		if p.Alloy, err = schema.ParseAlloy(s); err != nil {
			return p, fmt.Errorf("invalid --alloy: %w", err)
		}
	}
	if s := strings.TrimSpace(input.Tolerance); s != "" {
		if p.ToleranceClass, err = schema.ParseToleranceClass(s); err != nil {
			return p, fmt.Errorf("invalid --tolerance: %w", err)
		}
	}
	if s := strings.TrimSpace(input.Surface); s != "" {
		if p.SurfaceClass, err = schema.ParseSurfaceClass(s); err != nil {
			return p, fmt.Errorf("invalid --surface: %w", err)
		}
	}

	setFloat := func(dst *float64, field, raw string) {
		if keepBlank && strings.TrimSpace(raw) == "" {
			return
		}
		*dst = c.readFloat(field, raw)
	}
	setInt := func(dst *int, field, raw string) {
		if keepBlank && strings.TrimSpace(raw) == "" {
			return
		}
		*dst = c.readInt(field, raw)
	}

	setInt(&p.HollowSectionCount, "hollows", input.Hollows)
	setFloat(&p.WallThicknessMm, "wall", input.Wall)
	setFloat(&p.SlotDepthMm, "slot-depth", input.SlotDepth)
	setFloat(&p.SlotOpeningWidthMm, "slot-opening", input.SlotOpening)
	setFloat(&p.PerimeterMm, "perimeter", input.Perimeter)
	setFloat(&p.WeightKgPerM, "weight", input.Weight)
	setInt(&p.CavityCount, "cavities", input.Cavities)
	setFloat(&p.ContainerDiameterMm, "cd", input.CD)
	if strings.TrimSpace(input.Press) != "" {
		p.PressSizeInch = c.readFloat("press", input.Press)
	}

	return p.Normalized(), nil
}

func (c *Config) applyWeights(weights schema.WeightSet, input *ConfigRawInput) (schema.WeightSet, error) {
	for rawKey, rawValue := range input.Weights {
		key, err := schema.ParseCriterionKey(rawKey)
		if err != nil {
			return nil, fmt.Errorf("invalid weights entry: %w", err)
		}
		weights[key] = c.readFloat("weights."+string(key), rawValue)
	}

	for _, assignment := range input.WeightOverrides {
		rawKey, rawValue, err := ParseWeightAssignment(assignment)
		if err != nil {
			return nil, fmt.Errorf("invalid --set-weight: %w", err)
		}
		key, err := schema.ParseCriterionKey(rawKey)
		if err != nil {
			return nil, fmt.Errorf("invalid --set-weight: %w", err)
		}
		weights[key] = c.readFloat("set-weight."+string(key), rawValue)
	}

	for _, key := range schema.AllCriteria {
		if w := weights.Get(key); w < 0 || w > MaxWeight {
			return nil, fmt.Errorf("weight for %s must be between 0 and %.0f (received %.2f)", key, MaxWeight, w)
		}
	}
	return weights, nil
}

// processMaxScore reads the check threshold.
func processMaxScore(cfg *Config, input *ConfigRawInput) error {
	cfg.MaxScore = DefaultMaxScore
	if strings.TrimSpace(input.MaxScore) == "" {
		return nil
	}
	v, ok := numfmt.ParseLenient(input.MaxScore)
	if !ok {
		return fmt.Errorf("invalid --max-score '%s'", input.MaxScore)
	}
	if v < 0 || v > 100 {
		return fmt.Errorf("max score must be between 0 and 100 (received %.2f)", v)
	}
	cfg.MaxScore = v
	return nil
}

// processReportMeta copies the free-text report fields.
func processReportMeta(cfg *Config, input *ConfigRawInput) {
	cfg.Company = schema.CompanyInfo{
		Name:     strings.TrimSpace(input.Company),
		LogoPath: strings.TrimSpace(input.Logo),
	}
	cfg.Sales = schema.SalesInfo{
		ManagerName:      strings.TrimSpace(input.SalesManager),
		QuotationDate:    strings.TrimSpace(input.QuotationDate),
		ClientCompany:    strings.TrimSpace(input.Client),
		ProfileReference: strings.TrimSpace(input.ProfileRef),
	}
	cfg.GeneratedAt = time.Now()
}

// readFloat parses a user number. Blank reads as 0 without a coercion.
func (c *Config) readFloat(field, raw string) float64 {
	if strings.TrimSpace(raw) == "" {
		return 0
	}
	v, ok := numfmt.ParseLenient(raw)
	if !ok {
		c.Coercions = append(c.Coercions, Coercion{Field: field, Raw: raw})
	}
	return v
}

// readInt parses a whole user number the same way as readFloat.
func (c *Config) readInt(field, raw string) int {
	return int(c.readFloat(field, raw))
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
