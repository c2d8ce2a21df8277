// Package report turns an evaluation into labeled report sections and renders them.
package report

import (
	"fmt"
	"time"

	"github.com/alutools/dieprofile/internal/numfmt"
	"github.com/alutools/dieprofile/schema"
)

// Report text.
const (
	Title           = "Profile Difficulty Analysis"
	Confidentiality = "For internal use only – Confidential"
	filenamePrefix  = "Profile_Difficulty_Report_"
)

// Section titles, in report order.
const (
	SectionInputs     = "Inputs"
	SectionSales      = "Sales Manager Info"
	SectionResults    = "Results"
	SectionCalculated = "Calculated"
	SectionFactors    = "Factors (0–10)"
	SectionWeights    = "Weights (0–100)"
)

// SectionOrder lists every section title in the order they are built.
var SectionOrder = []string{SectionInputs, SectionSales, SectionResults, SectionCalculated, SectionFactors, SectionWeights}

const scoreDecimals = 1

// Build flattens an evaluation and its metadata into the report model.
func Build(eval schema.Evaluation, meta schema.ReportMeta) *schema.Report {
	locale := meta.Locale
	if locale == "" {
		locale = schema.LocaleDE
	}

	generatedAt := meta.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	return &schema.Report{
		Title:       Title,
		Company:     meta.Company.Name,
		GeneratedOn: generatedAt.Format("02/01/2006"),
		Sections: []schema.ReportSection{
			inputsSection(eval.Input, locale),
			salesSection(meta.Sales),
			resultsSection(eval.Result, locale),
			calculatedSection(eval.Metrics, locale),
			factorsSection(eval.Factors, locale),
			weightsSection(eval.Weights, locale),
		},
		Footer: Confidentiality,
	}
}

// Filename returns the export file name for a report generated at t.
func Filename(t time.Time, ext string) string {
	return fmt.Sprintf("%s%s.%s", filenamePrefix, t.Format("20060102"), ext)
}

func inputsSection(in schema.ProfileInput, locale schema.LocaleName) schema.ReportSection {
	f := func(v float64) string { return numfmt.FormatInput(v, locale) }
	return schema.ReportSection{
		Title: SectionInputs,
		Rows: []schema.LabeledValue{
			{Label: "Profile Type", Value: string(in.ProfileType)},
			{Label: "Category", Value: string(in.Category)},
			{Label: "Slot depth (mm)", Value: f(in.SlotDepthMm)},
			{Label: "Slot opening width (mm)", Value: f(in.SlotOpeningWidthMm)},
			{Label: "Hollow sections", Value: numfmt.FormatInt(in.HollowSectionCount, locale)},
			{Label: "Wall thickness (mm)", Value: f(in.WallThicknessMm)},
			{Label: "Profile perimeter (mm)", Value: f(in.PerimeterMm)},
			{Label: "Profile weight (kg/m)", Value: f(in.WeightKgPerM)},
			{Label: "Cavities in die", Value: numfmt.FormatInt(in.CavityCount, locale)},
			{Label: "CD (mm)", Value: f(in.ContainerDiameterMm)},
			{Label: "Press size (inch)", Value: f(in.PressSizeInch)},
			{Label: "Alloy", Value: string(in.Alloy)},
			{Label: "Tolerance category", Value: string(in.ToleranceClass)},
			{Label: "Surface class", Value: string(in.SurfaceClass)},
		},
	}
}

func salesSection(s schema.SalesInfo) schema.ReportSection {
	return schema.ReportSection{
		Title: SectionSales,
		Rows: []schema.LabeledValue{
			{Label: "Sales Manager", Value: orPlaceholder(s.ManagerName)},
			{Label: "Quotation Date", Value: orPlaceholder(s.QuotationDate)},
			{Label: "Client Company", Value: orPlaceholder(s.ClientCompany)},
			{Label: "Profile Reference", Value: orPlaceholder(s.ProfileReference)},
		},
	}
}

func resultsSection(r schema.ScoreResult, locale schema.LocaleName) schema.ReportSection {
	return schema.ReportSection{
		Title: SectionResults,
		Rows: []schema.LabeledValue{
			{Label: "Difficulty Score (0–100)", Value: numfmt.Format(r.Score, scoreDecimals, locale)},
			{Label: "Difficulty Level", Value: orPlaceholder(string(r.Level))},
		},
	}
}

func calculatedSection(m schema.DerivedMetrics, locale schema.LocaleName) schema.ReportSection {
	return schema.ReportSection{
		Title: SectionCalculated,
		Rows: []schema.LabeledValue{
			{Label: "Tongue ratio", Value: numfmt.Format(m.TongueRatio, 2, locale)},
			{Label: "Weight in die (kg/m)", Value: numfmt.Format(m.WeightInDieKgPerM, 2, locale)},
			{Label: "Profile area (mm²)", Value: numfmt.Format(m.ProfileAreaMm2, 2, locale)},
			{Label: "Perimeter / Area", Value: numfmt.Format(m.PerimeterOverArea, 3, locale)},
			{Label: "Container Ø (mm)", Value: numfmt.Format(m.ContainerDiameterMm, 1, locale)},
			{Label: "Container area (mm²)", Value: numfmt.Format(m.ContainerAreaMm2, 1, locale)},
			{Label: "CD / Wall", Value: numfmt.Format(m.CDOverWall, 1, locale)},
			{Label: "Extrusion ratio", Value: numfmt.Format(m.ExtrusionRatio, 1, locale)},
		},
	}
}

func factorsSection(factors schema.FactorSet, locale schema.LocaleName) schema.ReportSection {
	rows := make([]schema.LabeledValue, 0, len(schema.AllCriteria))
	for _, key := range schema.AllCriteria {
		rows = append(rows, schema.LabeledValue{Label: schema.CriterionLabel(key), Value: numfmt.FormatInt(factors[key], locale)})
	}
	return schema.ReportSection{Title: SectionFactors, Rows: rows}
}

func weightsSection(weights schema.WeightSet, locale schema.LocaleName) schema.ReportSection {
	rows := make([]schema.LabeledValue, 0, len(schema.AllCriteria))
	for _, key := range schema.AllCriteria {
		rows = append(rows, schema.LabeledValue{Label: schema.CriterionLabel(key), Value: numfmt.FormatInput(weights.Get(key), locale)})
	}
	return schema.ReportSection{Title: SectionWeights, Rows: rows}
}

func orPlaceholder(s string) string {
	if s == "" {
		return numfmt.Placeholder
	}
	return s
}
