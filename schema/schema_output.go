package schema

import "time"

// LabeledValue is a single display row: a human label and its formatted value.
type LabeledValue struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// ReportSection is a titled table of labeled values.
type ReportSection struct {
	Title string         `json:"title" yaml:"title"`
	Rows  []LabeledValue `json:"rows" yaml:"rows"`
}

// CompanyInfo identifies the company issuing the report.
type CompanyInfo struct {
	Name     string `json:"name" yaml:"name"`
	LogoPath string `json:"logo_path,omitempty" yaml:"logo_path,omitempty"`
}

// SalesInfo is the free-text quotation context printed on the report.
type SalesInfo struct {
	ManagerName      string `json:"manager_name" yaml:"manager_name"`
	QuotationDate    string `json:"quotation_date" yaml:"quotation_date"`
	ClientCompany    string `json:"client_company" yaml:"client_company"`
	ProfileReference string `json:"profile_reference" yaml:"profile_reference"`
}

// ReportMeta carries everything a report needs besides the evaluation itself.
type ReportMeta struct {
	Company     CompanyInfo
	Sales       SalesInfo
	GeneratedAt time.Time
	Locale      LocaleName
}

// Report is the presentation model shared by every report sink.
type Report struct {
	Title       string          `json:"title" yaml:"title"`
	Company     string          `json:"company" yaml:"company"`
	GeneratedOn string          `json:"generated_on" yaml:"generated_on"`
	Sections    []ReportSection `json:"sections" yaml:"sections"`
	Footer      string          `json:"footer" yaml:"footer"`
}

// Section returns the section with the given title and whether it exists.
func (r *Report) Section(title string) (ReportSection, bool) {
	for _, s := range r.Sections {
		if s.Title == title {
			return s, true
		}
	}
	return ReportSection{}, false
}

// CheckResult holds the outcome of a score gate.
type CheckResult struct {
	Passed   bool    `json:"passed" yaml:"passed"`
	Score    float64 `json:"score" yaml:"score"`
	Level    Level   `json:"level" yaml:"level"`
	MaxScore float64 `json:"max_score" yaml:"max_score"`
}
