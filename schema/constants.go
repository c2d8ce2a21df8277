package schema

// Custom string types for type safety.
type (
	// CriterionKey identifies one of the twelve scoring criteria.
	CriterionKey string

	// ProfileType is the shape class of the profile.
	ProfileType string

	// Category is the commercial profile category.
	Category string

	// Alloy is an aluminium alloy code.
	Alloy string

	// ToleranceClass is the dimensional tolerance class requested for the profile.
	ToleranceClass string

	// SurfaceClass is the surface finish class requested for the profile.
	SurfaceClass string

	// Level is the qualitative difficulty bucket of a score.
	Level string

	// OutputMode represents the format of the output.
	OutputMode string

	// LocaleName selects the number formatting convention.
	LocaleName string
)

// Criterion keys used by factors and weights.
const (
	CriterionType              CriterionKey = "type"
	CriterionCategory          CriterionKey = "category"
	CriterionTongue            CriterionKey = "tongue"
	CriterionHollows           CriterionKey = "hollows"
	CriterionWall              CriterionKey = "wall"
	CriterionPerimeterOverArea CriterionKey = "perimeterOverArea"
	CriterionCavities          CriterionKey = "cavities"
	CriterionCDOverWall        CriterionKey = "cdOverWall"
	CriterionAlloy             CriterionKey = "alloy"
	CriterionTolerance         CriterionKey = "tolerance"
	CriterionSurface           CriterionKey = "surface"
	CriterionExtrusionRatio    CriterionKey = "extrusionRatio"
)

// AllCriteria lists every criterion in display order.
var AllCriteria = []CriterionKey{
	CriterionType,
	CriterionCategory,
	CriterionTongue,
	CriterionHollows,
	CriterionWall,
	CriterionPerimeterOverArea,
	CriterionCavities,
	CriterionCDOverWall,
	CriterionAlloy,
	CriterionTolerance,
	CriterionSurface,
	CriterionExtrusionRatio,
}

// Profile types.
const (
	SolidProfile  ProfileType = "Solid"
	HollowProfile ProfileType = "Hollow"
)

// Profile categories.
const (
	CategoryA  Category = "A"
	CategoryB  Category = "B"
	CategoryC  Category = "C"
	CategorySP Category = "SP"
)

// Supported alloy codes.
const (
	Alloy6060  Alloy = "6060"
	Alloy6063  Alloy = "6063"
	Alloy6463  Alloy = "6463"
	Alloy6101  Alloy = "6101"
	Alloy6106  Alloy = "6106"
	Alloy6005A Alloy = "6005A"
	Alloy6061  Alloy = "6061"
	Alloy6082  Alloy = "6082"
)

// Tolerance classes. Values are the labels used on quotation documents.
const (
	ToleranceStandard7559    ToleranceClass = "Acc. 755-9"
	ToleranceStandard120202  ToleranceClass = "Acc. 12020-2"
	ToleranceTighter7559     ToleranceClass = "> 30% < 755-9"
	ToleranceTighter120202   ToleranceClass = "> 30% < 12020-2"
	ToleranceMoreRestrictive ToleranceClass = "More restrictive"
)

// Surface classes.
const (
	SurfaceNone         SurfaceClass = "None"
	SurfaceMillFinish   SurfaceClass = "Mill Finish"
	SurfacePowderCoated SurfaceClass = "Powder Coated"
	SurfaceAnodised     SurfaceClass = "Anodised"
)

// Difficulty levels.
const (
	VeryEasyLevel      Level = "Very easy"
	EasyLevel          Level = "Easy"
	NormalLevel        Level = "Normal"
	DifficultLevel     Level = "Difficult"
	VeryDifficultLevel Level = "Very Difficult"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	YAMLOut    OutputMode = "yaml"
	ParquetOut OutputMode = "parquet"
	PDFOut     OutputMode = "pdf"
)

// Number formatting locales.
const (
	LocaleDE LocaleName = "de" // default
	LocaleEN LocaleName = "en"
)

// AllProfileTypes lists the supported profile types.
var AllProfileTypes = []ProfileType{SolidProfile, HollowProfile}

// AllCategories lists the supported categories.
var AllCategories = []Category{CategoryA, CategoryB, CategoryC, CategorySP}

// AllAlloys lists the alloy codes with a known factor.
var AllAlloys = []Alloy{Alloy6060, Alloy6063, Alloy6463, Alloy6101, Alloy6106, Alloy6005A, Alloy6061, Alloy6082}

// AllToleranceClasses lists the supported tolerance classes.
var AllToleranceClasses = []ToleranceClass{
	ToleranceStandard7559,
	ToleranceStandard120202,
	ToleranceTighter7559,
	ToleranceTighter120202,
	ToleranceMoreRestrictive,
}

// AllSurfaceClasses lists the supported surface classes.
var AllSurfaceClasses = []SurfaceClass{SurfaceNone, SurfaceMillFinish, SurfacePowderCoated, SurfaceAnodised}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	YAMLOut:    {},
	ParquetOut: {},
	PDFOut:     {},
}

// ValidLocales lists all valid number formatting locales.
var ValidLocales = map[LocaleName]struct{}{
	LocaleDE: {},
	LocaleEN: {},
}

// DefaultWeights returns the default weight for every criterion.
// The values mirror the reference sheet used by sales; they do not need to sum to 100.
func DefaultWeights() WeightSet {
	return WeightSet{
		CriterionType:              10,
		CriterionCategory:          10,
		CriterionTongue:            5,
		CriterionHollows:           10,
		CriterionWall:              10,
		CriterionPerimeterOverArea: 5,
		CriterionCavities:          5,
		CriterionCDOverWall:        5,
		CriterionAlloy:             10,
		CriterionTolerance:         10,
		CriterionSurface:           5,
		CriterionExtrusionRatio:    15,
	}
}

// DefaultProfileInput returns the form defaults: a hollow B profile on a 7" press
// in 6063, standard 12020-2 tolerance, mill finish. Numeric dimensions start at zero.
func DefaultProfileInput() ProfileInput {
	return ProfileInput{
		ProfileType:    HollowProfile,
		Category:       CategoryB,
		PressSizeInch:  7,
		Alloy:          Alloy6063,
		ToleranceClass: ToleranceStandard120202,
		SurfaceClass:   SurfaceMillFinish,
	}
}
