package schema

import (
	"fmt"
	"strings"
	"unicode"
)

// criterionLabels are the display names used on screen and in reports.
var criterionLabels = map[CriterionKey]string{
	CriterionType:              "Profile Type",
	CriterionCategory:          "Category",
	CriterionTongue:            "Tongue ratio",
	CriterionHollows:           "Hollow sections",
	CriterionWall:              "Wall thickness",
	CriterionPerimeterOverArea: "Perimeter/Area",
	CriterionCavities:          "Cavities in die",
	CriterionCDOverWall:        "CD/wall",
	CriterionAlloy:             "Alloy",
	CriterionTolerance:         "Tolerance category",
	CriterionSurface:           "Surface class",
	CriterionExtrusionRatio:    "Extrusion ratio",
}

// CriterionLabel returns the display name of a criterion.
func CriterionLabel(key CriterionKey) string {
	if label, ok := criterionLabels[key]; ok {
		return label
	}
	return string(key)
}

// ParseCriterionKey resolves a criterion from its key, ignoring case and separators
// so that "perimeter_over_area" and "perimeterOverArea" are the same criterion.
func ParseCriterionKey(s string) (CriterionKey, error) {
	if v, ok := matchEnum(s, AllCriteria, nil); ok {
		return v, nil
	}
	return "", fmt.Errorf("unknown criterion '%s'", s)
}

// ParseProfileType resolves a profile type name.
func ParseProfileType(s string) (ProfileType, error) {
	if v, ok := matchEnum(s, AllProfileTypes, nil); ok {
		return v, nil
	}
	return "", fmt.Errorf("invalid profile type '%s'. must be Solid or Hollow", s)
}

// ParseCategory resolves a profile category.
func ParseCategory(s string) (Category, error) {
	if v, ok := matchEnum(s, AllCategories, nil); ok {
		return v, nil
	}
	return "", fmt.Errorf("invalid category '%s'. must be A, B, C or SP", s)
}

// ParseAlloy resolves an alloy code.
func ParseAlloy(s string) (Alloy, error) {
	if v, ok := matchEnum(s, AllAlloys, nil); ok {
		return v, nil
	}
	return "", fmt.Errorf("unsupported alloy '%s'", s)
}

// toleranceAliases accepts the descriptive class names next to the document labels.
var toleranceAliases = map[string]ToleranceClass{
	"standard7559":       ToleranceStandard7559,
	"standard120202":     ToleranceStandard120202,
	"tighterthan7559":    ToleranceTighter7559,
	"tighterthan120202":  ToleranceTighter120202,
	"morerestrictive":    ToleranceMoreRestrictive,
	"stricterthan7559":   ToleranceTighter7559,
	"stricterthan120202": ToleranceTighter120202,
}

// ParseToleranceClass resolves a tolerance class from its document label
// ("Acc. 12020-2") or its descriptive name ("Standard-12020-2").
func ParseToleranceClass(s string) (ToleranceClass, error) {
	if v, ok := matchEnum(s, AllToleranceClasses, toleranceAliases); ok {
		return v, nil
	}
	return "", fmt.Errorf("invalid tolerance class '%s'", s)
}

// ParseSurfaceClass resolves a surface class ("Mill Finish", "MillFinish", "mill-finish").
func ParseSurfaceClass(s string) (SurfaceClass, error) {
	if v, ok := matchEnum(s, AllSurfaceClasses, map[string]SurfaceClass{"anodized": SurfaceAnodised}); ok {
		return v, nil
	}
	return "", fmt.Errorf("invalid surface class '%s'", s)
}

// matchEnum compares normalized keys of all known values and aliases.
func matchEnum[T ~string](s string, all []T, aliases map[string]T) (T, bool) {
	key := normalizeKey(s)
	if key == "" {
		var zero T
		return zero, false
	}
	for _, v := range all {
		if normalizeKey(string(v)) == key {
			return v, true
		}
	}
	if v, ok := aliases[key]; ok {
		return v, true
	}
	var zero T
	return zero, false
}

// normalizeKey lowercases and drops everything that is not a letter or digit.
func normalizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
