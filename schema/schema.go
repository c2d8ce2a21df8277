// Package schema has models, enums and defaults for all parts of dieprofile.
package schema

import "math"

// ProfileInput is the full snapshot of physical inputs describing one die profile.
// It is passed by value into the scoring engine; nothing in it is mutated there.
type ProfileInput struct {
	ProfileType         ProfileType    `json:"profile_type" yaml:"profile_type"`
	Category            Category       `json:"category" yaml:"category"`
	HollowSectionCount  int            `json:"hollow_section_count" yaml:"hollow_section_count"`
	WallThicknessMm     float64        `json:"wall_thickness_mm" yaml:"wall_thickness_mm"`
	SlotDepthMm         float64        `json:"slot_depth_mm" yaml:"slot_depth_mm"`
	SlotOpeningWidthMm  float64        `json:"slot_opening_width_mm" yaml:"slot_opening_width_mm"`
	PerimeterMm         float64        `json:"perimeter_mm" yaml:"perimeter_mm"`
	WeightKgPerM        float64        `json:"weight_kg_per_m" yaml:"weight_kg_per_m"`
	CavityCount         int            `json:"cavity_count" yaml:"cavity_count"`
	ContainerDiameterMm float64        `json:"container_diameter_mm" yaml:"container_diameter_mm"` // "CD" as entered, not derived from the press
	PressSizeInch       float64        `json:"press_size_inch" yaml:"press_size_inch"`
	Alloy               Alloy          `json:"alloy" yaml:"alloy"`
	ToleranceClass      ToleranceClass `json:"tolerance_class" yaml:"tolerance_class"`
	SurfaceClass        SurfaceClass   `json:"surface_class" yaml:"surface_class"`
}

// HollowsEditable reports whether the hollow section count is meaningful for this profile.
// Solid profiles always carry zero hollow sections.
func (p ProfileInput) HollowsEditable() bool {
	return p.ProfileType != SolidProfile
}

// Normalized returns a copy with the solid-profile rule applied.
func (p ProfileInput) Normalized() ProfileInput {
	if !p.HollowsEditable() {
		p.HollowSectionCount = 0
	}
	return p
}

// WeightSet holds one weight per criterion. Missing keys read as zero.
type WeightSet map[CriterionKey]float64

// Get returns the weight for a criterion, treating missing or non-finite values as zero.
func (w WeightSet) Get(key CriterionKey) float64 {
	v, ok := w[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Total returns the sum of all criterion weights.
func (w WeightSet) Total() float64 {
	var total float64
	for _, key := range AllCriteria {
		total += w.Get(key)
	}
	return total
}

// Clone returns a copy of the weight set.
func (w WeightSet) Clone() WeightSet {
	clone := make(WeightSet, len(w))
	for k, v := range w {
		clone[k] = v
	}
	return clone
}

// DerivedMetrics are the geometric quantities computed from a ProfileInput.
type DerivedMetrics struct {
	TongueRatio         float64 `json:"tongue_ratio" yaml:"tongue_ratio"`
	ProfileAreaMm2      float64 `json:"profile_area_mm2" yaml:"profile_area_mm2"`
	WeightInDieKgPerM   float64 `json:"weight_in_die_kg_per_m" yaml:"weight_in_die_kg_per_m"`
	PerimeterOverArea   float64 `json:"perimeter_over_area" yaml:"perimeter_over_area"`
	ContainerDiameterMm float64 `json:"container_diameter_mm" yaml:"container_diameter_mm"` // press size in mm
	ContainerAreaMm2    float64 `json:"container_area_mm2" yaml:"container_area_mm2"`
	CDOverWall          float64 `json:"cd_over_wall" yaml:"cd_over_wall"`
	ExtrusionRatio      float64 `json:"extrusion_ratio" yaml:"extrusion_ratio"`
}

// FactorSet holds one 0-10 factor per criterion.
type FactorSet map[CriterionKey]int

// ScoreResult is the aggregated difficulty.
type ScoreResult struct {
	Score float64 `json:"score" yaml:"score"` // 0-100
	Level Level   `json:"level" yaml:"level"`
}

// Evaluation is the complete output of one scoring pass.
type Evaluation struct {
	Input   ProfileInput   `json:"input" yaml:"input"`
	Weights WeightSet      `json:"weights" yaml:"weights"`
	Metrics DerivedMetrics `json:"metrics" yaml:"metrics"`
	Factors FactorSet      `json:"factors" yaml:"factors"`
	Result  ScoreResult    `json:"result" yaml:"result"`
}
