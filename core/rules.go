package core

import (
	"fmt"
	"strconv"

	"github.com/alutools/dieprofile/schema"
)

// factorRule maps one criterion of a profile to a 0-10 factor.
type factorRule interface {
	Criterion() schema.CriterionKey
	Factor(in schema.ProfileInput, m schema.DerivedMetrics) int
	Table() schema.RuleTable
}

// rangeBranch is one (predicate, factor) pair of a numeric table.
type rangeBranch struct {
	cond   string
	match  func(float64) bool
	factor int
}

// rangeRule evaluates its branches in order; the first match wins.
type rangeRule struct {
	key      schema.CriterionKey
	input    string
	value    func(schema.ProfileInput, schema.DerivedMetrics) float64
	branches []rangeBranch
	fallback int
}

func (r rangeRule) Criterion() schema.CriterionKey { return r.key }

func (r rangeRule) Factor(in schema.ProfileInput, m schema.DerivedMetrics) int {
	return r.factorOf(r.value(in, m))
}

func (r rangeRule) factorOf(v float64) int {
	for _, b := range r.branches {
		if b.match(v) {
			return b.factor
		}
	}
	return r.fallback
}

func (r rangeRule) Table() schema.RuleTable {
	t := schema.RuleTable{Key: r.key, Name: schema.CriterionLabel(r.key), Input: r.input, Fallback: r.fallback}
	for _, b := range r.branches {
		t.Branches = append(t.Branches, schema.RuleBranch{Condition: b.cond, Factor: b.factor})
	}
	return t
}

// matchBranch pairs an exact input value with its factor.
type matchBranch struct {
	value  string
	factor int
}

// matchRule looks up an enum value; unknown values get the fallback.
type matchRule struct {
	key      schema.CriterionKey
	input    string
	value    func(schema.ProfileInput) string
	branches []matchBranch
	fallback int
}

func (r matchRule) Criterion() schema.CriterionKey { return r.key }

func (r matchRule) Factor(in schema.ProfileInput, _ schema.DerivedMetrics) int {
	v := r.value(in)
	for _, b := range r.branches {
		if b.value == v {
			return b.factor
		}
	}
	return r.fallback
}

func (r matchRule) Table() schema.RuleTable {
	t := schema.RuleTable{Key: r.key, Name: schema.CriterionLabel(r.key), Input: r.input, Fallback: r.fallback}
	for _, b := range r.branches {
		t.Branches = append(t.Branches, schema.RuleBranch{Condition: b.value, Factor: b.factor})
	}
	return t
}

// --- predicate builders ---

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func lt(x float64) (string, func(float64) bool) {
	return "< " + num(x), func(v float64) bool { return v < x }
}

func le(x float64) (string, func(float64) bool) {
	return "<= " + num(x), func(v float64) bool { return v <= x }
}

func ge(x float64) (string, func(float64) bool) {
	return ">= " + num(x), func(v float64) bool { return v >= x }
}

func gt(x float64) (string, func(float64) bool) {
	return "> " + num(x), func(v float64) bool { return v > x }
}

func eq(x float64) (string, func(float64) bool) {
	return "= " + num(x), func(v float64) bool { return v == x }
}

// closed matches lo <= v <= hi.
func closed(lo, hi float64) (string, func(float64) bool) {
	return fmt.Sprintf("[%s, %s]", num(lo), num(hi)), func(v float64) bool { return v >= lo && v <= hi }
}

// halfOpen matches lo <= v < hi.
func halfOpen(lo, hi float64) (string, func(float64) bool) {
	return fmt.Sprintf("[%s, %s)", num(lo), num(hi)), func(v float64) bool { return v >= lo && v < hi }
}

func branch(pred func(float64) (string, func(float64) bool), x float64, factor int) rangeBranch {
	cond, match := pred(x)
	return rangeBranch{cond: cond, match: match, factor: factor}
}

func span(pred func(float64, float64) (string, func(float64) bool), lo, hi float64, factor int) rangeBranch {
	cond, match := pred(lo, hi)
	return rangeBranch{cond: cond, match: match, factor: factor}
}

// Rules lists every factor rule in display order. The tables are fixed.
var Rules = []factorRule{
	matchRule{
		key:   schema.CriterionType,
		input: "profile type",
		value: func(in schema.ProfileInput) string { return string(in.ProfileType) },
		branches: []matchBranch{
			{string(schema.SolidProfile), 3},
			{string(schema.HollowProfile), 10},
		},
	},
	matchRule{
		key:   schema.CriterionCategory,
		input: "category",
		value: func(in schema.ProfileInput) string { return string(in.Category) },
		branches: []matchBranch{
			{string(schema.CategoryA), 1},
			{string(schema.CategoryB), 3},
			{string(schema.CategoryC), 6},
			{string(schema.CategorySP), 10},
		},
	},
	rangeRule{
		key:   schema.CriterionTongue,
		input: "tongue ratio",
		value: func(_ schema.ProfileInput, m schema.DerivedMetrics) float64 { return m.TongueRatio },
		// 7 < ratio < 10 matches nothing and scores the fallback.
		branches: []rangeBranch{
			branch(le, 3, 1),
			branch(le, 5, 3),
			branch(le, 7, 5),
			branch(ge, 10, 10),
		},
	},
	rangeRule{
		key:   schema.CriterionHollows,
		input: "hollow sections",
		value: func(in schema.ProfileInput, _ schema.DerivedMetrics) float64 {
			return float64(in.Normalized().HollowSectionCount)
		},
		branches: []rangeBranch{
			branch(eq, 0, 0),
			branch(eq, 1, 2),
			span(closed, 2, 3, 4),
			span(closed, 4, 6, 8),
			branch(gt, 6, 10),
		},
	},
	rangeRule{
		key:   schema.CriterionWall,
		input: "wall thickness (mm)",
		value: func(in schema.ProfileInput, _ schema.DerivedMetrics) float64 { return in.WallThicknessMm },
		branches: []rangeBranch{
			branch(le, 1, 10),
			span(halfOpen, 1, 1.5, 5),
			span(closed, 1.5, 2.5, 3),
			branch(gt, 2.5, 1),
		},
	},
	rangeRule{
		key:   schema.CriterionPerimeterOverArea,
		input: "perimeter / area",
		value: func(_ schema.ProfileInput, m schema.DerivedMetrics) float64 { return m.PerimeterOverArea },
		branches: []rangeBranch{
			branch(lt, 0.10, 2),
			branch(le, 0.14, 4),
			branch(le, 0.19, 6),
			branch(le, 0.29, 8),
		},
		fallback: 10,
	},
	rangeRule{
		key:   schema.CriterionCavities,
		input: "cavities in die",
		value: func(in schema.ProfileInput, _ schema.DerivedMetrics) float64 { return float64(in.CavityCount) },
		branches: []rangeBranch{
			branch(eq, 1, 1),
			branch(eq, 2, 3),
			span(closed, 3, 4, 6),
			span(closed, 5, 8, 8),
			branch(gt, 8, 10),
		},
	},
	rangeRule{
		key:   schema.CriterionCDOverWall,
		input: "CD / wall",
		value: func(_ schema.ProfileInput, m schema.DerivedMetrics) float64 { return m.CDOverWall },
		branches: []rangeBranch{
			branch(le, 30, 1),
			branch(le, 40, 3),
			branch(le, 55, 6),
			branch(le, 70, 8),
		},
		fallback: 10,
	},
	matchRule{
		key:   schema.CriterionAlloy,
		input: "alloy",
		value: func(in schema.ProfileInput) string { return string(in.Alloy) },
		branches: []matchBranch{
			{string(schema.Alloy6060), 1},
			{string(schema.Alloy6063), 1},
			{string(schema.Alloy6463), 1},
			{string(schema.Alloy6101), 5},
			{string(schema.Alloy6106), 5},
			{string(schema.Alloy6005A), 6},
			{string(schema.Alloy6061), 9},
			{string(schema.Alloy6082), 10},
		},
	},
	matchRule{
		key:   schema.CriterionTolerance,
		input: "tolerance class",
		value: func(in schema.ProfileInput) string { return string(in.ToleranceClass) },
		branches: []matchBranch{
			{string(schema.ToleranceStandard7559), 1},
			{string(schema.ToleranceStandard120202), 5},
			{string(schema.ToleranceTighter7559), 3},
			{string(schema.ToleranceTighter120202), 8},
			{string(schema.ToleranceMoreRestrictive), 10},
		},
	},
	matchRule{
		key:   schema.CriterionSurface,
		input: "surface class",
		value: func(in schema.ProfileInput) string { return string(in.SurfaceClass) },
		branches: []matchBranch{
			{string(schema.SurfaceNone), 0},
			{string(schema.SurfaceMillFinish), 3},
			{string(schema.SurfacePowderCoated), 5},
			{string(schema.SurfaceAnodised), 10},
		},
	},
	rangeRule{
		key:   schema.CriterionExtrusionRatio,
		input: "extrusion ratio",
		value: func(_ schema.ProfileInput, m schema.DerivedMetrics) float64 { return m.ExtrusionRatio },
		branches: []rangeBranch{
			branch(lt, 10, 8),
			branch(lt, 30, 2),
			span(halfOpen, 30, 80, 1),
			span(closed, 80, 120, 8),
			branch(gt, 120, 10),
		},
	},
}

// ComputeFactors evaluates every rule against the profile and its metrics.
func ComputeFactors(in schema.ProfileInput, m schema.DerivedMetrics) schema.FactorSet {
	factors := make(schema.FactorSet, len(Rules))
	for _, r := range Rules {
		factors[r.Criterion()] = r.Factor(in, m)
	}
	return factors
}

// RuleTables returns the display form of every rule, with the active weights attached.
func RuleTables(weights schema.WeightSet) []schema.RuleTable {
	tables := make([]schema.RuleTable, 0, len(Rules))
	for _, r := range Rules {
		t := r.Table()
		t.Weight = weights.Get(r.Criterion())
		tables = append(tables, t)
	}
	return tables
}
