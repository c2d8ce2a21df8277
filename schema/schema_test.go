package schema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileInputNormalized(t *testing.T) {
	t.Run("solid forces zero hollows", func(t *testing.T) {
		p := DefaultProfileInput()
		p.ProfileType = SolidProfile
		p.HollowSectionCount = 5

		assert.False(t, p.HollowsEditable())
		assert.Equal(t, 0, p.Normalized().HollowSectionCount)
		assert.Equal(t, 5, p.HollowSectionCount, "receiver must not be mutated")
	})

	t.Run("hollow keeps count", func(t *testing.T) {
		p := DefaultProfileInput()
		p.HollowSectionCount = 3

		assert.True(t, p.HollowsEditable())
		assert.Equal(t, 3, p.Normalized().HollowSectionCount)
	})
}

func TestWeightSet(t *testing.T) {
	w := WeightSet{
		CriterionType:  10,
		CriterionAlloy: math.NaN(),
		CriterionWall:  math.Inf(1),
	}

	assert.Equal(t, 10.0, w.Get(CriterionType))
	assert.Equal(t, 0.0, w.Get(CriterionAlloy), "NaN reads as zero")
	assert.Equal(t, 0.0, w.Get(CriterionWall), "Inf reads as zero")
	assert.Equal(t, 0.0, w.Get(CriterionSurface), "missing reads as zero")
	assert.Equal(t, 10.0, w.Total())

	clone := w.Clone()
	clone[CriterionType] = 99
	assert.Equal(t, 10.0, w.Get(CriterionType))
}

func TestDefaultWeightsCoverAllCriteria(t *testing.T) {
	w := DefaultWeights()
	assert.Len(t, w, len(AllCriteria))
	for _, key := range AllCriteria {
		assert.Greater(t, w.Get(key), 0.0, "default weight for %s", key)
	}
}

func TestDefaultProfileInput(t *testing.T) {
	p := DefaultProfileInput()
	assert.Equal(t, HollowProfile, p.ProfileType)
	assert.Equal(t, CategoryB, p.Category)
	assert.Equal(t, 7.0, p.PressSizeInch)
	assert.Equal(t, Alloy6063, p.Alloy)
	assert.Equal(t, ToleranceStandard120202, p.ToleranceClass)
	assert.Equal(t, SurfaceMillFinish, p.SurfaceClass)
}

func TestReportSection(t *testing.T) {
	r := &Report{Sections: []ReportSection{{Title: "Inputs"}, {Title: "Results"}}}

	s, ok := r.Section("Results")
	assert.True(t, ok)
	assert.Equal(t, "Results", s.Title)

	_, ok = r.Section("Missing")
	assert.False(t, ok)
}
