package core

import (
	"math"
	"testing"

	"github.com/alutools/dieprofile/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected schema.Level
	}{
		{0, schema.VeryEasyLevel},
		{19.99, schema.VeryEasyLevel},
		{20, schema.EasyLevel},
		{39.9, schema.EasyLevel},
		{40, schema.NormalLevel},
		{59.99, schema.NormalLevel},
		{60, schema.DifficultLevel},
		{79.99, schema.DifficultLevel},
		{80, schema.VeryDifficultLevel},
		{100, schema.VeryDifficultLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, LevelFromScore(tt.score), "score %v", tt.score)
	}
}

func TestAggregate(t *testing.T) {
	t.Run("all tens", func(t *testing.T) {
		factors := schema.FactorSet{}
		for _, key := range schema.AllCriteria {
			factors[key] = 10
		}
		result := Aggregate(factors, schema.DefaultWeights())
		assert.InDelta(t, 100.0, result.Score, 1e-9)
		assert.Equal(t, schema.VeryDifficultLevel, result.Level)
	})

	t.Run("zero weights", func(t *testing.T) {
		weights := schema.WeightSet{}
		for _, key := range schema.AllCriteria {
			weights[key] = 0
		}
		result := Aggregate(schema.FactorSet{schema.CriterionType: 10}, weights)
		assert.Equal(t, 0.0, result.Score)
		assert.Equal(t, schema.VeryEasyLevel, result.Level)
	})

	t.Run("missing and non-finite weights count as zero", func(t *testing.T) {
		weights := schema.WeightSet{
			schema.CriterionType:     math.NaN(),
			schema.CriterionCategory: math.Inf(1),
			schema.CriterionWall:     10,
		}
		factors := schema.FactorSet{schema.CriterionType: 10, schema.CriterionCategory: 10, schema.CriterionWall: 4}
		result := Aggregate(factors, weights)
		assert.InDelta(t, 40.0, result.Score, 1e-9)
		assert.Equal(t, schema.NormalLevel, result.Level)
	})

	t.Run("weights need not sum to 100", func(t *testing.T) {
		weights := schema.WeightSet{schema.CriterionType: 1, schema.CriterionWall: 3}
		factors := schema.FactorSet{schema.CriterionType: 10, schema.CriterionWall: 2}
		result := Aggregate(factors, weights)
		assert.InDelta(t, 40.0, result.Score, 1e-9)
	})
}

func TestAggregateMonotonicInFactor(t *testing.T) {
	weights := schema.DefaultWeights()
	for _, key := range schema.AllCriteria {
		factors := schema.FactorSet{}
		for _, k := range schema.AllCriteria {
			factors[k] = 5
		}
		prev := -1.0
		for f := 0; f <= 10; f++ {
			factors[key] = f
			score := Aggregate(factors, weights).Score
			assert.GreaterOrEqual(t, score, prev, "criterion %s factor %d", key, f)
			prev = score
		}
	}
}

func TestEvaluateScenario(t *testing.T) {
	eval := Evaluate(scenarioProfile(), schema.DefaultWeights())

	assert.InDelta(t, 34.5, eval.Result.Score, 1e-9)
	assert.Equal(t, schema.EasyLevel, eval.Result.Level)
	assert.Equal(t, 10, eval.Factors[schema.CriterionPerimeterOverArea])
	assert.Equal(t, 5, eval.Factors[schema.CriterionWall])
	assert.Equal(t, 1, eval.Factors[schema.CriterionCDOverWall])
}

func TestEvaluateSolidNormalizes(t *testing.T) {
	in := scenarioProfile()
	in.ProfileType = schema.SolidProfile
	in.HollowSectionCount = 5

	eval := Evaluate(in, schema.DefaultWeights())
	assert.Equal(t, 0, eval.Input.HollowSectionCount)
	assert.Equal(t, 0, eval.Factors[schema.CriterionHollows])
	assert.Equal(t, 5, in.HollowSectionCount, "caller input is untouched")
}

func TestEvaluateClonesWeights(t *testing.T) {
	weights := schema.DefaultWeights()
	eval := Evaluate(scenarioProfile(), weights)
	weights[schema.CriterionType] = 99
	assert.Equal(t, 10.0, eval.Weights[schema.CriterionType])
}

func TestEvaluateDeterministic(t *testing.T) {
	a := Evaluate(scenarioProfile(), schema.DefaultWeights())
	b := Evaluate(scenarioProfile(), schema.DefaultWeights())
	assert.Equal(t, a, b)
}

func TestRulesModel(t *testing.T) {
	model := RulesModel(schema.DefaultWeights())
	assert.Equal(t, "Profile Difficulty Rules", model.Title)
	assert.Contains(t, model.Formula, "Σ(weight)")
	require.Len(t, model.Levels, 5)
	assert.Equal(t, schema.VeryDifficultLevel, model.Levels[4].Level)
	assert.Zero(t, model.Levels[4].Below)
	assert.Len(t, model.Tables, len(schema.AllCriteria))

	model.Levels[0].Below = 99
	assert.Equal(t, schema.EasyLevel, LevelFromScore(30), "model copy must not alias the bands")
}

func TestCheck(t *testing.T) {
	eval := schema.Evaluation{Result: schema.ScoreResult{Score: 60, Level: schema.DifficultLevel}}
	assert.True(t, Check(eval, 60).Passed)
	assert.False(t, Check(eval, 59.9).Passed)

	result := Check(eval, 70)
	assert.Equal(t, 60.0, result.Score)
	assert.Equal(t, schema.DifficultLevel, result.Level)
	assert.Equal(t, 70.0, result.MaxScore)
}
