package core

import "github.com/alutools/dieprofile/schema"

// levelBands are the exclusive upper bounds of each difficulty level, in order.
var levelBands = []schema.LevelBand{
	{Level: schema.VeryEasyLevel, Below: 20},
	{Level: schema.EasyLevel, Below: 40},
	{Level: schema.NormalLevel, Below: 60},
	{Level: schema.DifficultLevel, Below: 80},
	{Level: schema.VeryDifficultLevel},
}

// LevelFromScore buckets a 0-100 score into its difficulty level.
func LevelFromScore(score float64) schema.Level {
	for _, band := range levelBands[:len(levelBands)-1] {
		if score < band.Below {
			return band.Level
		}
	}
	return schema.VeryDifficultLevel
}

// Aggregate combines factors and weights into a 0-100 score.
// The weighted mean of the factors (0-10) is rescaled by 10.
// Missing or non-finite weights count as 0; a zero total weight scores 0.
func Aggregate(factors schema.FactorSet, weights schema.WeightSet) schema.ScoreResult {
	var weightedSum, totalWeight float64
	for _, key := range schema.AllCriteria {
		w := weights.Get(key)
		weightedSum += float64(factors[key]) * w
		totalWeight += w
	}

	var score float64
	if totalWeight > 0 {
		score = weightedSum / totalWeight * 10
	}
	return schema.ScoreResult{Score: score, Level: LevelFromScore(score)}
}

// Evaluate runs the whole pipeline for one profile: metrics, factors and score.
// The input is normalized first, so a solid profile never carries hollow sections.
func Evaluate(in schema.ProfileInput, weights schema.WeightSet) schema.Evaluation {
	in = in.Normalized()
	metrics := ComputeMetrics(in)
	factors := ComputeFactors(in, metrics)
	return schema.Evaluation{
		Input:   in,
		Weights: weights.Clone(),
		Metrics: metrics,
		Factors: factors,
		Result:  Aggregate(factors, weights),
	}
}

// RulesModel builds the render model for the rule tables.
func RulesModel(weights schema.WeightSet) *schema.RulesRenderModel {
	return &schema.RulesRenderModel{
		Title:       "Profile Difficulty Rules",
		Description: "Each criterion maps its input to a factor from 0 to 10; the first matching row wins",
		Formula:     "Score = 10 * Σ(factor × weight) / Σ(weight)",
		Levels:      append([]schema.LevelBand(nil), levelBands...),
		Tables:      RuleTables(weights),
	}
}
