package core

import (
	"math"
	"testing"

	"github.com/alutools/dieprofile/schema"
)

// FuzzEvaluate checks that any numeric input yields factors in [0, 10] and a finite score in [0, 100].
func FuzzEvaluate(f *testing.F) {
	f.Add(1.2, 0.0, 0.0, 250.0, 1.1, 2, 30.0, 7.0, 0)
	f.Add(0.0, 0.0, 0.0, 0.0, 0.0, 0, 0.0, 0.0, 0)
	f.Add(3.0, 20.0, 2.0, 800.0, 0.2, 12, 120.0, 12.0, 8)
	f.Add(-1.0, -5.0, -1.0, -10.0, -3.0, -4, -30.0, -7.0, -2)

	f.Fuzz(func(t *testing.T, wall, slotDepth, slotOpening, perimeter, weight float64, cavities int, cd, press float64, hollows int) {
		in := schema.DefaultProfileInput()
		in.WallThicknessMm = wall
		in.SlotDepthMm = slotDepth
		in.SlotOpeningWidthMm = slotOpening
		in.PerimeterMm = perimeter
		in.WeightKgPerM = weight
		in.CavityCount = cavities
		in.ContainerDiameterMm = cd
		in.PressSizeInch = press
		in.HollowSectionCount = hollows

		eval := Evaluate(in, schema.DefaultWeights())
		for key, factor := range eval.Factors {
			if factor < 0 || factor > 10 {
				t.Fatalf("factor %s out of range: %d", key, factor)
			}
		}
		score := eval.Result.Score
		if math.IsNaN(score) || score < 0 || score > 100 {
			t.Fatalf("score out of range: %v", score)
		}
		if eval.Result.Level != LevelFromScore(score) {
			t.Fatalf("level %s does not match score %v", eval.Result.Level, score)
		}
		if again := Evaluate(in, schema.DefaultWeights()); again.Result != eval.Result {
			t.Fatalf("non-deterministic result: %v vs %v", again.Result, eval.Result)
		}
	})
}
