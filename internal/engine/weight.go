package engine

import "math"

const (
	// weightImpactFloor is the asymptotic score for very heavy products.
	weightImpactFloor = 10.0

	// weightImpactSpan is the score range above the floor; the lightest
	// products approach floor + span = 100.
	weightImpactSpan = 90.0

	// weightHalfLifeKg is the weight at which the above-floor score
	// halves. A 2.5 kg product scores 55, a 5 kg product 32.5.
	weightHalfLifeKg = 2.5
)

// WeightScorer computes the weight dimension of an assessment.
type WeightScorer struct{}

// NewWeightScorer creates a weight scorer.
func NewWeightScorer() *WeightScorer {
	return &WeightScorer{}
}

// Score computes the weight impact score for a product weight in kilograms.
//
// The curve is exponential decay toward a floor:
//
//	score = 10 + 90 × 2^(−weight/2.5)
//
// It decreases monotonically with weight, approaches 100 for very light
// products, and saturates at 10 for very heavy ones instead of going
// negative. Weight must already be validated as positive and finite.
func (s *WeightScorer) Score(weightKg float64) float64 {
	score := weightImpactFloor + weightImpactSpan*math.Exp2(-weightKg/weightHalfLifeKg)
	return round2(score)
}
