package engine

import (
	"github.com/autozbudoucnosti/ecoscore/internal/factors"
)

// Logistics score band. Even the worst route keeps a small score above zero
// and no route reaches a perfect 100, reflecting that shipping always has
// some impact and always has room to be worse.
const (
	minLogisticsScore = 20.0
	maxLogisticsScore = 95.0
)

// modePenaltyCap bounds the score penalty for carbon-intensive transport
// modes so that air freight cannot erase the whole tier score on its own.
const modePenaltyCap = 50.0

// LogisticsScorer computes the logistics dimension of an assessment from the
// origin/destination pair and the shipping mode.
type LogisticsScorer struct {
	table *factors.Table
}

// NewLogisticsScorer creates a logistics scorer backed by the given factor table.
func NewLogisticsScorer(table *factors.Table) *LogisticsScorer {
	return &LogisticsScorer{table: table}
}

// LogisticsAssessment is the logistics dimension of an assessment.
type LogisticsAssessment struct {
	// Tier is the distance tier the origin/destination pair resolved to.
	Tier factors.DistanceTier

	// DistanceKm is the great-circle distance behind the tier choice,
	// zero when the pair was same-country or unrecognized.
	DistanceKm float64

	// Mode is the transport mode the assessment used (sea when the
	// request left it empty or unrecognized).
	Mode factors.TransportMode

	// Score is the logistics sub-score (0-100); nearer tiers and cleaner
	// modes score higher.
	Score float64

	// CO2PerKg is the logistics emission intensity in kg CO2e per kg of
	// product, before weight is applied.
	CO2PerKg float64
}

// Score computes the logistics assessment for a shipment.
//
// The calculation:
//  1. Resolve the origin/destination pair to a distance tier; same-country
//     pairs take the domestic tier, unrecognized pairs the intercontinental
//     tier (the conservative choice).
//  2. CO2PerKg = tier emission factor × mode CO2 multiplier.
//  3. Mode penalty = (multiplier − 1) × 2, capped at 50. Sea carries no
//     penalty; air hits the cap.
//  4. Score = tier base score − mode penalty, clamped to [20, 95].
func (s *LogisticsScorer) Score(origin, destination, mode string) LogisticsAssessment {
	profile := s.table.LogisticsProfile(origin, destination)
	modeProfile := s.table.Mode(mode)

	penalty := (modeProfile.CO2Multiplier - 1.0) * 2.0
	if penalty > modePenaltyCap {
		penalty = modePenaltyCap
	}

	score := profile.BaseScore - penalty
	if score < minLogisticsScore {
		score = minLogisticsScore
	}
	if score > maxLogisticsScore {
		score = maxLogisticsScore
	}

	return LogisticsAssessment{
		Tier:       profile.Tier,
		DistanceKm: profile.DistanceKm,
		Mode:       modeProfile.Mode,
		Score:      round2(score),
		CO2PerKg:   profile.CO2KgPerKg * modeProfile.CO2Multiplier,
	}
}
