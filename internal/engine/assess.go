package engine

import (
	"math"

	"github.com/autozbudoucnosti/ecoscore/internal/factors"
)

// MethodologyVersion identifies the scoring model revision reported with
// every result and by the methodology endpoint.
const MethodologyVersion = "1.0.0-indicative"

// Limitations is the disclaimer attached to every result.
const Limitations = "Indicative model-based estimate; not for regulatory CBAM filings."

// ConfidenceLevel qualifies every estimate: factors are literature-aligned
// global averages, not product-specific measurements.
const ConfidenceLevel = "medium"

// Fixed aggregation weights for the total score. Exported so the
// methodology endpoint reports the live values.
const (
	MaterialScoreWeight  = 0.50
	LogisticsScoreWeight = 0.30
	WeightImpactWeight   = 0.20
)

// Engine combines the scorers into the full assessment pipeline.
type Engine struct {
	materials *MaterialScorer
	logistics *LogisticsScorer
	weight    *WeightScorer
	cbam      *CBAMDetector
}

// New creates an engine backed by the given factor table. The table is
// shared by reference; the engine never mutates it, so one engine serves
// concurrent callers.
func New(table *factors.Table) *Engine {
	return &Engine{
		materials: NewMaterialScorer(table),
		logistics: NewLogisticsScorer(table),
		weight:    NewWeightScorer(),
		cbam:      NewCBAMDetector(table),
	}
}

// Assess validates the request and computes the full impact result.
//
// The pipeline:
//  1. Validate; a *ValidationError is returned before any scoring.
//  2. Material scorer: sub-score plus composite CO2/water per kg.
//  3. Logistics scorer: sub-score plus logistics CO2 per kg.
//  4. Weight scorer: sub-score from weight alone.
//  5. CBAM detector: regulatory relevance flag.
//  6. Aggregate: total = 0.5×material + 0.3×logistics + 0.2×weight,
//     clamped to [0,100]; CO2 = weight × (material + logistics CO2 per kg);
//     water = weight × water per kg. Monetary-style rounding to 2 decimals.
//
// Identical requests always produce identical results.
func (e *Engine) Assess(req AssessmentRequest) (*ImpactResult, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	material := e.materials.Score(req.MaterialComposition)
	logistics := e.logistics.Score(req.OriginCountry, req.DestinationCountry, req.ShippingMode)
	weightImpact := e.weight.Score(req.WeightKg)
	cbam := e.cbam.Detect(req.MaterialComposition)

	total := MaterialScoreWeight*material.Score +
		LogisticsScoreWeight*logistics.Score +
		WeightImpactWeight*weightImpact

	return &ImpactResult{
		ProductName:              req.ProductName,
		TotalSustainabilityScore: round2(clamp(total, 0, 100)),
		CO2EstimateKg:            round2(req.WeightKg * (material.CO2PerKg + logistics.CO2PerKg)),
		WaterUsageLiters:         round2(req.WeightKg * material.WaterPerKg),
		Breakdown: Breakdown{
			MaterialScore:  material.Score,
			LogisticsScore: logistics.Score,
			WeightImpact:   weightImpact,
		},
		CBAM:               cbam,
		Explanation:        buildExplanation(req.MaterialComposition, req.WeightKg, logistics),
		ConfidenceLevel:    ConfidenceLevel,
		Limitations:        Limitations,
		MethodologyVersion: MethodologyVersion,
	}, nil
}

// round2 rounds to 2 decimal places, the precision of every reported score
// and estimate.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
