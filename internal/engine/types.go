// Package engine implements the impact assessment engine: it turns a
// product's declared attributes (material composition, weight, origin,
// destination, shipping mode) into an indicative sustainability score with
// CO2 and water estimates.
//
// The engine is pure and deterministic. It holds no mutable state beyond the
// injected factor table, performs no I/O, and is safe for concurrent use.
package engine

// AssessmentRequest carries the declared product attributes to assess.
// Requests are validated before scoring and treated as immutable afterwards.
type AssessmentRequest struct {
	// ProductName is a human-readable label echoed back in the result.
	ProductName string

	// MaterialComposition maps material identifiers to their share of the
	// product weight. Shares are decimals in (0,1] and must sum to 1.0
	// within a small tolerance.
	MaterialComposition map[string]float64

	// WeightKg is the product weight in kilograms, strictly positive.
	WeightKg float64

	// OriginCountry and DestinationCountry are ISO-style codes or English
	// names ("DE", "Germany"). Unrecognized values are scored using the
	// most conservative distance tier.
	OriginCountry      string
	DestinationCountry string

	// ShippingMode is one of sea, rail, road, air. Empty defaults to sea,
	// the assumed mode for international freight.
	ShippingMode string
}

// Breakdown exposes the per-dimension sub-scores for explainability.
// Each score lies in [0,100]; higher means lower impact.
type Breakdown struct {
	MaterialScore  float64
	LogisticsScore float64
	WeightImpact   float64
}

// CBAMAnalysis reports whether the composition contains materials covered by
// the EU Carbon Border Adjustment Mechanism, with a human-readable reason.
type CBAMAnalysis struct {
	Relevant bool
	Reason   string
}

// ImpactResult is the complete assessment outcome. It is produced fresh per
// request and never mutated after construction.
type ImpactResult struct {
	ProductName string

	// TotalSustainabilityScore is the weighted combination of the
	// breakdown sub-scores, in [0,100]. Higher is better.
	TotalSustainabilityScore float64

	// CO2EstimateKg is the estimated CO2 equivalent in kg for materials
	// and logistics combined.
	CO2EstimateKg float64

	// WaterUsageLiters is the estimated water usage in liters, mainly
	// from material production.
	WaterUsageLiters float64

	Breakdown Breakdown
	CBAM      CBAMAnalysis

	// Explanation lists human-readable statements describing what drove
	// the score, in a stable order.
	Explanation []string

	// ConfidenceLevel qualifies the estimate. The model always reports
	// "medium": factors are literature-aligned but not product-specific.
	ConfidenceLevel string

	// Limitations is a constant disclaimer attached to every result.
	Limitations string

	// MethodologyVersion identifies the scoring model revision.
	MethodologyVersion string
}
