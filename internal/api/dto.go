package api

import (
	"github.com/autozbudoucnosti/ecoscore/internal/engine"
)

// assessImpactRequest is the wire shape of POST /v1/assess-impact.
// Unknown materials and countries are not rejected here; they resolve
// through the engine's documented fallbacks. The shipping mode is a closed
// set, so a typo is caught at the boundary instead of silently scoring as
// sea freight.
type assessImpactRequest struct {
	ProductName         string             `json:"product_name" validate:"required"`
	MaterialComposition map[string]float64 `json:"material_composition" validate:"required,min=1"`
	WeightKg            float64            `json:"weight_kg" validate:"gt=0"`
	OriginCountry       string             `json:"origin_country"`
	DestinationCountry  string             `json:"destination_country"`
	ShippingMode        string             `json:"shipping_mode" validate:"omitempty,oneof=sea road rail air"`
}

func (r assessImpactRequest) toEngine() engine.AssessmentRequest {
	return engine.AssessmentRequest{
		ProductName:         r.ProductName,
		MaterialComposition: r.MaterialComposition,
		WeightKg:            r.WeightKg,
		OriginCountry:       r.OriginCountry,
		DestinationCountry:  r.DestinationCountry,
		ShippingMode:        r.ShippingMode,
	}
}

// breakdownResponse mirrors engine.Breakdown on the wire.
type breakdownResponse struct {
	MaterialScore  float64 `json:"material_score"`
	LogisticsScore float64 `json:"logistics_score"`
	WeightImpact   float64 `json:"weight_impact"`
}

// assessImpactResponse is the wire shape of a successful assessment.
type assessImpactResponse struct {
	ProductName              string            `json:"product_name"`
	TotalSustainabilityScore float64           `json:"total_sustainability_score"`
	ConfidenceLevel          string            `json:"confidence_level"`
	CO2EstimateKg            float64           `json:"co2_estimate_kg"`
	WaterUsageLiters         float64           `json:"water_usage_liters"`
	Breakdown                breakdownResponse `json:"breakdown"`
	CBAMRelevant             bool              `json:"cbam_relevant"`
	CBAMReason               string            `json:"cbam_reason"`
	Explanation              []string          `json:"explanation"`
	Limitations              string            `json:"limitations"`
	MethodologyVersion       string            `json:"methodology_version"`
}

func toAssessImpactResponse(result *engine.ImpactResult) assessImpactResponse {
	return assessImpactResponse{
		ProductName:              result.ProductName,
		TotalSustainabilityScore: result.TotalSustainabilityScore,
		ConfidenceLevel:          result.ConfidenceLevel,
		CO2EstimateKg:            result.CO2EstimateKg,
		WaterUsageLiters:         result.WaterUsageLiters,
		Breakdown: breakdownResponse{
			MaterialScore:  result.Breakdown.MaterialScore,
			LogisticsScore: result.Breakdown.LogisticsScore,
			WeightImpact:   result.Breakdown.WeightImpact,
		},
		CBAMRelevant:       result.CBAM.Relevant,
		CBAMReason:         result.CBAM.Reason,
		Explanation:        result.Explanation,
		Limitations:        result.Limitations,
		MethodologyVersion: result.MethodologyVersion,
	}
}
