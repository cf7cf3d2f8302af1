package ecoscore

import "fmt"

// AssessmentRequest describes a product to assess. MaterialComposition maps
// material names to shares summing to 1.0; names are normalized before
// sending, so "Organic Cotton" and "organic_cotton" are equivalent.
//
// Zero-value fields take the documented defaults: DefaultWeightKg,
// DefaultOriginCountry and DefaultDestinationCountry.
type AssessmentRequest struct {
	ProductName         string             `json:"product_name"`
	MaterialComposition map[string]float64 `json:"material_composition"`
	WeightKg            float64            `json:"weight_kg"`
	OriginCountry       string             `json:"origin_country,omitempty"`
	DestinationCountry  string             `json:"destination_country,omitempty"`
	ShippingMode        string             `json:"shipping_mode,omitempty"`
}

// Breakdown holds the three sub-scores behind the total.
type Breakdown struct {
	MaterialScore  float64 `json:"material_score"`
	LogisticsScore float64 `json:"logistics_score"`
	WeightImpact   float64 `json:"weight_impact"`
}

// Assessment is a completed impact assessment.
type Assessment struct {
	ProductName              string    `json:"product_name"`
	TotalSustainabilityScore float64   `json:"total_sustainability_score"`
	ConfidenceLevel          string    `json:"confidence_level"`
	CO2EstimateKg            float64   `json:"co2_estimate_kg"`
	WaterUsageLiters         float64   `json:"water_usage_liters"`
	Breakdown                Breakdown `json:"breakdown"`
	CBAMRelevant             bool      `json:"cbam_relevant"`
	CBAMReason               string    `json:"cbam_reason"`
	Explanation              []string  `json:"explanation"`
	Limitations              string    `json:"limitations"`
	MethodologyVersion       string    `json:"methodology_version"`
}

// APIError is a non-2xx response from the service, carrying the stable error
// code and human-readable message from the response body.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("ecoscore: %s (code %s, status %d)", e.Message, e.Code, e.StatusCode)
}
