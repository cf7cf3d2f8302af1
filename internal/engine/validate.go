package engine

import (
	"fmt"
	"math"
	"sort"
)

// ShareSumTolerance is the accepted deviation of the composition share sum
// from 1.0. It absorbs decimal rounding in client payloads (0.33 + 0.67
// style splits) without letting materially incomplete compositions through.
const ShareSumTolerance = 0.01

// ValidationError describes a request rejected before scoring. The engine
// never silently corrects invalid input; the only leniency is the documented
// share-sum tolerance.
type ValidationError struct {
	// Field names the offending request field in its wire spelling,
	// e.g. "weight_kg".
	Field string

	// Reason is a human-readable description of the violation.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks an assessment request against the engine's invariants:
// non-empty product name, positive finite weight, a non-empty composition
// with each share in (0,1], and shares summing to 1.0 within tolerance.
//
// Returns a *ValidationError for the first violation found, nil otherwise.
// Unknown materials, countries and shipping modes are not violations; they
// resolve through documented fallbacks during scoring.
func Validate(req AssessmentRequest) error {
	if req.ProductName == "" {
		return &ValidationError{Field: "product_name", Reason: "must not be empty"}
	}

	if math.IsNaN(req.WeightKg) || math.IsInf(req.WeightKg, 0) {
		return &ValidationError{Field: "weight_kg", Reason: "must be a finite number"}
	}
	if req.WeightKg <= 0 {
		return &ValidationError{
			Field:  "weight_kg",
			Reason: fmt.Sprintf("must be greater than 0, got %g", req.WeightKg),
		}
	}

	if len(req.MaterialComposition) == 0 {
		return &ValidationError{Field: "material_composition", Reason: "must list at least one material"}
	}

	materials := make([]string, 0, len(req.MaterialComposition))
	for material := range req.MaterialComposition {
		materials = append(materials, material)
	}
	sort.Strings(materials)

	sum := 0.0
	for _, material := range materials {
		share := req.MaterialComposition[material]
		if math.IsNaN(share) || math.IsInf(share, 0) {
			return &ValidationError{
				Field:  "material_composition",
				Reason: fmt.Sprintf("share for %q must be a finite number", material),
			}
		}
		if share <= 0 {
			return &ValidationError{
				Field:  "material_composition",
				Reason: fmt.Sprintf("share for %q must be greater than 0, got %g", material, share),
			}
		}
		if share > 1 {
			return &ValidationError{
				Field:  "material_composition",
				Reason: fmt.Sprintf("share for %q must be at most 1.0, got %g", material, share),
			}
		}
		sum += share
	}

	if math.Abs(sum-1.0) > ShareSumTolerance {
		return &ValidationError{
			Field:  "material_composition",
			Reason: fmt.Sprintf("shares must sum to 1.0 (±%g), got %g", ShareSumTolerance, sum),
		}
	}

	return nil
}
