package api

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/autozbudoucnosti/ecoscore/internal/engine"
	"github.com/autozbudoucnosti/ecoscore/internal/factors"
)

// methodologyResponse is the wire shape of GET /v1/methodology. It is
// assembled from the live factor table and engine constants, so the published
// documentation cannot drift from the scoring behavior.
type methodologyResponse struct {
	MethodologyVersion       string                `json:"methodology_version"`
	Description              string                `json:"description"`
	ConfidenceLevel          string                `json:"confidence_level"`
	TotalSustainabilityScore scoreMethodology      `json:"total_sustainability_score"`
	CO2EstimateKg            co2Methodology        `json:"co2_estimate_kg"`
	WaterUsageLiters         waterMethodology      `json:"water_usage_liters"`
	Breakdown                breakdownMethodology  `json:"breakdown"`
	Validation               validationMethodology `json:"validation"`
	Factors                  factorsMethodology    `json:"factors"`
	Disclaimer               string                `json:"disclaimer"`
}

type scoreMethodology struct {
	Formula string             `json:"formula"`
	Weights map[string]float64 `json:"weights"`
	Range   string             `json:"range"`
}

type co2Methodology struct {
	Components []string `json:"components"`
	Unit       string   `json:"unit"`
	Note       string   `json:"note"`
}

type waterMethodology struct {
	Formula string `json:"formula"`
	Unit    string `json:"unit"`
	Note    string `json:"note"`
}

type breakdownMethodology struct {
	MaterialScore  string `json:"material_score"`
	LogisticsScore string `json:"logistics_score"`
	WeightImpact   string `json:"weight_impact"`
}

type validationMethodology struct {
	ShareSumTolerance float64  `json:"share_sum_tolerance"`
	Rules             []string `json:"rules"`
}

type factorsMethodology struct {
	Materials       []materialMethodology `json:"materials"`
	DefaultMaterial materialMethodology   `json:"default_material"`
	CBAMMaterials   []string              `json:"cbam_materials"`
	DistanceTiers   []tierMethodology     `json:"distance_tiers"`
	TransportModes  []modeMethodology     `json:"transport_modes"`
}

type materialMethodology struct {
	ID               string  `json:"id,omitempty"`
	CO2KgPerKg       float64 `json:"co2_kg_per_kg"`
	WaterLitersPerKg float64 `json:"water_liters_per_kg"`
	Sustainability   float64 `json:"sustainability"`
	CBAMRelevant     bool    `json:"cbam_relevant"`
}

type tierMethodology struct {
	Tier       string  `json:"tier"`
	Distance   string  `json:"distance"`
	CO2KgPerKg float64 `json:"co2_kg_per_kg"`
	BaseScore  float64 `json:"base_score"`
}

type modeMethodology struct {
	Mode          string  `json:"mode"`
	CO2Multiplier float64 `json:"co2_multiplier"`
}

var tierDistances = map[factors.DistanceTier]string{
	factors.TierDomestic:         "same country, or origin/destination not given",
	factors.TierRegional:         "under 2,000 km",
	factors.TierContinental:      "2,000 to 6,000 km",
	factors.TierIntercontinental: "over 6,000 km, or an unrecognized country",
}

func newMethodologyResponse(table *factors.Table) methodologyResponse {
	materials := lo.Map(table.MaterialIDs(), func(id string, _ int) materialMethodology {
		return toMaterialMethodology(id, table.FactorFor(id))
	})

	tiers := lo.Map(table.TierProfiles(), func(p factors.LogisticsProfile, _ int) tierMethodology {
		return tierMethodology{
			Tier:       string(p.Tier),
			Distance:   tierDistances[p.Tier],
			CO2KgPerKg: p.CO2KgPerKg,
			BaseScore:  p.BaseScore,
		}
	})

	modes := lo.Map(table.ModeProfiles(), func(p factors.ModeProfile, _ int) modeMethodology {
		return modeMethodology{Mode: string(p.Mode), CO2Multiplier: p.CO2Multiplier}
	})

	return methodologyResponse{
		MethodologyVersion: engine.MethodologyVersion,
		Description: "Indicative environmental impact model for consumer products. " +
			"Scores blend material composition, logistics distance and transport mode, " +
			"and product weight into a single 0-100 sustainability score.",
		ConfidenceLevel: engine.ConfidenceLevel,
		TotalSustainabilityScore: scoreMethodology{
			Formula: "0.5 * material_score + 0.3 * logistics_score + 0.2 * weight_impact, clamped to [0, 100]",
			Weights: map[string]float64{
				"material_score":  engine.MaterialScoreWeight,
				"logistics_score": engine.LogisticsScoreWeight,
				"weight_impact":   engine.WeightImpactWeight,
			},
			Range: "0-100, higher is better",
		},
		CO2EstimateKg: co2Methodology{
			Components: []string{
				"weight_kg * share-weighted material CO2 factor",
				"weight_kg * distance-tier CO2 factor * transport-mode multiplier",
			},
			Unit: "kg CO2e",
			Note: "Cradle-to-gate material emissions plus a modeled logistics leg.",
		},
		WaterUsageLiters: waterMethodology{
			Formula: "weight_kg * share-weighted material water factor",
			Unit:    "liters",
			Note:    "Material production water footprint; the use phase is excluded.",
		},
		Breakdown: breakdownMethodology{
			MaterialScore: "Share-weighted average of per-material sustainability ratings. " +
				"Unknown materials fall back to the default factor.",
			LogisticsScore: "Distance-tier base score minus a transport-mode penalty of " +
				"2 * (multiplier - 1), capped at 50; the result is clamped to [20, 95].",
			WeightImpact: "10 + 90 * 2^(-weight_kg / 2.5); halves every 2.5 kg toward a floor of 10.",
		},
		Validation: validationMethodology{
			ShareSumTolerance: engine.ShareSumTolerance,
			Rules: []string{
				"product_name must not be empty",
				"weight_kg must be greater than 0",
				"material_composition must list at least one material",
				"each material share must be in (0, 1]",
				fmt.Sprintf("shares must sum to 1.0 within +/-%g", engine.ShareSumTolerance),
				"shipping_mode, when given, must be one of: sea, road, rail, air",
			},
		},
		Factors: factorsMethodology{
			Materials:       materials,
			DefaultMaterial: toMaterialMethodology("", table.DefaultFactor()),
			CBAMMaterials:   table.CBAMMaterialIDs(),
			DistanceTiers:   tiers,
			TransportModes:  modes,
		},
		Disclaimer: "Results are indicative estimates only. They are not a certified " +
			"Life Cycle Assessment (LCA) and must not be used as the sole basis for " +
			"compliance or marketing claims. Methodology may change; check methodology_version.",
	}
}

func toMaterialMethodology(id string, f factors.MaterialFactor) materialMethodology {
	return materialMethodology{
		ID:               id,
		CO2KgPerKg:       f.CO2KgPerKg,
		WaterLitersPerKg: f.WaterLitersPerKg,
		Sustainability:   f.Sustainability,
		CBAMRelevant:     f.CBAMRelevant,
	}
}
