package engine

import (
	"sort"

	"github.com/autozbudoucnosti/ecoscore/internal/factors"
)

// MaterialScorer computes the material dimension of an assessment from the
// composition alone.
type MaterialScorer struct {
	table *factors.Table
}

// NewMaterialScorer creates a material scorer backed by the given factor table.
func NewMaterialScorer(table *factors.Table) *MaterialScorer {
	return &MaterialScorer{table: table}
}

// MaterialAssessment is the material dimension of an assessment: the
// share-weighted sub-score and the composite per-kilogram intensities.
type MaterialAssessment struct {
	// Score is the aggregate material sustainability score (0-100),
	// the share-weighted average of the per-material weights.
	Score float64

	// CO2PerKg is the composite emission intensity in kg CO2e per kg of
	// product, before weight is applied.
	CO2PerKg float64

	// WaterPerKg is the composite water intensity in liters per kg of
	// product, before weight is applied.
	WaterPerKg float64
}

// Score computes the material assessment for a composition.
//
// For each material with a positive share:
//  1. CO2PerKg   += share × material CO2 factor
//  2. WaterPerKg += share × material water factor
//  3. Score accumulates share × sustainability weight, normalized by the
//     total positive share at the end (weighted average)
//
// Unknown material identifiers resolve to the default factor; a composition
// with a single material of share 1.0 degenerates to a direct lookup. An
// empty composition scores the neutral 50 with zero intensities.
func (s *MaterialScorer) Score(composition map[string]float64) MaterialAssessment {
	var (
		co2PerKg   float64
		waterPerKg float64
		weighted   float64
		totalShare float64
	)

	// Accumulate in sorted order so identical compositions always sum
	// identically.
	materials := make([]string, 0, len(composition))
	for material := range composition {
		materials = append(materials, material)
	}
	sort.Strings(materials)

	for _, material := range materials {
		share := composition[material]
		if share <= 0 {
			continue
		}
		f := s.table.FactorFor(material)
		co2PerKg += share * f.CO2KgPerKg
		waterPerKg += share * f.WaterLitersPerKg
		weighted += share * f.Sustainability
		totalShare += share
	}

	if totalShare <= 0 {
		return MaterialAssessment{Score: 50.0}
	}

	return MaterialAssessment{
		Score:      round2(weighted / totalShare),
		CO2PerKg:   co2PerKg,
		WaterPerKg: waterPerKg,
	}
}
