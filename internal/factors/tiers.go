package factors

import "math"

// DistanceTier is a coarse distance bucket used to approximate logistics
// emissions without precise routing data.
type DistanceTier string

// Distance tiers, nearest first.
const (
	TierDomestic         DistanceTier = "domestic"
	TierRegional         DistanceTier = "regional"
	TierContinental      DistanceTier = "continental"
	TierIntercontinental DistanceTier = "intercontinental"
)

// LogisticsProfile describes the logistics characteristics of an
// origin/destination pair: the distance tier, the sea-freight CO2 factor for
// a representative route of that tier, and the tier's base logistics score.
type LogisticsProfile struct {
	// Tier is the distance bucket for the pair.
	Tier DistanceTier

	// CO2KgPerKg is the tier emission factor in kg CO2e per kg shipped,
	// at the sea-freight baseline. Transport modes scale it via ModeProfile.
	CO2KgPerKg float64

	// BaseScore is the tier logistics score (0-100) before any mode penalty.
	// Nearer tiers score higher.
	BaseScore float64

	// DistanceKm is the great-circle distance used to pick the tier.
	// Zero for same-country pairs and for unrecognized countries.
	DistanceKm float64
}

const (
	// seaCO2PerKgPer1000Km is the sea-freight baseline emission factor in
	// kg CO2e per kg of product per 1000 km.
	seaCO2PerKgPer1000Km = 0.58

	// Tier boundaries on great-circle distance.
	regionalMaxKm    = 2000.0
	continentalMaxKm = 6000.0

	// earthRadiusKm is the mean Earth radius for great-circle distance.
	earthRadiusKm = 6371.0
)

// tierProfiles holds the per-tier emission factor and base score.
//
// Emission factors are the sea baseline (0.58 kg CO2e per kg per 1000 km)
// applied to a representative circuitous route length per tier:
// 500 km domestic, 3,000 km regional, 7,500 km continental and 18,000 km
// intercontinental (sea routes run ~50% longer than the great circle).
var tierProfiles = map[DistanceTier]LogisticsProfile{
	TierDomestic:         {Tier: TierDomestic, CO2KgPerKg: 0.29, BaseScore: 95},
	TierRegional:         {Tier: TierRegional, CO2KgPerKg: 1.74, BaseScore: 75},
	TierContinental:      {Tier: TierContinental, CO2KgPerKg: 4.35, BaseScore: 55},
	TierIntercontinental: {Tier: TierIntercontinental, CO2KgPerKg: 10.44, BaseScore: 35},
}

// tierForDistance buckets a great-circle distance into a tier. Distances of
// zero or below never occur here; same-country pairs short-circuit to the
// domestic tier before distance is computed.
func tierForDistance(distanceKm float64) DistanceTier {
	switch {
	case distanceKm < regionalMaxKm:
		return TierRegional
	case distanceKm < continentalMaxKm:
		return TierContinental
	default:
		return TierIntercontinental
	}
}

// haversineKm returns the great-circle distance in km between two points.
func haversineKm(a, b coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lon1 := a.Lon * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lon2 := b.Lon * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}
