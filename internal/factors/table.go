// Package factors holds the static factor tables behind the impact
// assessment engine: per-material emission, water and sustainability factors,
// country centroids, logistics distance tiers, and transport-mode multipliers.
//
// All data is compiled into the binary. A Table is built once at startup via
// New and is read-only afterwards, so it can be shared across concurrent
// callers without locking.
package factors

import (
	"sort"
	"strings"
)

// Table is the immutable set of lookup tables used by the engine.
// Construct it with New and inject it by reference; never mutate it.
type Table struct {
	materials     map[string]MaterialFactor
	defaultFactor MaterialFactor
	coordinates   map[string]coordinate
	tiers         map[DistanceTier]LogisticsProfile
	modes         map[TransportMode]ModeProfile
}

// New builds a Table from the built-in data sets. The returned table owns
// private copies of the source maps.
func New() *Table {
	t := &Table{
		materials:     make(map[string]MaterialFactor, len(materialFactors)),
		defaultFactor: defaultMaterialFactor,
		coordinates:   make(map[string]coordinate, len(countryCoordinates)),
		tiers:         make(map[DistanceTier]LogisticsProfile, len(tierProfiles)),
		modes:         make(map[TransportMode]ModeProfile, len(modeProfiles)),
	}
	for id, f := range materialFactors {
		t.materials[id] = f
	}
	for key, c := range countryCoordinates {
		t.coordinates[key] = c
	}
	for tier, p := range tierProfiles {
		t.tiers[tier] = p
	}
	for mode, p := range modeProfiles {
		t.modes[mode] = p
	}
	return t
}

// NormalizeMaterial turns a user-supplied material name into the table key:
// "Recycled Polyester" -> "recycled_polyester".
func NormalizeMaterial(name string) string {
	return normalizeKey(name)
}

// NormalizeCountry turns a user-supplied country code or name into the table
// key: " United Kingdom " -> "united_kingdom".
func NormalizeCountry(name string) string {
	return normalizeKey(name)
}

func normalizeKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}

// FactorFor returns the material factor for the given identifier, normalizing
// it first. Unknown materials resolve to the neutral default entry; unknown
// is never an error.
func (t *Table) FactorFor(materialID string) MaterialFactor {
	if f, ok := t.materials[NormalizeMaterial(materialID)]; ok {
		return f
	}
	return t.defaultFactor
}

// Known reports whether the material identifier has a dedicated table entry.
func (t *Table) Known(materialID string) bool {
	_, ok := t.materials[NormalizeMaterial(materialID)]
	return ok
}

// DefaultFactor returns the fallback entry applied to unknown materials.
func (t *Table) DefaultFactor() MaterialFactor {
	return t.defaultFactor
}

// LogisticsProfile derives the distance tier for an origin/destination pair.
//
// Resolution order:
//  1. Same country after normalization (or either side empty): domestic tier.
//  2. Both countries known: great-circle distance between centroids,
//     bucketed into regional / continental / intercontinental.
//  3. Either country unknown: intercontinental, the most conservative tier.
func (t *Table) LogisticsProfile(origin, destination string) LogisticsProfile {
	o := NormalizeCountry(origin)
	d := NormalizeCountry(destination)

	if o == d || o == "" || d == "" {
		return t.tiers[TierDomestic]
	}

	from, okFrom := t.coordinates[o]
	to, okTo := t.coordinates[d]
	if !okFrom || !okTo {
		return t.tiers[TierIntercontinental]
	}

	distanceKm := haversineKm(from, to)
	if distanceKm < 1 {
		// Aliases such as "de" and "germany" resolve to the same centroid.
		return t.tiers[TierDomestic]
	}
	profile := t.tiers[tierForDistance(distanceKm)]
	profile.DistanceKm = distanceKm
	return profile
}

// Mode returns the transport-mode profile, defaulting to sea freight for an
// empty or unrecognized mode.
func (t *Table) Mode(name string) ModeProfile {
	key := TransportMode(strings.ToLower(strings.TrimSpace(name)))
	if p, ok := t.modes[key]; ok {
		return p
	}
	return t.modes[ModeSea]
}

// KnownMode reports whether the name is a supported transport mode.
func (t *Table) KnownMode(name string) bool {
	_, ok := t.modes[TransportMode(strings.ToLower(strings.TrimSpace(name)))]
	return ok
}

// MaterialIDs returns the identifiers of all listed materials, sorted.
func (t *Table) MaterialIDs() []string {
	ids := make([]string, 0, len(t.materials))
	for id := range t.materials {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CBAMMaterialIDs returns the identifiers of CBAM-relevant materials, sorted.
func (t *Table) CBAMMaterialIDs() []string {
	ids := make([]string, 0, 8)
	for id, f := range t.materials {
		if f.CBAMRelevant {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// TierProfiles returns the tier table ordered nearest to farthest.
func (t *Table) TierProfiles() []LogisticsProfile {
	order := []DistanceTier{TierDomestic, TierRegional, TierContinental, TierIntercontinental}
	profiles := make([]LogisticsProfile, 0, len(order))
	for _, tier := range order {
		profiles = append(profiles, t.tiers[tier])
	}
	return profiles
}

// ModeProfiles returns the mode table ordered cleanest to dirtiest.
func (t *Table) ModeProfiles() []ModeProfile {
	order := []TransportMode{ModeSea, ModeRail, ModeRoad, ModeAir}
	profiles := make([]ModeProfile, 0, len(order))
	for _, mode := range order {
		profiles = append(profiles, t.modes[mode])
	}
	return profiles
}
