package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_FactorFor_KnownMaterials(t *testing.T) {
	table := New()

	tests := []struct {
		material string
		wantCO2  float64
	}{
		{"cotton", 5.2},
		{"organic_cotton", 3.0},
		{"polyester", 8.2},
		{"leather", 62.0},
		{"steel", 1.85},
	}

	for _, tt := range tests {
		t.Run(tt.material, func(t *testing.T) {
			got := table.FactorFor(tt.material)
			assert.Equal(t, tt.wantCO2, got.CO2KgPerKg,
				"FactorFor(%s) should return the listed CO2 factor", tt.material)
		})
	}
}

// TestTable_FactorFor_NormalizesIdentifiers validates that user-facing
// spellings resolve to the same entry as the canonical key.
func TestTable_FactorFor_NormalizesIdentifiers(t *testing.T) {
	table := New()
	want := table.FactorFor("organic_cotton")

	variants := []string{
		"Organic Cotton",
		"ORGANIC_COTTON",
		"organic-cotton",
		"  organic cotton  ",
	}

	for _, v := range variants {
		t.Run(v, func(t *testing.T) {
			assert.Equal(t, want, table.FactorFor(v))
			assert.True(t, table.Known(v), "Known(%q) should be true", v)
		})
	}
}

func TestTable_FactorFor_UnknownMaterial(t *testing.T) {
	table := New()

	unknown := []string{"unobtainium", "vibranium", ""}

	for _, id := range unknown {
		t.Run(id, func(t *testing.T) {
			got := table.FactorFor(id)

			assert.Equal(t, table.DefaultFactor(), got,
				"FactorFor(%q) should return the default factor", id)
			assert.False(t, table.Known(id))
		})
	}
}

func TestTable_LogisticsProfile(t *testing.T) {
	table := New()

	tests := []struct {
		name        string
		origin      string
		destination string
		wantTier    DistanceTier
	}{
		{"same country code", "DE", "DE", TierDomestic},
		{"same country name", "Germany", "germany", TierDomestic},
		{"code and name alias for one country", "de", "Germany", TierDomestic},
		{"neighbors", "DE", "FR", TierRegional},
		{"within Europe", "Germany", "Spain", TierRegional},
		{"Europe to its edge", "DE", "TR", TierContinental},
		{"within Asia", "Vietnam", "Japan", TierContinental},
		{"Asia to Europe", "India", "Germany", TierIntercontinental},
		{"transpacific", "CN", "US", TierIntercontinental},
		{"multi-word country name", "China", "United States", TierIntercontinental},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.LogisticsProfile(tt.origin, tt.destination)

			assert.Equal(t, tt.wantTier, got.Tier)
			assert.Equal(t, tierProfiles[tt.wantTier].CO2KgPerKg, got.CO2KgPerKg)
			assert.Equal(t, tierProfiles[tt.wantTier].BaseScore, got.BaseScore)
		})
	}
}

// TestTable_LogisticsProfile_UnknownCountry validates the conservative
// fallback: a pair that cannot be resolved is treated as the farthest tier so
// the estimate never understates emissions.
func TestTable_LogisticsProfile_UnknownCountry(t *testing.T) {
	table := New()

	tests := []struct {
		name        string
		origin      string
		destination string
	}{
		{"unknown origin", "Atlantis", "DE"},
		{"unknown destination", "DE", "Narnia"},
		{"both unknown", "Atlantis", "Narnia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.LogisticsProfile(tt.origin, tt.destination)

			assert.Equal(t, TierIntercontinental, got.Tier,
				"unrecognized pairs should fall back to the most conservative tier")
			assert.Equal(t, 0.0, got.DistanceKm,
				"no distance is computable for unrecognized pairs")
		})
	}
}

// TestTable_LogisticsProfile_EmptyCountry validates that a missing origin or
// destination means no shipping information, which is scored as domestic
// rather than guessed at.
func TestTable_LogisticsProfile_EmptyCountry(t *testing.T) {
	table := New()

	tests := []struct {
		name        string
		origin      string
		destination string
	}{
		{"empty origin", "", "DE"},
		{"empty destination", "CN", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.LogisticsProfile(tt.origin, tt.destination)

			assert.Equal(t, TierDomestic, got.Tier)
		})
	}
}

func TestTable_LogisticsProfile_DistanceRecorded(t *testing.T) {
	table := New()

	got := table.LogisticsProfile("IN", "DE")

	require.Equal(t, TierIntercontinental, got.Tier)
	assert.Greater(t, got.DistanceKm, 6500.0)
	assert.Less(t, got.DistanceKm, 7000.0)
}

func TestTable_Mode(t *testing.T) {
	table := New()

	tests := []struct {
		name           string
		mode           string
		wantMode       TransportMode
		wantMultiplier float64
	}{
		{"sea", "sea", ModeSea, 1.0},
		{"rail", "rail", ModeRail, 2.0},
		{"road", "road", ModeRoad, 5.0},
		{"air", "air", ModeAir, 50.0},
		{"mixed case", "AIR", ModeAir, 50.0},
		{"padded", "  sea  ", ModeSea, 1.0},
		{"empty defaults to sea", "", ModeSea, 1.0},
		{"unknown defaults to sea", "teleport", ModeSea, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Mode(tt.mode)

			assert.Equal(t, tt.wantMode, got.Mode)
			assert.Equal(t, tt.wantMultiplier, got.CO2Multiplier)
		})
	}
}

func TestTable_KnownMode(t *testing.T) {
	table := New()

	assert.True(t, table.KnownMode("sea"))
	assert.True(t, table.KnownMode("Air"))
	assert.False(t, table.KnownMode(""))
	assert.False(t, table.KnownMode("teleport"))
}

func TestTable_MaterialIDs(t *testing.T) {
	table := New()

	ids := table.MaterialIDs()

	require.Len(t, ids, len(materialFactors))
	assert.IsIncreasing(t, ids, "material identifiers should be sorted")
	assert.Contains(t, ids, "organic_cotton")
	assert.NotContains(t, ids, "default",
		"the fallback entry is not a listed material")
}

func TestTable_CBAMMaterialIDs(t *testing.T) {
	table := New()

	got := table.CBAMMaterialIDs()

	assert.Equal(t, []string{"aluminum", "cement", "fertilizer", "hydrogen", "iron", "steel"}, got)
}

func TestTable_TierProfiles_OrderedNearestFirst(t *testing.T) {
	table := New()

	profiles := table.TierProfiles()

	require.Len(t, profiles, 4)
	assert.Equal(t, TierDomestic, profiles[0].Tier)
	assert.Equal(t, TierIntercontinental, profiles[3].Tier)
}

func TestTable_ModeProfiles_OrderedCleanestFirst(t *testing.T) {
	table := New()

	profiles := table.ModeProfiles()

	require.Len(t, profiles, 4)
	assert.Equal(t, ModeSea, profiles[0].Mode)
	assert.Equal(t, ModeAir, profiles[3].Mode)
	assert.IsIncreasing(t, []float64{
		profiles[0].CO2Multiplier,
		profiles[1].CO2Multiplier,
		profiles[2].CO2Multiplier,
		profiles[3].CO2Multiplier,
	})
}

// TestNormalizeMaterial covers the documented normalization rules: trim,
// lowercase, spaces and hyphens to underscores.
func TestNormalizeMaterial(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Organic Cotton", "organic_cotton"},
		{"recycled-polyester", "recycled_polyester"},
		{"  STEEL  ", "steel"},
		{"wool", "wool"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMaterial(tt.in))
		})
	}
}

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"United States", "united_states"},
		{"United-Kingdom", "united_kingdom"},
		{" DE ", "de"},
		{"Bangladesh", "bangladesh"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCountry(tt.in))
		})
	}
}
