package engine

import (
	"sort"
	"strconv"

	"github.com/autozbudoucnosti/ecoscore/internal/factors"
)

// materialExplanations holds one-sentence context per material, keyed by the
// normalized identifier. Materials without an entry contribute no sentence.
var materialExplanations = map[string]string{
	"polyester":          "Polyester is a synthetic material with high energy intensity.",
	"nylon":              "Nylon production is energy-intensive with significant CO2 emissions.",
	"cotton":             "Conventional cotton has high water usage (up to 10,000 L/kg).",
	"organic_cotton":     "Organic cotton uses less water and no synthetic pesticides.",
	"recycled_polyester": "Recycled polyester reduces virgin plastic use by ~30%.",
	"wool":               "Wool production has high methane emissions from sheep.",
	"leather":            "Leather has very high CO2 due to cattle farming and tanning.",
	"linen":              "Linen (flax) is one of the most sustainable natural fibers.",
	"hemp":               "Hemp requires minimal water and no pesticides; highly sustainable.",
	"bamboo":             "Bamboo grows fast but processing can be chemical-intensive.",
	"steel":              "Steel production is carbon-intensive (CBAM-relevant).",
	"aluminum":           "Aluminum smelting is very energy-intensive (CBAM-relevant).",
	"cement":             "Cement is a major industrial CO2 source (CBAM-relevant).",
	"iron":               "Iron production involves high-temperature furnaces (CBAM-relevant).",
}

var modeExplanations = map[factors.TransportMode]string{
	factors.ModeSea:  "Sea freight is the most carbon-efficient shipping mode.",
	factors.ModeRail: "Rail freight is relatively efficient (~2x sea freight CO2).",
	factors.ModeRoad: "Road freight has ~5x higher CO2 than sea freight.",
	factors.ModeAir:  "Air freight penalty applied (approx 50x higher CO2 than sea freight).",
}

var tierExplanations = map[factors.DistanceTier]string{
	factors.TierDomestic:         "Domestic delivery keeps logistics impact low.",
	factors.TierContinental:      "Long-distance shipping significantly increases logistics impact.",
	factors.TierIntercontinental: "Intercontinental shipping substantially increases emissions.",
}

// Weight thresholds for the explanation sentences.
const (
	heavyProductKg = 5.0
	lightProductKg = 0.3
)

// buildExplanation assembles the human-readable statements for a result:
// one per recognized material (sorted by identifier), then the shipping mode,
// the distance tier and finally the weight, when each has something to say.
// The order is stable so identical requests produce identical output.
func buildExplanation(composition map[string]float64, weightKg float64, logistics LogisticsAssessment) []string {
	keys := make([]string, 0, len(composition))
	for material, share := range composition {
		if share <= 0 {
			continue
		}
		keys = append(keys, factors.NormalizeMaterial(material))
	}
	sort.Strings(keys)

	explanation := make([]string, 0, len(keys)+3)
	for _, key := range keys {
		if text, ok := materialExplanations[key]; ok {
			explanation = append(explanation, text)
		}
	}

	if text, ok := modeExplanations[logistics.Mode]; ok {
		explanation = append(explanation, text)
	}
	if text, ok := tierExplanations[logistics.Tier]; ok {
		explanation = append(explanation, text)
	}

	switch {
	case weightKg > heavyProductKg:
		explanation = append(explanation,
			"Heavy product ("+strconv.FormatFloat(weightKg, 'f', 1, 64)+" kg) adds a significant weight penalty.")
	case weightKg < lightProductKg:
		explanation = append(explanation,
			"Lightweight product contributes to a better sustainability score.")
	}

	return explanation
}
