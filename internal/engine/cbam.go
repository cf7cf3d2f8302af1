package engine

import (
	"sort"
	"strings"

	"github.com/autozbudoucnosti/ecoscore/internal/factors"
)

// cbamCategoriesDisplay lists the CBAM categories for the negative reason
// text, matching the order of the EU regulation annex.
const cbamCategoriesDisplay = "steel, aluminum, cement, fertilizer, hydrogen, or iron"

// CBAMDetector flags compositions containing materials covered by the EU
// Carbon Border Adjustment Mechanism.
type CBAMDetector struct {
	table *factors.Table
}

// NewCBAMDetector creates a CBAM detector backed by the given factor table.
func NewCBAMDetector(table *factors.Table) *CBAMDetector {
	return &CBAMDetector{table: table}
}

// Detect reports whether any material with a positive share belongs to a
// CBAM-sensitive category. Presence alone triggers the flag; the share
// magnitude does not matter beyond being positive. Unknown materials are
// never CBAM-relevant.
//
// The reason names the matched materials as the caller spelled them, in
// sorted order so identical compositions always produce identical text.
func (d *CBAMDetector) Detect(composition map[string]float64) CBAMAnalysis {
	var found []string
	for material, share := range composition {
		if share <= 0 {
			continue
		}
		if d.table.FactorFor(material).CBAMRelevant {
			found = append(found, material)
		}
	}

	if len(found) == 0 {
		return CBAMAnalysis{
			Relevant: false,
			Reason:   "Materials do not contain " + cbamCategoriesDisplay + ".",
		}
	}

	sort.Strings(found)
	return CBAMAnalysis{
		Relevant: true,
		Reason:   "Product contains CBAM-relevant material(s): " + strings.Join(found, ", ") + ".",
	}
}
