package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autozbudoucnosti/ecoscore/internal/factors"
)

func TestCBAMDetector_Detect(t *testing.T) {
	d := NewCBAMDetector(factors.New())

	tests := []struct {
		name         string
		composition  map[string]float64
		wantRelevant bool
	}{
		{"pure textile", map[string]float64{"cotton": 0.6, "polyester": 0.4}, false},
		{"pure steel", map[string]float64{"steel": 1.0}, true},
		{"trace aluminum triggers", map[string]float64{"cotton": 0.99, "aluminum": 0.01}, true},
		{"all six categories", map[string]float64{
			"steel": 0.2, "aluminum": 0.2, "cement": 0.2,
			"fertilizer": 0.2, "hydrogen": 0.1, "iron": 0.1,
		}, true},
		{"unknown material is not CBAM", map[string]float64{"unobtainium": 1.0}, false},
		{"empty composition", map[string]float64{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Detect(tt.composition)

			assert.Equal(t, tt.wantRelevant, got.Relevant)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

// TestCBAMDetector_PresenceNotShare validates that the flag depends only on
// presence with a positive share, not on how large that share is or what
// else is in the blend.
func TestCBAMDetector_PresenceNotShare(t *testing.T) {
	d := NewCBAMDetector(factors.New())

	assert.True(t, d.Detect(map[string]float64{"wool": 0.999, "iron": 0.001}).Relevant)
	assert.False(t, d.Detect(map[string]float64{"steel": 0.0, "cotton": 1.0}).Relevant,
		"a zero-share CBAM material should not trigger the flag")
}

func TestCBAMDetector_ReasonText(t *testing.T) {
	d := NewCBAMDetector(factors.New())

	relevant := d.Detect(map[string]float64{"steel": 0.5, "aluminum": 0.5})
	assert.Equal(t,
		"Product contains CBAM-relevant material(s): aluminum, steel.",
		relevant.Reason,
		"matched materials should be listed in sorted order")

	clean := d.Detect(map[string]float64{"hemp": 1.0})
	assert.Equal(t,
		"Materials do not contain steel, aluminum, cement, fertilizer, hydrogen, or iron.",
		clean.Reason)
}

func TestCBAMDetector_EchoesCallerSpelling(t *testing.T) {
	d := NewCBAMDetector(factors.New())

	got := d.Detect(map[string]float64{"Steel": 1.0})

	assert.True(t, got.Relevant)
	assert.Equal(t, "Product contains CBAM-relevant material(s): Steel.", got.Reason)
}
