// Package main regenerates internal/factors/materials.go from the material
// factor data in data/materials.yaml.
//
// The YAML file is the source of truth for emission, water and
// sustainability factors; this tool keeps the generated Go table in sync
// with it.
//
// Usage:
//
//	go run ./tools/generate-factors [--dry-run] [--validate]
//
// Flags:
//
//	--dry-run   Print the generated file without writing it
//	--validate  Validate values are within expected ranges
//	--input     Path to materials.yaml (default: ./data/materials.yaml)
//	--output    Path to materials.go (default: ./internal/factors/materials.go)
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// Plausibility ranges for factors, in the units of each column.
	maxCO2KgPerKg       = 100.0
	maxWaterLitersPerKg = 20000.0

	// Template for generating materials.go. Placeholders: vintage (twice),
	// map entries, then the three default factor values.
	fileTemplate = `package factors

// MaterialFactor describes the per-kilogram environmental profile of a single
// material: emission and water intensity, a normalized sustainability weight,
// and whether the material falls under the EU Carbon Border Adjustment
// Mechanism (CBAM).
type MaterialFactor struct {
	// CO2KgPerKg is the emission factor in kg CO2e per kg of material.
	CO2KgPerKg float64

	// WaterLitersPerKg is the water usage factor in liters per kg of material.
	WaterLitersPerKg float64

	// Sustainability is the normalized material sustainability weight (0-100).
	// Higher means lower environmental impact.
	Sustainability float64

	// CBAMRelevant marks materials covered by the EU Carbon Border
	// Adjustment Mechanism (steel, aluminum, cement, fertilizer, hydrogen, iron).
	CBAMRelevant bool
}

// materialFactors maps normalized material identifiers to their factors.
// Values are %d global averages aligned to published LCA literature;
// recycled polyester is ~30%% below virgin polyester.
//
// Data vintage: %d (regenerate with: go run ./tools/generate-factors)
var materialFactors = map[string]MaterialFactor{
%s}

// defaultMaterialFactor is used when a material identifier is not listed in
// materialFactors. The values are neutral mid-range estimates so that unknown
// materials neither dominate nor flatter a composition.
var defaultMaterialFactor = MaterialFactor{
	CO2KgPerKg:       %s,
	WaterLitersPerKg: %s,
	Sustainability:   %s,
}
`
)

// factorData is the shape of data/materials.yaml.
type factorData struct {
	Vintage   int             `yaml:"vintage"`
	Materials []materialEntry `yaml:"materials"`
	Default   materialValues  `yaml:"default"`
}

type materialEntry struct {
	ID             string `yaml:"id"`
	materialValues `yaml:",inline"`
}

type materialValues struct {
	CO2KgPerKg       float64 `yaml:"co2_kg_per_kg"`
	WaterLitersPerKg float64 `yaml:"water_liters_per_kg"`
	Sustainability   float64 `yaml:"sustainability"`
	CBAMRelevant     bool    `yaml:"cbam_relevant"`
}

var materialIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func main() {
	dryRun := flag.Bool("dry-run", false, "Print the generated file without writing it")
	validate := flag.Bool("validate", true, "Validate values are within expected ranges")
	input := flag.String("input", "./data/materials.yaml", "Path to materials.yaml")
	output := flag.String("output", "./internal/factors/materials.go", "Path to materials.go")
	flag.Parse()

	data, err := loadFactorData(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *input, err)
		os.Exit(1)
	}

	if *validate {
		if err := validateFactorData(data); err != nil {
			fmt.Fprintf(os.Stderr, "Validation error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Validation passed")
	}

	content := generateMaterialsFile(data)

	if *dryRun {
		fmt.Println("--- Dry run output ---")
		fmt.Println(content)
		return
	}

	if err := os.WriteFile(*output, []byte(content), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Updated %s with %d materials\n", *output, len(data.Materials))
	fmt.Println("Run 'go test ./internal/factors/...' to verify the changes")
}

func loadFactorData(path string) (*factorData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data factorData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return &data, nil
}

// validateFactorData checks every material against the plausibility ranges
// and the table against structural rules (normalized unique identifiers,
// a usable default).
func validateFactorData(data *factorData) error {
	var problems []string

	if data.Vintage < 2000 || data.Vintage > 2100 {
		problems = append(problems, fmt.Sprintf("vintage %d is not a plausible year", data.Vintage))
	}
	if len(data.Materials) == 0 {
		problems = append(problems, "no materials defined")
	}

	seen := make(map[string]bool, len(data.Materials))
	for _, m := range data.Materials {
		if !materialIDPattern.MatchString(m.ID) {
			problems = append(problems, fmt.Sprintf("%q: id must be lowercase snake_case", m.ID))
		}
		if seen[m.ID] {
			problems = append(problems, fmt.Sprintf("%q: duplicate id", m.ID))
		}
		seen[m.ID] = true

		problems = append(problems, validateValues(m.ID, m.materialValues)...)
	}

	problems = append(problems, validateValues("default", data.Default)...)
	if data.Default.CBAMRelevant {
		problems = append(problems, "default: must not be CBAM relevant")
	}

	if len(problems) > 0 {
		return fmt.Errorf("validation failed:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}

func validateValues(id string, v materialValues) []string {
	var problems []string
	if v.CO2KgPerKg <= 0 || v.CO2KgPerKg > maxCO2KgPerKg {
		problems = append(problems, fmt.Sprintf("%s: co2_kg_per_kg %g outside (0, %g]", id, v.CO2KgPerKg, maxCO2KgPerKg))
	}
	if v.WaterLitersPerKg <= 0 || v.WaterLitersPerKg > maxWaterLitersPerKg {
		problems = append(problems, fmt.Sprintf("%s: water_liters_per_kg %g outside (0, %g]", id, v.WaterLitersPerKg, maxWaterLitersPerKg))
	}
	if v.Sustainability < 0 || v.Sustainability > 100 {
		problems = append(problems, fmt.Sprintf("%s: sustainability %g outside [0, 100]", id, v.Sustainability))
	}
	return problems
}

// generateMaterialsFile renders the materials.go content. Materials keep the
// YAML order, so the generated table groups related materials the way the
// data file does.
func generateMaterialsFile(data *factorData) string {
	keyWidth := 0
	for _, m := range data.Materials {
		if w := len(strconv.Quote(m.ID)) + 1; w > keyWidth {
			keyWidth = w
		}
	}

	var entries strings.Builder
	for _, m := range data.Materials {
		fields := fmt.Sprintf("{CO2KgPerKg: %s, WaterLitersPerKg: %s, Sustainability: %s",
			co2String(m.CO2KgPerKg), plainString(m.WaterLitersPerKg), plainString(m.Sustainability))
		if m.CBAMRelevant {
			fields += ", CBAMRelevant: true"
		}
		fields += "},"

		entries.WriteString(fmt.Sprintf("\t%-*s %s\n", keyWidth, strconv.Quote(m.ID)+":", fields))
	}

	return fmt.Sprintf(fileTemplate,
		data.Vintage, data.Vintage, entries.String(),
		co2String(data.Default.CO2KgPerKg),
		plainString(data.Default.WaterLitersPerKg),
		plainString(data.Default.Sustainability))
}

// co2String keeps at least one decimal so emission factors read as floats
// ("3.0", not "3").
func co2String(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// plainString drops the decimal point for whole values ("9500", not
// "9500.0"), matching the hand-tuned table style.
func plainString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
