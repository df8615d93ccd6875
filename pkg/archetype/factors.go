// Package archetype fills in unknown envelope geometry for parametric
// building templates via statistical correlations over the total floor
// area.
package archetype

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FacadeLayout classifies the window distribution style of the exterior.
type FacadeLayout int

const (
	LayoutGeneric     FacadeLayout = 0 // statistical mean facade
	LayoutPunctuated  FacadeLayout = 1 // individual windows
	LayoutBanner      FacadeLayout = 2 // continuous window bands
	LayoutFullGlazing FacadeLayout = 3 // fully glazed, compact footprint
)

// ConstructionType selects the wall construction class.
type ConstructionType string

const (
	ConstructionHeavy ConstructionType = "heavy"
	ConstructionLight ConstructionType = "light"
)

// Factors are the per-archetype estimation constants. They are empirical
// values calibrated against an archetype study and therefore configuration
// data, loadable from YAML for recalibration.
type Factors struct {
	// Power-law coefficients for the facade estimate.
	WallFactor   float64 `yaml:"wall_factor" json:"wall_factor"`
	WallExponent float64 `yaml:"wall_exponent" json:"wall_exponent"`
	WinFactor    float64 `yaml:"win_factor" json:"win_factor"`
	WinExponent  float64 `yaml:"win_exponent" json:"win_exponent"`

	// GrossFactor corrects net floor area to the gross footprint.
	GrossFactor float64 `yaml:"gross_factor" json:"gross_factor"`

	// Fixed footprint width estimates per layout; full glazing derives
	// the width from the footprint instead.
	WidthElongated float64 `yaml:"width_elongated" json:"width_elongated"`
	WidthBanner    float64 `yaml:"width_banner" json:"width_banner"`
}

// DefaultFactors returns the calibration of the non-residential archetype
// study the estimator was built from.
func DefaultFactors() Factors {
	return Factors{
		WallFactor:     0.7658,
		WallExponent:   0.9206,
		WinFactor:      0.074,
		WinExponent:    1.0889,
		GrossFactor:    1.15,
		WidthElongated: 13.0,
		WidthBanner:    15.0,
	}
}

// LoadFactors reads estimation factors from a YAML file.
func LoadFactors(path string) (Factors, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Factors{}, fmt.Errorf("reading archetype factors: %w", err)
	}
	f := DefaultFactors()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Factors{}, fmt.Errorf("parsing archetype factors YAML: %w", err)
	}
	return f, nil
}

// facade correction pairs per layout: (wall share, window share) of the
// combined facade area. The generic layout keeps the raw statistical split.
var corrFactors = map[FacadeLayout][2]float64{
	LayoutGeneric:     {1.0, 1.0},
	LayoutPunctuated:  {0.75, 0.25},
	LayoutBanner:      {0.5, 0.5},
	LayoutFullGlazing: {0.1, 0.9},
}

func validLayout(l FacadeLayout) error {
	if l < LayoutGeneric || l > LayoutFullGlazing {
		return fmt.Errorf("facade layout value has to be between 0 - 3, got %d", l)
	}
	return nil
}

func validConstruction(c ConstructionType) error {
	if c != ConstructionHeavy && c != ConstructionLight {
		return fmt.Errorf("construction type has to be %q or %q, got %q", ConstructionHeavy, ConstructionLight, c)
	}
	return nil
}
