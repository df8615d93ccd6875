// Package catalog provides the keyed lookup services the generator consumes:
// per-usage boundary conditions and per-construction thermal properties.
// Both are loaded once before processing begins and are read-only afterwards.
package catalog

import "fmt"

// UseConditions are the boundary conditions of one usage label: base
// schedules for setpoints and internal gains plus AHU flow bounds.
// Profiles are hourly, either 24 values for a representative day or 168
// for a week; all profiles of one usage share length and indexing.
type UseConditions struct {
	Usage string `yaml:"usage" json:"usage"`

	HeatingProfile  []float64 `yaml:"heating_profile" json:"heating_profile"`
	CoolingProfile  []float64 `yaml:"cooling_profile" json:"cooling_profile"`
	PersonsProfile  []float64 `yaml:"persons_profile" json:"persons_profile"`
	MachinesProfile []float64 `yaml:"machines_profile" json:"machines_profile"`
	LightingProfile []float64 `yaml:"lighting_profile" json:"lighting_profile"`

	// AHU supply volume flow bounds in m³/(h·m²). Zero when the usage has
	// no entry in the building's AHU table.
	MinAHU float64 `yaml:"min_ahu" json:"min_ahu"`
	MaxAHU float64 `yaml:"max_ahu" json:"max_ahu"`
}

// Clone returns a deep copy. Lookups hand out clones because the profile
// scheduler mutates profiles in place and the catalog must stay pristine
// for sibling zones and buildings.
func (uc *UseConditions) Clone() *UseConditions {
	cp := *uc
	cp.HeatingProfile = append([]float64(nil), uc.HeatingProfile...)
	cp.CoolingProfile = append([]float64(nil), uc.CoolingProfile...)
	cp.PersonsProfile = append([]float64(nil), uc.PersonsProfile...)
	cp.MachinesProfile = append([]float64(nil), uc.MachinesProfile...)
	cp.LightingProfile = append([]float64(nil), uc.LightingProfile...)
	return &cp
}

// Layer is one material layer of a construction, outside in.
type Layer struct {
	Material     string  `yaml:"material" json:"material"`
	Thickness    float64 `yaml:"thickness" json:"thickness"`
	Conductivity float64 `yaml:"conductivity" json:"conductivity"`
	Density      float64 `yaml:"density" json:"density"`
	HeatCapacity float64 `yaml:"heat_capacity" json:"heat_capacity"`
}

// TypeElement holds the thermal properties of one named construction for a
// construction-year range.
type TypeElement struct {
	Construction     string  `yaml:"construction" json:"construction"`
	YearFrom         int     `yaml:"year_from" json:"year_from"`
	YearTo           int     `yaml:"year_to" json:"year_to"`
	UValue           float64 `yaml:"u_value" json:"u_value"`
	Layers           []Layer `yaml:"layers" json:"layers"`
	ArchetypeSpecial bool    `yaml:"archetype_special,omitempty" json:"archetype_special,omitempty"`
}

// UsageCatalog resolves a usage label to its boundary conditions.
// A miss is a hard fault: zones cannot be parameterized without them.
type UsageCatalog interface {
	UseConditions(usage string) (*UseConditions, error)
}

// ConstructionCatalog resolves (construction label, year, archetype-special)
// to thermal properties. Callers treat a miss as a warning and continue
// with a nil reference.
type ConstructionCatalog interface {
	TypeElement(construction string, year int, archetypeSpecial bool) (*TypeElement, error)
}

// LookupMissError reports a key absent from a catalog.
type LookupMissError struct {
	Catalog string // "usage" or "construction"
	Key     string
	Year    int
}

func (e *LookupMissError) Error() string {
	if e.Year != 0 {
		return fmt.Sprintf("%s catalog: no entry for %q at year %d", e.Catalog, e.Key, e.Year)
	}
	return fmt.Sprintf("%s catalog: no entry for %q", e.Catalog, e.Key)
}
