package project

import (
	"github.com/Helarga/TEASER-1/pkg/archetype"
	"github.com/Helarga/TEASER-1/pkg/building"
	"github.com/Helarga/TEASER-1/pkg/schedule"
)

// Project is the top-level description of one generation run: the building
// parameters, paths to the catalogs, and either measured room rows or an
// archetype parameter block.
type Project struct {
	Building BuildingDef  `yaml:"building" json:"building"`
	Catalogs CatalogPaths `yaml:"catalogs" json:"catalogs"`

	// Adjust applies to every zone's usage schedules.
	Adjust schedule.Adjustments `yaml:"schedule_adjustments" json:"schedule_adjustments"`

	// AHU overrides the default central-unit parameterization.
	AHU       *building.AHU      `yaml:"ahu" json:"ahu,omitempty"`
	FlowTable building.FlowTable `yaml:"flow_table" json:"flow_table,omitempty"`

	// Rows are measured room records, logical column name to raw cell.
	Rows []map[string]string `yaml:"rows" json:"rows,omitempty"`

	// Translation maps raw usage labels to catalog labels; empty selects
	// the default table.
	Translation map[string]string `yaml:"usage_translation" json:"usage_translation,omitempty"`

	// Archetype drives statistical estimation instead of measured rows.
	Archetype *ArchetypeDef `yaml:"archetype" json:"archetype,omitempty"`
}

type BuildingDef struct {
	Name             string `yaml:"name" json:"name"`
	Year             int    `yaml:"year" json:"year"`
	WithAHU          bool   `yaml:"with_ahu" json:"with_ahu"`
	ArchetypeSpecial bool   `yaml:"archetype_special" json:"archetype_special"`
}

type CatalogPaths struct {
	Usages        string `yaml:"usages" json:"usages"`
	Constructions string `yaml:"constructions" json:"constructions"`
	// Factors optionally recalibrates the archetype estimation constants.
	Factors string `yaml:"factors" json:"factors,omitempty"`
}

// ArchetypeDef is the parameter block of an archetype building.
type ArchetypeDef struct {
	FloorArea    float64 `yaml:"floor_area" json:"floor_area"`
	FloorCount   int     `yaml:"floor_count" json:"floor_count"`
	Layout       int     `yaml:"layout" json:"layout"`
	Construction string  `yaml:"construction" json:"construction"`
	// WindowConstruction is the catalog key for the window elements.
	WindowConstruction string `yaml:"window_construction" json:"window_construction"`

	Zones []archetype.ZoneEntry `yaml:"zones" json:"zones"`
}
