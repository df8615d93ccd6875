// Package project loads the YAML run description that drives the
// generator: building parameters, catalog locations, and either measured
// room rows or an archetype block.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Helarga/TEASER-1/pkg/building"
	"github.com/Helarga/TEASER-1/pkg/catalog"
	"github.com/Helarga/TEASER-1/pkg/tabular"
	"github.com/Helarga/TEASER-1/pkg/zoning"
)

// Load reads a project from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project YAML: %w", err)
	}
	if p.Building.Name == "" {
		p.Building.Name = strippedName(path)
	}
	return &p, nil
}

// LoadProject loads a project from a directory, looking for building.yaml.
func LoadProject(projectDir string) (*Project, error) {
	return Load(filepath.Join(projectDir, "building.yaml"))
}

func strippedName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// Records converts the project's row maps into room records. Row numbers
// start at 2, matching the data rows of a sheet with a header line.
func (p *Project) Records() []tabular.RawRoomRecord {
	records := make([]tabular.RawRoomRecord, 0, len(p.Rows))
	for i, cols := range p.Rows {
		records = append(records, tabular.FromColumns(i+2, cols))
	}
	return records
}

// Options assembles the generation options from the project definition.
// The catalogs are loaded separately and passed in because estimate-only
// runs may not need them.
func (p *Project) Options(usages catalog.UsageCatalog, constructions catalog.ConstructionCatalog) building.Options {
	opts := building.Options{
		Name:      p.Building.Name,
		Year:      p.Building.Year,
		WithAHU:   p.Building.WithAHU,
		AHU:       p.AHU,
		FlowTable: p.FlowTable,
		Adjust:    p.Adjust,
		Zoning: zoning.Options{
			Year:             p.Building.Year,
			Usages:           usages,
			Constructions:    constructions,
			ArchetypeSpecial: p.Building.ArchetypeSpecial,
		},
	}
	if len(p.Translation) > 0 {
		opts.Zoning.Translation = zoning.UsageTranslation(p.Translation)
	}
	return opts
}
