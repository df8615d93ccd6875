package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Helarga/TEASER-1/pkg/archetype"
	"github.com/Helarga/TEASER-1/pkg/building"
	"github.com/Helarga/TEASER-1/pkg/catalog"
	"github.com/Helarga/TEASER-1/pkg/project"
	"github.com/Helarga/TEASER-1/pkg/validation"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// loadProject loads the project and its catalogs. Catalog paths are
// resolved relative to the project file's directory.
func loadProject(projectPath string) (*project.Project, catalog.UsageCatalog, catalog.ConstructionCatalog, error) {
	p, err := project.LoadProject(projectPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading project: %w", err)
	}

	var usages catalog.UsageCatalog
	if p.Catalogs.Usages != "" {
		usages, err = catalog.LoadUsageCatalog(filepath.Join(projectPath, p.Catalogs.Usages))
		if err != nil {
			return nil, nil, nil, err
		}
	}
	var constructions catalog.ConstructionCatalog
	if p.Catalogs.Constructions != "" {
		constructions, err = catalog.LoadConstructionCatalog(filepath.Join(projectPath, p.Catalogs.Constructions))
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return p, usages, constructions, nil
}

func runValidate(projectPath string, verbose bool) error {
	p, usages, constructions, err := loadProject(projectPath)
	if err != nil {
		return err
	}
	log, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	opts := p.Options(usages, constructions)
	opts.Logger = log

	_, rpt, err := building.Generate(p.Records(), opts)
	if rpt != nil {
		printValidationReport(rpt)
	}
	if err != nil {
		return err
	}
	if !rpt.Valid {
		os.Exit(1)
	}
	return nil
}

func runGenerate(projectPath string, verbose bool) error {
	p, usages, constructions, err := loadProject(projectPath)
	if err != nil {
		return err
	}
	log, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	opts := p.Options(usages, constructions)
	opts.Logger = log

	b, rpt, err := building.Generate(p.Records(), opts)
	if err != nil {
		if rpt != nil {
			printValidationReport(rpt)
		}
		return err
	}

	if p.Archetype != nil {
		if err := attachArchetype(projectPath, p, b, usages, constructions, rpt); err != nil {
			printValidationReport(rpt)
			return err
		}
	}

	output := map[string]any{
		"building":   b,
		"validation": rpt,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// attachArchetype appends statistically estimated zones to a building whose
// geometry is not fully measured.
func attachArchetype(projectPath string, p *project.Project, b *building.Building, usages catalog.UsageCatalog, constructions catalog.ConstructionCatalog, rpt *validation.Report) error {
	a := p.Archetype
	est, err := estimatorFor(projectPath, p)
	if err != nil {
		return err
	}

	zones, err := archetype.BuildZones(a.Zones, usages, rpt)
	if err != nil {
		return err
	}
	est.Estimate().Attach(zones, archetype.AttachOptions{
		Year:               p.Building.Year,
		Construction:       archetype.ConstructionType(a.Construction),
		WindowConstruction: a.WindowConstruction,
		Constructions:      constructions,
	}, rpt)

	for _, z := range zones {
		b.NetArea += z.NetArea
		b.Volume += z.Volume
		b.Zones = append(b.Zones, &building.Zone{Zone: z})
	}
	return nil
}

func estimatorFor(projectPath string, p *project.Project) (*archetype.Estimator, error) {
	factors := archetype.DefaultFactors()
	if p.Catalogs.Factors != "" {
		var err error
		factors, err = archetype.LoadFactors(filepath.Join(projectPath, p.Catalogs.Factors))
		if err != nil {
			return nil, err
		}
	}
	return archetype.New(archetype.Params{
		FloorArea:    p.Archetype.FloorArea,
		FloorCount:   p.Archetype.FloorCount,
		Layout:       archetype.FacadeLayout(p.Archetype.Layout),
		Construction: archetype.ConstructionType(p.Archetype.Construction),
	}, factors)
}

func runEstimate(projectPath string) error {
	p, err := project.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}
	if p.Archetype == nil {
		return fmt.Errorf("project has no archetype block")
	}

	est, err := estimatorFor(projectPath, p)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"params":   est.Params(),
		"estimate": est.Estimate(),
	})
}
