package archetype

import (
	"fmt"

	"github.com/Helarga/TEASER-1/pkg/catalog"
	"github.com/Helarga/TEASER-1/pkg/elements"
	"github.com/Helarga/TEASER-1/pkg/validation"
	"github.com/Helarga/TEASER-1/pkg/zoning"
)

// ZoneEntry is one row of an archetype's zone table: measured area and
// volume plus the catalog usage driving its boundary conditions.
type ZoneEntry struct {
	Name   string  `yaml:"name" json:"name"`
	Area   float64 `yaml:"area" json:"area"`
	Volume float64 `yaml:"volume" json:"volume"`
	Usage  string  `yaml:"usage" json:"usage"`
}

// minZoneVolume is the threshold below which a zone table entry is not
// worth modeling as a thermal zone.
const minZoneVolume = 1.0

// BuildZones creates zones from an archetype zone table, skipping entries
// below the volume threshold. A usage-catalog miss is a hard fault.
func BuildZones(entries []ZoneEntry, usages catalog.UsageCatalog, rpt *validation.Report) ([]*zoning.Zone, error) {
	var zones []*zoning.Zone
	for _, e := range entries {
		if e.Volume < minZoneVolume {
			rpt.AddInfo(validation.Result{
				Level:   validation.LevelArchetype,
				Zone:    e.Name,
				Message: fmt.Sprintf("zone table entry %q skipped: volume %.2f m³ is below the modeling threshold", e.Name, e.Volume),
			})
			continue
		}
		z := &zoning.Zone{Name: e.Name, NetArea: e.Area, Volume: e.Volume}
		if usages != nil {
			uc, err := usages.UseConditions(e.Usage)
			if err != nil {
				return nil, fmt.Errorf("archetype zone %q: %w", e.Name, err)
			}
			z.UseConditions = uc
		}
		zones = append(zones, z)
	}
	return zones, nil
}

// AttachOptions configure how estimated areas become zone elements.
type AttachOptions struct {
	Year int
	// Construction is the wall/roof/ground construction label; the
	// archetype construction type doubles as the catalog key.
	Construction ConstructionType
	// WindowConstruction is the window catalog key.
	WindowConstruction string
	Constructions      catalog.ConstructionCatalog
}

// facadeNames follow the archetype convention of one element per cardinal
// direction.
var facadeNames = [4]string{
	"Exterior Facade North",
	"Exterior Facade East",
	"Exterior Facade South",
	"Exterior Facade West",
}

var windowNames = [4]string{
	"Window Facade North",
	"Window Facade East",
	"Window Facade South",
	"Window Facade West",
}

// Attach distributes the estimated envelope over the zones proportional
// to zone area and resolves construction properties. Each zone receives
// four oriented walls and windows, a rooftop and a ground floor.
func (est Estimate) Attach(zones []*zoning.Zone, opts AttachOptions, rpt *validation.Report) {
	total := 0.0
	for _, z := range zones {
		total += z.NetArea
	}
	if total == 0 {
		return
	}

	for _, z := range zones {
		share := z.NetArea / total

		for i, o := range est.Orientations {
			wall := &elements.Descriptor{
				Kind:         elements.KindOuterWall,
				Name:         facadeNames[i],
				Orientation:  o.Orientation,
				Tilt:         elements.TiltWall,
				Area:         o.WallArea * share,
				Construction: string(opts.Construction),
			}
			window := &elements.Descriptor{
				Kind:         elements.KindWindow,
				Name:         windowNames[i],
				Orientation:  o.Orientation,
				Tilt:         elements.TiltWindow,
				Area:         o.WindowArea * share,
				Construction: opts.WindowConstruction,
			}
			attachProperties(z.Name, wall, opts, rpt)
			attachProperties(z.Name, window, opts, rpt)
			z.Elements = append(z.Elements, wall, window)
		}

		roof := &elements.Descriptor{
			Kind:         elements.KindRooftop,
			Name:         "Rooftop",
			Orientation:  elements.OrientationRooftop,
			Tilt:         elements.TiltRooftop,
			Area:         est.RoofArea * share,
			Construction: string(opts.Construction),
		}
		ground := &elements.Descriptor{
			Kind:         elements.KindGroundFloor,
			Name:         "Floor With Earth Contact",
			Orientation:  elements.OrientationGroundFloor,
			Tilt:         elements.TiltGroundFloor,
			Area:         est.FloorArea * share,
			Construction: string(opts.Construction),
		}
		attachProperties(z.Name, roof, opts, rpt)
		attachProperties(z.Name, ground, opts, rpt)
		z.Elements = append(z.Elements, roof, ground)
	}
}

func attachProperties(zoneName string, d *elements.Descriptor, opts AttachOptions, rpt *validation.Report) {
	if opts.Constructions == nil {
		return
	}
	el, err := opts.Constructions.TypeElement(d.Construction, opts.Year, true)
	if err != nil {
		rpt.AddWarning(validation.Result{
			Level:       validation.LevelArchetype,
			Zone:        zoneName,
			Field:       string(d.Kind),
			ActualValue: d.Construction,
			Message: fmt.Sprintf("in zone %q the %s construction %q could not be loaded from the construction catalog",
				zoneName, d.Kind, d.Construction),
		})
		return
	}
	d.Properties = el
}
