package elements

import (
	"fmt"

	"github.com/Helarga/TEASER-1/pkg/catalog"
	"github.com/Helarga/TEASER-1/pkg/tabular"
	"github.com/Helarga/TEASER-1/pkg/validation"
)

// Options configures one aggregation pass.
type Options struct {
	// Year is the building's construction year used for catalog lookups.
	Year int
	// Constructions resolves thermal properties; nil skips resolution.
	Constructions catalog.ConstructionCatalog
	// ArchetypeSpecial prefers archetype-calibrated catalog entries.
	ArchetypeSpecial bool
}

// Aggregate groups the member rows of one zone per element kind and emits
// one descriptor per group in first-seen order. Halving rules: inner wall,
// floor and ceiling areas belong half to the adjacent zone or story; ground
// floor and rooftop keep the full contact area.
func Aggregate(zoneName string, rows []tabular.RawRoomRecord, opts Options, rpt *validation.Report) []*Descriptor {
	var out []*Descriptor
	out = append(out, aggregateOriented(zoneName, rows, KindOuterWall, opts, rpt)...)
	out = append(out, aggregateOriented(zoneName, rows, KindWindow, opts, rpt)...)
	out = append(out, aggregateFlagged(zoneName, rows, KindGroundFloor, opts, rpt)...)
	out = append(out, aggregateFlagged(zoneName, rows, KindRooftop, opts, rpt)...)
	out = append(out, aggregateInnerWalls(zoneName, rows, opts, rpt)...)
	return out
}

// aggregateOriented handles outer walls and windows: grouped by
// (orientation, construction), tilt 90°.
func aggregateOriented(zoneName string, rows []tabular.RawRoomRecord, kind Kind, opts Options, rpt *validation.Report) []*Descriptor {
	orientationOf := func(r tabular.RawRoomRecord) tabular.Cell { return r.OuterWallOrientation }
	constructionOf := func(r tabular.RawRoomRecord) tabular.Cell { return r.OuterWallConstr }
	areaOf := func(r tabular.RawRoomRecord) float64 { return r.OuterWallArea.FloatOrZero() }
	field := "OuterWallOrientation"
	if kind == KindWindow {
		orientationOf = func(r tabular.RawRoomRecord) tabular.Cell { return r.WindowOrientation }
		constructionOf = func(r tabular.RawRoomRecord) tabular.Cell { return r.WindowConstr }
		areaOf = func(r tabular.RawRoomRecord) float64 { return r.WindowArea.FloatOrZero() }
		field = "WindowOrientation"
	}

	groups := groupBy(rows, func(r tabular.RawRoomRecord) (tabular.Cell, tabular.Cell) {
		return orientationOf(r), constructionOf(r)
	})

	var out []*Descriptor
	for _, g := range groups {
		orientation, ok := g.key1.Float()
		if !ok {
			rpt.AddWarning(validation.Result{
				Level:       validation.LevelElement,
				Zone:        zoneName,
				Field:       field,
				ActualValue: g.key1.Raw,
				Expected:    "numeric orientation in degrees",
				Message: fmt.Sprintf("in zone %q the %s orientation %q is not numeric, the element is not added (rows %v)",
					zoneName, kind, g.key1.Raw, g.rowNumbers()),
			})
			continue
		}

		construction := g.key2.Raw
		area := g.sumArea(areaOf)
		if !emitNonZero(zoneName, kind, construction, area, g, rpt) {
			continue
		}

		d := &Descriptor{
			Kind:         kind,
			Name:         fmt.Sprintf("%s_%d_%s", kind, int(orientation), construction),
			Orientation:  orientation,
			Tilt:         TiltWall,
			Area:         area,
			Construction: construction,
		}
		resolveConstruction(zoneName, d, opts, rpt)
		out = append(out, d)
	}
	return out
}

// aggregateFlagged handles the ground-floor/floor pair and the
// rooftop/ceiling pair: grouped by (flag, construction), area taken from
// the rooms' net areas. Flag 1 selects the zone-owned contact surface
// (ground floor, rooftop); flag 0 the story-shared one (floor, ceiling),
// which is halved.
func aggregateFlagged(zoneName string, rows []tabular.RawRoomRecord, contact Kind, opts Options, rpt *validation.Report) []*Descriptor {
	flagOf := func(r tabular.RawRoomRecord) tabular.Cell { return r.IsGroundFloor }
	constructionOf := func(r tabular.RawRoomRecord) tabular.Cell { return r.FloorConstr }
	field := "IsGroundFloor"
	shared := KindFloor
	sharedOrientation, contactOrientation := OrientationFloor, OrientationGroundFloor
	if contact == KindRooftop {
		flagOf = func(r tabular.RawRoomRecord) tabular.Cell { return r.IsRooftop }
		constructionOf = func(r tabular.RawRoomRecord) tabular.Cell { return r.CeilingConstr }
		field = "IsRooftop"
		shared = KindCeiling
		sharedOrientation, contactOrientation = OrientationCeiling, OrientationRooftop
	}

	groups := groupBy(rows, func(r tabular.RawRoomRecord) (tabular.Cell, tabular.Cell) {
		return flagOf(r), constructionOf(r)
	})

	var out []*Descriptor
	for _, g := range groups {
		construction := g.key2.Raw
		area := g.sumArea(func(r tabular.RawRoomRecord) float64 { return r.NetArea })
		if area == 0 {
			rpt.AddWarning(validation.Result{
				Level: validation.LevelElement,
				Zone:  zoneName,
				Field: field,
				Message: fmt.Sprintf("zone %q with %s %q and construction %q has no %s nor %s, the area equals 0 (rows %v)",
					zoneName, field, g.key1.Raw, construction, shared, contact, g.rowNumbers()),
			})
			continue
		}

		var d *Descriptor
		flag, numeric := g.key1.Float()
		switch {
		case numeric && flag == 1:
			d = &Descriptor{
				Kind:         contact,
				Name:         string(contact) + construction,
				Orientation:  contactOrientation,
				Tilt:         TiltGroundFloor,
				Area:         area,
				Construction: construction,
			}
		case numeric && flag == 0:
			d = &Descriptor{
				Kind:         shared,
				Name:         string(shared) + construction,
				Orientation:  sharedOrientation,
				Tilt:         TiltFloor,
				Area:         area / 2,
				Construction: construction,
			}
		}
		if d == nil {
			rpt.AddWarning(validation.Result{
				Level:       validation.LevelElement,
				Zone:        zoneName,
				Field:       field,
				ActualValue: g.key1.Raw,
				Expected:    "0 or 1",
				Message: fmt.Sprintf("values for %s have to be either 0 or 1, for no or yes respectively (zone %q, rows %v)",
					field, zoneName, g.rowNumbers()),
			})
			continue
		}
		resolveConstruction(zoneName, d, opts, rpt)
		out = append(out, d)
	}
	return out
}

// aggregateInnerWalls groups on construction only; orientation has no
// meaning for inner walls. Areas are halved: each wall belongs half to the
// room and half to the adjacent one.
func aggregateInnerWalls(zoneName string, rows []tabular.RawRoomRecord, opts Options, rpt *validation.Report) []*Descriptor {
	groups := groupBy(rows, func(r tabular.RawRoomRecord) (tabular.Cell, tabular.Cell) {
		return r.InnerWallConstr, tabular.NewCell("-")
	})

	var out []*Descriptor
	for _, g := range groups {
		construction := g.key1.Raw
		area := g.sumArea(func(r tabular.RawRoomRecord) float64 { return r.InnerWallArea.FloatOrZero() })
		if area == 0 {
			rpt.AddWarning(validation.Result{
				Level: validation.LevelElement,
				Zone:  zoneName,
				Field: "InnerWallArea",
				Message: fmt.Sprintf("zone %q with inner wall construction %q has no inner walls, since area = 0 (rows %v)",
					zoneName, construction, g.rowNumbers()),
			})
			continue
		}

		d := &Descriptor{
			Kind:         KindInnerWall,
			Name:         string(KindInnerWall) + construction,
			Orientation:  0,
			Tilt:         TiltWall,
			Area:         area / 2,
			Construction: construction,
		}
		resolveConstruction(zoneName, d, opts, rpt)
		out = append(out, d)
	}
	return out
}

// emitNonZero enforces the zero-group suppression invariant for oriented
// elements. Zero-sum groups usually mean a stray construction label on a
// zero-area row.
func emitNonZero(zoneName string, kind Kind, construction string, area float64, g *rowGroup, rpt *validation.Report) bool {
	if area != 0 {
		return true
	}
	rpt.AddWarning(validation.Result{
		Level: validation.LevelElement,
		Zone:  zoneName,
		Field: string(kind),
		Message: fmt.Sprintf("zone %q %s group with construction %q has aggregate area 0 and is dropped (rows %v)",
			zoneName, kind, construction, g.rowNumbers()),
	})
	return false
}

// resolveConstruction attaches catalog properties to a descriptor. A miss
// degrades to a nil reference plus a warning; the descriptor itself is
// still emitted so the geometry survives for inspection.
func resolveConstruction(zoneName string, d *Descriptor, opts Options, rpt *validation.Report) {
	if opts.Constructions == nil {
		return
	}
	el, err := opts.Constructions.TypeElement(d.Construction, opts.Year, opts.ArchetypeSpecial)
	if err != nil {
		rpt.AddWarning(validation.Result{
			Level:       validation.LevelElement,
			Zone:        zoneName,
			Field:       string(d.Kind),
			ActualValue: d.Construction,
			Message: fmt.Sprintf("in zone %q the %s construction %q could not be loaded from the construction catalog, "+
				"an error will occur due to missing data for calculation; check spelling and the combination of building age and construction type",
				zoneName, d.Kind, d.Construction),
		})
		return
	}
	d.Properties = el
}
