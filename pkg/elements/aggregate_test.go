package elements

import (
	"math"
	"testing"

	"github.com/Helarga/TEASER-1/pkg/catalog"
	"github.com/Helarga/TEASER-1/pkg/tabular"
	"github.com/Helarga/TEASER-1/pkg/validation"
)

func wallRow(row int, orientation, area, construction string) tabular.RawRoomRecord {
	return tabular.RawRoomRecord{
		Row:                  row,
		OuterWallOrientation: tabular.NewCell(orientation),
		OuterWallArea:        tabular.NewCell(area),
		OuterWallConstr:      tabular.NewCell(construction),
	}
}

func findByName(t *testing.T, ds []*Descriptor, name string) *Descriptor {
	t.Helper()
	for _, d := range ds {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("no descriptor named %q in %v", name, ds)
	return nil
}

func TestOuterWallGroupingAndConservation(t *testing.T) {
	rows := []tabular.RawRoomRecord{
		wallRow(2, "0", "10", "Brick"),
		wallRow(3, "0", "5", "Brick"),
		wallRow(4, "90", "7", "Brick"),
		wallRow(5, "0", "3", "Concrete"),
	}
	rpt := validation.NewReport()
	ds := aggregateOriented("Office", rows, KindOuterWall, Options{}, rpt)

	if len(ds) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(ds))
	}

	north := findByName(t, ds, "outer_wall_0_Brick")
	if north.Area != 15 {
		t.Errorf("north brick area = %v, want 15", north.Area)
	}
	if north.Tilt != 90 || north.Orientation != 0 {
		t.Errorf("tilt/orientation = %v/%v, want 90/0", north.Tilt, north.Orientation)
	}

	// Area conservation: descriptor areas sum to the raw source sum.
	total := 0.0
	for _, d := range ds {
		total += d.Area
	}
	if math.Abs(total-25) > 1e-9 {
		t.Errorf("total descriptor area = %v, want 25", total)
	}

	// First-seen key order keeps names reproducible.
	if ds[0].Name != "outer_wall_0_Brick" || ds[1].Name != "outer_wall_90_Brick" {
		t.Errorf("unexpected order: %v, %v", ds[0].Name, ds[1].Name)
	}
}

func TestNonNumericOrientationSkipped(t *testing.T) {
	rows := []tabular.RawRoomRecord{
		wallRow(2, "North", "10", "Brick"),
		wallRow(3, "180", "4", "Brick"),
	}
	rpt := validation.NewReport()
	ds := aggregateOriented("Office", rows, KindOuterWall, Options{}, rpt)

	if len(ds) != 1 {
		t.Fatalf("expected 1 descriptor, got %d", len(ds))
	}
	if ds[0].Name != "outer_wall_180_Brick" {
		t.Errorf("kept descriptor = %q", ds[0].Name)
	}
	if len(rpt.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(rpt.Warnings))
	}
	if rpt.Warnings[0].Zone != "Office" || rpt.Warnings[0].Field != "OuterWallOrientation" {
		t.Errorf("warning context = %+v", rpt.Warnings[0])
	}
}

func TestZeroAreaGroupSuppressed(t *testing.T) {
	rows := []tabular.RawRoomRecord{
		wallRow(2, "0", "0", "Brick"), // stray construction label on zero-area row
	}
	rpt := validation.NewReport()
	ds := aggregateOriented("Office", rows, KindOuterWall, Options{}, rpt)

	if len(ds) != 0 {
		t.Fatalf("expected no descriptors, got %d", len(ds))
	}
	if len(rpt.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(rpt.Warnings))
	}
}

func TestFloorHalvingAndGroundFloorFullArea(t *testing.T) {
	rows := []tabular.RawRoomRecord{
		{Row: 2, NetArea: 20, IsGroundFloor: tabular.NewCell("1"), FloorConstr: tabular.NewCell("Slab")},
		{Row: 3, NetArea: 12, IsGroundFloor: tabular.NewCell("0"), FloorConstr: tabular.NewCell("Slab")},
		{Row: 4, NetArea: 8, IsGroundFloor: tabular.NewCell("0"), FloorConstr: tabular.NewCell("Slab")},
	}
	rpt := validation.NewReport()
	ds := aggregateFlagged("Office", rows, KindGroundFloor, Options{}, rpt)

	ground := findByName(t, ds, "ground_floorSlab")
	if ground.Area != 20 {
		t.Errorf("ground floor area = %v, want full 20", ground.Area)
	}
	if ground.Orientation != OrientationGroundFloor {
		t.Errorf("ground floor orientation = %v, want %v", ground.Orientation, OrientationGroundFloor)
	}

	floor := findByName(t, ds, "floorSlab")
	if floor.Area != 10 {
		t.Errorf("floor area = %v, want half of 20", floor.Area)
	}
}

func TestCeilingHalvingAndRooftopFullArea(t *testing.T) {
	rows := []tabular.RawRoomRecord{
		{Row: 2, NetArea: 30, IsRooftop: tabular.NewCell("1"), CeilingConstr: tabular.NewCell("Deck")},
		{Row: 3, NetArea: 16, IsRooftop: tabular.NewCell("0"), CeilingConstr: tabular.NewCell("Deck")},
	}
	rpt := validation.NewReport()
	ds := aggregateFlagged("Office", rows, KindRooftop, Options{}, rpt)

	roof := findByName(t, ds, "rooftopDeck")
	if roof.Area != 30 {
		t.Errorf("rooftop area = %v, want full 30", roof.Area)
	}
	if roof.Orientation != OrientationRooftop || roof.Tilt != TiltRooftop {
		t.Errorf("rooftop orientation/tilt = %v/%v", roof.Orientation, roof.Tilt)
	}

	ceiling := findByName(t, ds, "ceilingDeck")
	if ceiling.Area != 8 {
		t.Errorf("ceiling area = %v, want half of 16", ceiling.Area)
	}
}

func TestInvalidFlagSkipped(t *testing.T) {
	rows := []tabular.RawRoomRecord{
		{Row: 2, NetArea: 10, IsGroundFloor: tabular.NewCell("2"), FloorConstr: tabular.NewCell("Slab")},
	}
	rpt := validation.NewReport()
	ds := aggregateFlagged("Office", rows, KindGroundFloor, Options{}, rpt)

	if len(ds) != 0 {
		t.Fatalf("expected no descriptors, got %d", len(ds))
	}
	if len(rpt.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(rpt.Warnings))
	}
	if rpt.Warnings[0].Expected != "0 or 1" {
		t.Errorf("warning expected-field = %q", rpt.Warnings[0].Expected)
	}
}

func TestInnerWallHalving(t *testing.T) {
	rows := []tabular.RawRoomRecord{
		{Row: 2, InnerWallArea: tabular.NewCell("14"), InnerWallConstr: tabular.NewCell("Drywall")},
		{Row: 3, InnerWallArea: tabular.NewCell("6"), InnerWallConstr: tabular.NewCell("Drywall")},
	}
	rpt := validation.NewReport()
	ds := aggregateInnerWalls("Office", rows, Options{}, rpt)

	if len(ds) != 1 {
		t.Fatalf("expected 1 descriptor, got %d", len(ds))
	}
	if ds[0].Area != 10 {
		t.Errorf("inner wall area = %v, want half of 20", ds[0].Area)
	}
	if ds[0].Name != "inner_wallDrywall" {
		t.Errorf("name = %q", ds[0].Name)
	}
}

// missCatalog is a ConstructionCatalog that never matches.
type missCatalog struct{}

func (missCatalog) TypeElement(construction string, year int, special bool) (*catalog.TypeElement, error) {
	return nil, &catalog.LookupMissError{Catalog: "construction", Key: construction, Year: year}
}

func TestConstructionMissYieldsNilPropertiesAndWarning(t *testing.T) {
	rows := []tabular.RawRoomRecord{wallRow(2, "0", "10", "Mystery")}
	rpt := validation.NewReport()
	cat := missCatalog{}
	ds := aggregateOriented("Office", rows, KindOuterWall, Options{Year: 2000, Constructions: cat}, rpt)

	if len(ds) != 1 {
		t.Fatalf("expected 1 descriptor, got %d", len(ds))
	}
	if ds[0].Properties != nil {
		t.Error("properties should be nil on catalog miss")
	}
	if len(rpt.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(rpt.Warnings))
	}
}
