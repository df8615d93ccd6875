package archetype

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Helarga/TEASER-1/pkg/validation"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewRejectsInvalidEnums(t *testing.T) {
	if _, err := New(Params{FloorArea: 1000, FloorCount: 2, Layout: 4}, DefaultFactors()); err == nil {
		t.Error("layout 4 must be rejected")
	}
	if _, err := New(Params{FloorArea: 1000, FloorCount: 2, Layout: -1}, DefaultFactors()); err == nil {
		t.Error("layout -1 must be rejected")
	}
	if _, err := New(Params{FloorArea: 1000, FloorCount: 2, Construction: "medium"}, DefaultFactors()); err == nil {
		t.Error("construction 'medium' must be rejected")
	}
	if _, err := New(Params{FloorArea: 1000, FloorCount: 0}, DefaultFactors()); err == nil {
		t.Error("floor count 0 must be rejected")
	}
	if _, err := New(Params{FloorArea: 0, FloorCount: 2}, DefaultFactors()); err == nil {
		t.Error("floor area 0 must be rejected")
	}
}

func TestNewDefaultsConstructionToHeavy(t *testing.T) {
	e, err := New(Params{FloorArea: 1000, FloorCount: 2}, DefaultFactors())
	if err != nil {
		t.Fatal(err)
	}
	if e.Params().Construction != ConstructionHeavy {
		t.Errorf("construction = %q, want heavy", e.Params().Construction)
	}
}

func TestEstimatePowerLaws(t *testing.T) {
	f := DefaultFactors()
	e, err := New(Params{FloorArea: 1000, FloorCount: 2, Layout: LayoutGeneric}, f)
	if err != nil {
		t.Fatal(err)
	}
	est := e.Estimate()

	wantWall := f.WallFactor * math.Pow(1000, f.WallExponent)
	wantWin := f.WinFactor * math.Pow(1000, f.WinExponent)
	if !almostEqual(est.WallArea, wantWall, 1e-9) {
		t.Errorf("wall area = %v, want %v", est.WallArea, wantWall)
	}
	if !almostEqual(est.WindowArea, wantWin, 1e-9) {
		t.Errorf("window area = %v, want %v", est.WindowArea, wantWin)
	}
	if !almostEqual(est.FacadeArea, wantWall+wantWin, 1e-9) {
		t.Errorf("facade area = %v, want %v", est.FacadeArea, wantWall+wantWin)
	}

	wantFootprint := 1000.0 / 2 * f.GrossFactor
	if !almostEqual(est.RoofArea, wantFootprint, 1e-9) || !almostEqual(est.FloorArea, wantFootprint, 1e-9) {
		t.Errorf("roof/floor = %v/%v, want %v", est.RoofArea, est.FloorArea, wantFootprint)
	}
}

func TestEstimateLayoutRedistribution(t *testing.T) {
	f := DefaultFactors()
	cases := []struct {
		layout FacadeLayout
		wall   float64
		win    float64
	}{
		{LayoutPunctuated, 0.75, 0.25},
		{LayoutBanner, 0.5, 0.5},
		{LayoutFullGlazing, 0.1, 0.9},
	}
	for _, tc := range cases {
		e, err := New(Params{FloorArea: 1000, FloorCount: 2, Layout: tc.layout}, f)
		if err != nil {
			t.Fatal(err)
		}
		est := e.Estimate()
		if !almostEqual(est.WallArea, est.FacadeArea*tc.wall, 1e-9) {
			t.Errorf("layout %d: wall = %v, want %v of facade", tc.layout, est.WallArea, tc.wall)
		}
		if !almostEqual(est.WindowArea, est.FacadeArea*tc.win, 1e-9) {
			t.Errorf("layout %d: window = %v, want %v of facade", tc.layout, est.WindowArea, tc.win)
		}
	}
}

func TestEstimateFootprintWidth(t *testing.T) {
	f := DefaultFactors()
	footprint := 1000.0 / 2 * f.GrossFactor

	for _, tc := range []struct {
		layout FacadeLayout
		width  float64
	}{
		{LayoutGeneric, 13.0},
		{LayoutPunctuated, 13.0},
		{LayoutBanner, 15.0},
		{LayoutFullGlazing, math.Sqrt(footprint)},
	} {
		e, err := New(Params{FloorArea: 1000, FloorCount: 2, Layout: tc.layout}, f)
		if err != nil {
			t.Fatal(err)
		}
		est := e.Estimate()
		if !almostEqual(est.Width, tc.width, 1e-9) {
			t.Errorf("layout %d: width = %v, want %v", tc.layout, est.Width, tc.width)
		}
		if !almostEqual(est.Length, footprint/tc.width, 1e-9) {
			t.Errorf("layout %d: length = %v, want %v", tc.layout, est.Length, footprint/tc.width)
		}
	}
}

func TestOrientationSharesSumToTotal(t *testing.T) {
	e, err := New(Params{FloorArea: 2500, FloorCount: 3, Layout: LayoutPunctuated}, DefaultFactors())
	if err != nil {
		t.Fatal(err)
	}
	est := e.Estimate()

	wallSum, winSum := 0.0, 0.0
	for _, o := range est.Orientations {
		wallSum += o.WallArea
		winSum += o.WindowArea
	}
	if !almostEqual(wallSum, est.WallArea, 1e-6) {
		t.Errorf("orientation wall sum = %v, want %v", wallSum, est.WallArea)
	}
	if !almostEqual(winSum, est.WindowArea, 1e-6) {
		t.Errorf("orientation window sum = %v, want %v", winSum, est.WindowArea)
	}

	// North/south use the length share, east/west the width share.
	perimeter := 2 * (est.Width + est.Length)
	if !almostEqual(est.Orientations[0].WallArea, est.WallArea*est.Length/perimeter, 1e-9) {
		t.Error("north wall share should use length/perimeter")
	}
	if !almostEqual(est.Orientations[1].WallArea, est.WallArea*est.Width/perimeter, 1e-9) {
		t.Error("east wall share should use width/perimeter")
	}
	if est.Orientations[0].WallArea != est.Orientations[2].WallArea {
		t.Error("north and south shares must match")
	}
	if est.Orientations[1].WallArea != est.Orientations[3].WallArea {
		t.Error("east and west shares must match")
	}
}

func TestLoadFactorsYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "factors.yaml")
	doc := "wall_factor: 0.5\nwall_exponent: 1.0\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFactors(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.WallFactor != 0.5 || f.WallExponent != 1.0 {
		t.Errorf("overridden factors = %v/%v", f.WallFactor, f.WallExponent)
	}
	// Unspecified fields keep the default calibration.
	if f.GrossFactor != 1.15 {
		t.Errorf("gross factor = %v, want default 1.15", f.GrossFactor)
	}
}

func TestBuildZonesSkipsTinyVolumes(t *testing.T) {
	entries := []ZoneEntry{
		{Name: "Foyer", Area: 100, Volume: 300, Usage: "Foyer"},
		{Name: "Shaft", Area: 2, Volume: 0.5, Usage: "Foyer"},
	}
	rpt := validation.NewReport()
	zones, err := BuildZones(entries, nil, rpt)
	if err != nil {
		t.Fatal(err)
	}
	if len(zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zones))
	}
	if zones[0].Name != "Foyer" {
		t.Errorf("zone = %q", zones[0].Name)
	}
	if len(rpt.Info) != 1 {
		t.Errorf("expected 1 info entry for the skipped zone, got %d", len(rpt.Info))
	}
}

func TestAttachDistributesByZoneAreaShare(t *testing.T) {
	e, err := New(Params{FloorArea: 1000, FloorCount: 2, Layout: LayoutGeneric}, DefaultFactors())
	if err != nil {
		t.Fatal(err)
	}
	est := e.Estimate()

	rpt := validation.NewReport()
	zones, err := BuildZones([]ZoneEntry{
		{Name: "Hall", Area: 750, Volume: 3000, Usage: "Gym"},
		{Name: "Foyer", Area: 250, Volume: 800, Usage: "Foyer"},
	}, nil, rpt)
	if err != nil {
		t.Fatal(err)
	}

	est.Attach(zones, AttachOptions{Construction: ConstructionHeavy}, rpt)

	// 4 walls + 4 windows + rooftop + ground floor per zone.
	for _, z := range zones {
		if len(z.Elements) != 10 {
			t.Errorf("zone %q has %d elements, want 10", z.Name, len(z.Elements))
		}
	}

	// The walls of both zones together make up the estimated total.
	total := 0.0
	for _, z := range zones {
		for _, d := range z.Elements {
			if d.Kind == "outer_wall" {
				total += d.Area
			}
		}
	}
	if !almostEqual(total, est.WallArea, 1e-6) {
		t.Errorf("summed wall area = %v, want %v", total, est.WallArea)
	}

	// Hall owns three quarters of the envelope.
	hallRoof := 0.0
	for _, d := range zones[0].Elements {
		if d.Kind == "rooftop" {
			hallRoof = d.Area
		}
	}
	if !almostEqual(hallRoof, est.RoofArea*0.75, 1e-9) {
		t.Errorf("hall roof = %v, want %v", hallRoof, est.RoofArea*0.75)
	}
}
