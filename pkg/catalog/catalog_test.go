package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testUsageEntries() []*UseConditions {
	return []*UseConditions{
		{
			Usage:           "Meeting, Conference, seminar",
			HeatingProfile:  []float64{293, 293, 293},
			CoolingProfile:  []float64{299, 299, 299},
			PersonsProfile:  []float64{0, 0.5, 1},
			MachinesProfile: []float64{0, 0.5, 1},
			LightingProfile: []float64{0, 1, 1},
		},
	}
}

func TestUsageCatalogHit(t *testing.T) {
	cat := NewUsageCatalog(testUsageEntries())
	uc, err := cat.UseConditions("Meeting, Conference, seminar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uc.HeatingProfile[0] != 293 {
		t.Errorf("HeatingProfile[0] = %v, want 293", uc.HeatingProfile[0])
	}
}

func TestUsageCatalogMiss(t *testing.T) {
	cat := NewUsageCatalog(testUsageEntries())
	_, err := cat.UseConditions("Ballroom")
	var miss *LookupMissError
	if !errors.As(err, &miss) {
		t.Fatalf("expected LookupMissError, got %v", err)
	}
	if miss.Catalog != "usage" || miss.Key != "Ballroom" {
		t.Errorf("unexpected miss detail: %+v", miss)
	}
}

func TestUsageCatalogHandsOutClones(t *testing.T) {
	cat := NewUsageCatalog(testUsageEntries())
	first, _ := cat.UseConditions("Meeting, Conference, seminar")
	first.MachinesProfile[0] = 42

	second, _ := cat.UseConditions("Meeting, Conference, seminar")
	if second.MachinesProfile[0] == 42 {
		t.Error("catalog entry was mutated through a lookup result")
	}
}

func testConstructionEntries() []*TypeElement {
	return []*TypeElement{
		{Construction: "Brick", YearFrom: 1950, YearTo: 2010, UValue: 1.2},
		{Construction: "Brick", YearFrom: 2011, UValue: 0.8},
		{Construction: "Brick", YearFrom: 1950, UValue: 0.6, ArchetypeSpecial: true},
	}
}

func TestConstructionCatalogYearRange(t *testing.T) {
	cat := NewConstructionCatalog(testConstructionEntries())

	old, err := cat.TypeElement("Brick", 2000, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if old.UValue != 1.2 {
		t.Errorf("UValue = %v, want 1.2", old.UValue)
	}

	recent, err := cat.TypeElement("Brick", 2020, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recent.UValue != 0.8 {
		t.Errorf("UValue = %v, want 0.8", recent.UValue)
	}
}

func TestConstructionCatalogSpecialPreferredWithFallback(t *testing.T) {
	cat := NewConstructionCatalog(testConstructionEntries())

	special, err := cat.TypeElement("Brick", 2000, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if special.UValue != 0.6 {
		t.Errorf("UValue = %v, want special entry 0.6", special.UValue)
	}

	// No special entry for Concrete: the lookup must fall back.
	cat = NewConstructionCatalog([]*TypeElement{
		{Construction: "Concrete", YearFrom: 1900, UValue: 2.0},
	})
	fallback, err := cat.TypeElement("Concrete", 2000, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fallback.UValue != 2.0 {
		t.Errorf("UValue = %v, want fallback 2.0", fallback.UValue)
	}
}

func TestConstructionCatalogMiss(t *testing.T) {
	cat := NewConstructionCatalog(testConstructionEntries())
	_, err := cat.TypeElement("Straw", 2000, false)
	var miss *LookupMissError
	if !errors.As(err, &miss) {
		t.Fatalf("expected LookupMissError, got %v", err)
	}
}

func TestLoadUsageCatalogYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "usages.yaml")
	doc := `
- usage: Living
  heating_profile: [290, 291]
  cooling_profile: [299, 299]
  persons_profile: [0, 1]
  machines_profile: [0, 1]
  lighting_profile: [0, 1]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadUsageCatalog(path)
	if err != nil {
		t.Fatalf("LoadUsageCatalog: %v", err)
	}
	uc, err := cat.UseConditions("Living")
	if err != nil {
		t.Fatalf("UseConditions: %v", err)
	}
	if uc.HeatingProfile[1] != 291 {
		t.Errorf("HeatingProfile[1] = %v, want 291", uc.HeatingProfile[1])
	}
}
