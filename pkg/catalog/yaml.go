package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StaticUsageCatalog is an in-memory UsageCatalog keyed by usage label.
type StaticUsageCatalog struct {
	entries map[string]*UseConditions
}

// NewUsageCatalog builds a catalog from a list of entries.
func NewUsageCatalog(entries []*UseConditions) *StaticUsageCatalog {
	m := make(map[string]*UseConditions, len(entries))
	for _, e := range entries {
		m[e.Usage] = e
	}
	return &StaticUsageCatalog{entries: m}
}

// LoadUsageCatalog reads a usage catalog from a YAML file holding a list
// of use-condition entries.
func LoadUsageCatalog(path string) (*StaticUsageCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading usage catalog: %w", err)
	}
	var entries []*UseConditions
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing usage catalog YAML: %w", err)
	}
	return NewUsageCatalog(entries), nil
}

// UseConditions returns a clone of the entry for the given usage label.
func (c *StaticUsageCatalog) UseConditions(usage string) (*UseConditions, error) {
	e, ok := c.entries[usage]
	if !ok {
		return nil, &LookupMissError{Catalog: "usage", Key: usage}
	}
	return e.Clone(), nil
}

// StaticConstructionCatalog is an in-memory ConstructionCatalog.
type StaticConstructionCatalog struct {
	entries []*TypeElement
}

// NewConstructionCatalog builds a catalog from a list of type elements.
func NewConstructionCatalog(entries []*TypeElement) *StaticConstructionCatalog {
	return &StaticConstructionCatalog{entries: entries}
}

// LoadConstructionCatalog reads a construction catalog from a YAML file
// holding a list of type-element entries.
func LoadConstructionCatalog(path string) (*StaticConstructionCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading construction catalog: %w", err)
	}
	var entries []*TypeElement
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing construction catalog YAML: %w", err)
	}
	return NewConstructionCatalog(entries), nil
}

// TypeElement returns the first entry matching the construction label whose
// year range covers the given year. When archetypeSpecial is set, special
// entries are preferred but the lookup falls back to the regular set, since
// archetype data files often cover only part of the element kinds.
func (c *StaticConstructionCatalog) TypeElement(construction string, year int, archetypeSpecial bool) (*TypeElement, error) {
	if archetypeSpecial {
		if e := c.match(construction, year, true); e != nil {
			return e, nil
		}
	}
	if e := c.match(construction, year, false); e != nil {
		return e, nil
	}
	return nil, &LookupMissError{Catalog: "construction", Key: construction, Year: year}
}

func (c *StaticConstructionCatalog) match(construction string, year int, special bool) *TypeElement {
	for _, e := range c.entries {
		if e.Construction != construction || e.ArchetypeSpecial != special {
			continue
		}
		if year < e.YearFrom || (e.YearTo != 0 && year > e.YearTo) {
			continue
		}
		return e
	}
	return nil
}
