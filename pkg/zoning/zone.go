package zoning

import (
	"fmt"

	"github.com/Helarga/TEASER-1/pkg/catalog"
	"github.com/Helarga/TEASER-1/pkg/elements"
	"github.com/Helarga/TEASER-1/pkg/tabular"
	"github.com/Helarga/TEASER-1/pkg/validation"
)

// Zone is a thermally-lumped aggregation of all room clusters sharing a
// resolved usage. Net area and volume are fixed at creation; only element
// descriptors and AHU flow bounds are attached afterwards.
type Zone struct {
	// Name is the resolved catalog usage label.
	Name    string  `json:"name"`
	NetArea float64 `json:"net_area"`
	Volume  float64 `json:"volume"`

	Elements      []*elements.Descriptor `json:"elements"`
	UseConditions *catalog.UseConditions `json:"use_conditions,omitempty"`

	// ClusterIDs lists the member room clusters in first-seen order.
	ClusterIDs []string `json:"cluster_ids"`
}

// Options configures zoning and aggregation for one building.
type Options struct {
	// Year is the building's construction year for catalog lookups.
	Year int
	// Translation maps raw usage labels to catalog labels; nil selects
	// the default table.
	Translation UsageTranslation
	// Usages resolves boundary conditions per zone; a miss is fatal.
	Usages catalog.UsageCatalog
	// Constructions resolves element properties; nil skips resolution,
	// a miss degrades to a warning.
	Constructions catalog.ConstructionCatalog
	// ArchetypeSpecial prefers archetype-calibrated construction entries.
	ArchetypeSpecial bool
}

// Cluster runs the row-level zoning stages: adjacent-wall reclassification,
// cluster assignment, usage resolution and translation. Clusters without
// any usage row are dropped (with a warning already on the report); an
// unmapped usage label aborts with a hard fault.
func Cluster(records []tabular.RawRoomRecord, opts Options, rpt *validation.Report) ([]*RoomCluster, error) {
	translation := opts.Translation
	if translation == nil {
		translation = DefaultUsageTranslation()
	}

	records = ReclassifyAdjacentWalls(records)
	clusters := AssignClusters(records, rpt)

	kept := clusters[:0]
	for _, c := range clusters {
		usage, ok := ResolveUsage(c, rpt)
		if !ok {
			continue
		}
		mapped, err := translation.Translate(usage, c.ID)
		if err != nil {
			return nil, err
		}
		c.Usage = mapped
		kept = append(kept, c)
	}
	return kept, nil
}

// BuildZones merges clusters by resolved usage into zones, computes zone
// geometry and aggregates envelope elements. The volume is accumulated per
// room (net area times room height), not from the area sum and a single
// height, because room heights differ within a zone.
func BuildZones(clusters []*RoomCluster, opts Options, rpt *validation.Report) ([]*Zone, error) {
	var zones []*Zone
	index := make(map[string]*Zone)
	members := make(map[string][]tabular.RawRoomRecord)

	for _, c := range clusters {
		z, ok := index[c.Usage]
		if !ok {
			z = &Zone{Name: c.Usage}
			index[c.Usage] = z
			zones = append(zones, z)
		}
		z.ClusterIDs = append(z.ClusterIDs, c.ID)
		for _, rec := range c.Rows {
			z.NetArea += rec.NetArea
			z.Volume += rec.NetArea * rec.RoomHeight
			members[c.Usage] = append(members[c.Usage], rec)
		}
	}

	aggOpts := elements.Options{
		Year:             opts.Year,
		Constructions:    opts.Constructions,
		ArchetypeSpecial: opts.ArchetypeSpecial,
	}
	for _, z := range zones {
		if opts.Usages != nil {
			uc, err := opts.Usages.UseConditions(z.Name)
			if err != nil {
				return nil, fmt.Errorf("zone %q: %w", z.Name, err)
			}
			z.UseConditions = uc
		}
		z.Elements = elements.Aggregate(z.Name, members[z.Name], aggOpts, rpt)
	}
	return zones, nil
}

// Zones is the full zoning engine: rows in, zones out. It is the
// composition of Cluster and BuildZones.
func Zones(records []tabular.RawRoomRecord, opts Options, rpt *validation.Report) ([]*Zone, error) {
	clusters, err := Cluster(records, opts, rpt)
	if err != nil {
		return nil, err
	}
	return BuildZones(clusters, opts, rpt)
}
