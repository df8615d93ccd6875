// Package zoning groups raw room rows into room clusters and thermal
// zones. Rows sharing an identifier relation collapse to one cluster; all
// clusters sharing a resolved usage merge into a single zone.
package zoning

import (
	"fmt"

	"github.com/Helarga/TEASER-1/pkg/tabular"
	"github.com/Helarga/TEASER-1/pkg/validation"
)

// RoomCluster is a set of rows unified by the identifier relation: the
// declaring row plus any additional-orientation rows pointing at it.
type RoomCluster struct {
	ID   string
	Rows []tabular.RawRoomRecord

	// Usage is the resolved catalog usage label; empty until resolution.
	Usage string
}

// ReclassifyAdjacentWalls folds outer-wall and window surfaces of rows
// flagged "wall adjacent to" into the row's inner-wall area and clears the
// outer-facing fields. A surface adjacent to another conditioned zone
// behaves thermally like an inner wall.
//
// The added area keeps the regular inner-wall construction of the row; the
// outer construction label is dropped.
func ReclassifyAdjacentWalls(records []tabular.RawRoomRecord) []tabular.RawRoomRecord {
	for i := range records {
		rec := &records[i]
		if rec.WallAdjacentTo.Null {
			continue
		}

		total := rec.OuterWallArea.FloatOrZero() +
			rec.WindowArea.FloatOrZero() +
			rec.InnerWallArea.FloatOrZero()
		rec.InnerWallArea = tabular.NumCell(total)

		rec.OuterWallOrientation = tabular.NullCell()
		rec.OuterWallArea = tabular.NullCell()
		rec.OuterWallConstr = tabular.NullCell()
		rec.WindowOrientation = tabular.NullCell()
		rec.WindowArea = tabular.NullCell()
		rec.WindowConstr = tabular.NullCell()
	}
	return records
}

// ClusterID returns the cluster a row belongs to: the belongs-to
// identifier when present, else the row's own identifier.
func ClusterID(rec tabular.RawRoomRecord) string {
	if !rec.BelongsTo.Null {
		return rec.BelongsTo.String()
	}
	return rec.RoomIdentifier
}

// AssignClusters buckets rows into room clusters in first-seen order and
// validates row-level consistency: a zero-net-area row still carrying a
// usage label is almost always a second-orientation row with a stray
// usage entry.
func AssignClusters(records []tabular.RawRoomRecord, rpt *validation.Report) []*RoomCluster {
	for _, rec := range records {
		if rec.NetArea == 0 && !rec.UsageType.Null {
			rpt.AddWarning(validation.Result{
				Level:       validation.LevelZoning,
				Row:         rec.Row,
				Field:       "UsageType",
				ActualValue: rec.UsageType.Raw,
				Message: fmt.Sprintf("row %d has net area zero, marking a second wall or window element for the room, "+
					"but still states usage type %q which is wrong and should be changed in the file",
					rec.Row, rec.UsageType.Raw),
			})
		}
	}

	var clusters []*RoomCluster
	index := make(map[string]*RoomCluster)
	for _, rec := range records {
		id := ClusterID(rec)
		c, ok := index[id]
		if !ok {
			c = &RoomCluster{ID: id}
			index[id] = c
			clusters = append(clusters, c)
		}
		c.Rows = append(c.Rows, rec)
	}
	return clusters
}

// ResolveUsage determines the cluster's main usage: the row with a blank
// belongs-to identifier and a non-blank usage type. Zero or multiple such
// rows is a data-quality fault; the last usage seen wins and processing
// continues. The second return is false when no usage row exists at all.
func ResolveUsage(c *RoomCluster, rpt *validation.Report) (string, bool) {
	usage := ""
	count := 0
	for _, rec := range c.Rows {
		if rec.BelongsTo.Null && !rec.UsageType.Null {
			usage = rec.UsageType.String()
			count++
		}
	}
	if count != 1 {
		rpt.AddWarning(validation.Result{
			Level:       validation.LevelZoning,
			Field:       "UsageType",
			ActualValue: count,
			Expected:    "exactly one main usage row per cluster",
			Message: fmt.Sprintf("cluster %q has %d main usage rows instead of one, check the source file for mistakes; "+
				"common mistakes: net area of a wall row is not 0, usage type of a wall row is not empty (rows %v)",
				c.ID, count, clusterRows(c)),
			Suggestions: []string{
				"every row with an empty usage type marks another orientation of an already declared room",
				"the room relation is made by a RoomIdentifier equal to the BelongsToIdentifier of the extra row",
			},
		})
	}
	return usage, count > 0
}

func clusterRows(c *RoomCluster) []int {
	rows := make([]int, len(c.Rows))
	for i, rec := range c.Rows {
		rows[i] = rec.Row
	}
	return rows
}
