package elements

import "github.com/Helarga/TEASER-1/pkg/tabular"

// rowGroup is the accumulator of one composite grouping key.
type rowGroup struct {
	key1 tabular.Cell
	key2 tabular.Cell
	rows []tabular.RawRoomRecord
}

// groupBy buckets rows by a composite cell key, in first-seen key order so
// that generated names and warnings are reproducible across runs. Rows
// where any key cell is null do not form a group; those rows simply have
// no element of the kind being aggregated.
func groupBy(rows []tabular.RawRoomRecord, key func(tabular.RawRoomRecord) (tabular.Cell, tabular.Cell)) []*rowGroup {
	var groups []*rowGroup
	index := make(map[[2]string]*rowGroup)

	for _, row := range rows {
		k1, k2 := key(row)
		if k1.Null || k2.Null {
			continue
		}
		mk := [2]string{k1.Raw, k2.Raw}
		g, ok := index[mk]
		if !ok {
			g = &rowGroup{key1: k1, key2: k2}
			index[mk] = g
			groups = append(groups, g)
		}
		g.rows = append(g.rows, row)
	}
	return groups
}

// sumArea totals one area column over the group's rows.
func (g *rowGroup) sumArea(area func(tabular.RawRoomRecord) float64) float64 {
	total := 0.0
	for _, row := range g.rows {
		total += area(row)
	}
	return total
}

// rowNumbers lists the source rows of the group for diagnostics.
func (g *rowGroup) rowNumbers() []int {
	nums := make([]int, len(g.rows))
	for i, row := range g.rows {
		nums[i] = row.Row
	}
	return nums
}
