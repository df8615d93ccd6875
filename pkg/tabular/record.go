// Package tabular holds the normalized row-level view of the building data
// sheet. Every row is either a new room or an additional orientation of a
// room declared on an earlier row; the relation is carried by the
// belongs-to identifier.
package tabular

// RawRoomRecord is one normalized sheet row.
//
// Orientation columns may carry stray text in faulty sheets, ground/rooftop
// flags may carry values other than 0/1, and construction columns may be
// blank; all of those stay Cells so downstream stages can report them
// instead of failing the parse.
type RawRoomRecord struct {
	// Row is the source row number used in diagnostics.
	Row int `json:"row" yaml:"row"`

	RoomIdentifier string `json:"room_identifier" yaml:"room_identifier"`
	BelongsTo      Cell   `json:"belongs_to" yaml:"belongs_to"`
	UsageType      Cell   `json:"usage_type" yaml:"usage_type"`

	NetArea    float64 `json:"net_area" yaml:"net_area"`
	RoomHeight float64 `json:"room_height" yaml:"room_height"`

	OuterWallOrientation Cell `json:"outer_wall_orientation" yaml:"outer_wall_orientation"`
	OuterWallArea        Cell `json:"outer_wall_area" yaml:"outer_wall_area"`
	OuterWallConstr      Cell `json:"outer_wall_construction" yaml:"outer_wall_construction"`

	WindowOrientation Cell `json:"window_orientation" yaml:"window_orientation"`
	WindowArea        Cell `json:"window_area" yaml:"window_area"`
	WindowConstr      Cell `json:"window_construction" yaml:"window_construction"`

	IsGroundFloor Cell `json:"is_ground_floor" yaml:"is_ground_floor"`
	FloorConstr   Cell `json:"floor_construction" yaml:"floor_construction"`

	IsRooftop     Cell `json:"is_rooftop" yaml:"is_rooftop"`
	CeilingConstr Cell `json:"ceiling_construction" yaml:"ceiling_construction"`

	InnerWallArea  Cell `json:"inner_wall_area" yaml:"inner_wall_area"`
	InnerWallConstr Cell `json:"inner_wall_construction" yaml:"inner_wall_construction"`

	WallAdjacentTo Cell `json:"wall_adjacent_to" yaml:"wall_adjacent_to"`
}

// Columns are the logical column names of the source sheet. Readers hand
// rows over as name→text maps; columns beyond this set are ignored.
const (
	ColRoomIdentifier       = "RoomIdentifier"
	ColBelongsToIdentifier  = "BelongsToIdentifier"
	ColUsageType            = "UsageType"
	ColNetArea              = "NetArea"
	ColRoomHeight           = "HeatedRoomHeight"
	ColOuterWallOrientation = "OuterWallOrientation"
	ColOuterWallArea        = "OuterWallArea"
	ColOuterWallConstr      = "OuterWallConstruction"
	ColWindowOrientation    = "WindowOrientation"
	ColWindowArea           = "WindowArea"
	ColWindowConstr         = "WindowConstruction"
	ColIsGroundFloor        = "IsGroundFloor"
	ColFloorConstr          = "FloorConstruction"
	ColIsRooftop            = "IsRooftop"
	ColCeilingConstr        = "CeilingConstruction"
	ColInnerWallArea        = "InnerWallArea"
	ColInnerWallConstr      = "InnerWallConstruction"
	ColWallAdjacentTo       = "WallAdjacentTo"
)

// FromColumns builds a normalized record from one row of logically named
// columns. Every string cell is trimmed and null-token spellings collapse
// to the null cell before any typed interpretation.
func FromColumns(row int, cols map[string]string) RawRoomRecord {
	cell := func(name string) Cell { return NewCell(cols[name]) }

	return RawRoomRecord{
		Row:                  row,
		RoomIdentifier:       cell(ColRoomIdentifier).String(),
		BelongsTo:            cell(ColBelongsToIdentifier),
		UsageType:            cell(ColUsageType),
		NetArea:              cell(ColNetArea).FloatOrZero(),
		RoomHeight:           cell(ColRoomHeight).FloatOrZero(),
		OuterWallOrientation: cell(ColOuterWallOrientation),
		OuterWallArea:        cell(ColOuterWallArea),
		OuterWallConstr:      cell(ColOuterWallConstr),
		WindowOrientation:    cell(ColWindowOrientation),
		WindowArea:           cell(ColWindowArea),
		WindowConstr:         cell(ColWindowConstr),
		IsGroundFloor:        cell(ColIsGroundFloor),
		FloorConstr:          cell(ColFloorConstr),
		IsRooftop:            cell(ColIsRooftop),
		CeilingConstr:        cell(ColCeilingConstr),
		InnerWallArea:        cell(ColInnerWallArea),
		InnerWallConstr:      cell(ColInnerWallConstr),
		WallAdjacentTo:       cell(ColWallAdjacentTo),
	}
}

// PresentValues returns the distinct non-null values of one cell across
// rows, in first-seen order.
func PresentValues(records []RawRoomRecord, get func(RawRoomRecord) Cell) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, rec := range records {
		c := get(rec)
		if c.Null {
			continue
		}
		if _, ok := seen[c.Raw]; ok {
			continue
		}
		seen[c.Raw] = struct{}{}
		out = append(out, c.Raw)
	}
	return out
}
