package tabular

import (
	"strconv"
	"strings"
)

// nullTokens are the spellings that source sheets use for "no value".
// Matching is exact after whitespace trimming.
var nullTokens = map[string]struct{}{
	"":    {},
	"N/a": {},
	"n/A": {},
	"N/A": {},
	"NAN": {},
	"nan": {},
	"na":  {},
	"Na":  {},
	"nA":  {},
	"NA":  {},
}

// Cell is a single normalized spreadsheet cell. A cell is either null or
// holds the trimmed source text; numeric interpretation happens on demand
// because some columns legitimately mix numbers and labels.
type Cell struct {
	Raw  string `json:"raw,omitempty" yaml:"raw,omitempty"`
	Null bool   `json:"null,omitempty" yaml:"null,omitempty"`
}

// NullCell returns the null cell.
func NullCell() Cell {
	return Cell{Null: true}
}

// NewCell normalizes raw source text into a Cell: leading/trailing
// whitespace is stripped and the known null-token spellings collapse to
// the null cell.
func NewCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if _, ok := nullTokens[trimmed]; ok {
		return NullCell()
	}
	return Cell{Raw: trimmed}
}

// NumCell returns a cell holding a numeric value.
func NumCell(v float64) Cell {
	return Cell{Raw: strconv.FormatFloat(v, 'f', -1, 64)}
}

// String returns the cell text, or "" for the null cell.
func (c Cell) String() string {
	if c.Null {
		return ""
	}
	return c.Raw
}

// Float parses the cell as a number. The second return is false for the
// null cell and for non-numeric text.
func (c Cell) Float() (float64, bool) {
	if c.Null {
		return 0, false
	}
	v, err := strconv.ParseFloat(c.Raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FloatOrZero parses the cell as a number, treating null and non-numeric
// text as 0. Area columns use this: an empty cell contributes no area.
func (c Cell) FloatOrZero() float64 {
	v, _ := c.Float()
	return v
}
