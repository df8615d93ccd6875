// Package elements aggregates per-room envelope surfaces into one
// descriptor per (orientation, construction) group of a zone.
package elements

import (
	"fmt"

	"github.com/Helarga/TEASER-1/pkg/catalog"
)

// Kind identifies the envelope element kind.
type Kind string

const (
	KindOuterWall   Kind = "outer_wall"
	KindWindow      Kind = "window"
	KindGroundFloor Kind = "ground_floor"
	KindFloor       Kind = "floor"
	KindRooftop     Kind = "rooftop"
	KindCeiling     Kind = "ceiling"
	KindInnerWall   Kind = "inner_wall"
)

// Orientations are clockwise in degrees, 0° is north. Non-oriented
// elements carry fixed sentinel values.
const (
	OrientationGroundFloor = -2.0
	OrientationFloor       = -2.0
	OrientationRooftop     = -1.0
	OrientationCeiling     = -1.0
)

// Tilts are fixed per element kind. Rooftops are modeled flat.
const (
	TiltWall        = 90.0
	TiltWindow      = 90.0
	TiltGroundFloor = 0.0
	TiltFloor       = 0.0
	TiltRooftop     = 0.0
	TiltCeiling     = 0.0
)

// Descriptor is one aggregated envelope element of a zone.
type Descriptor struct {
	Kind         Kind    `json:"kind"`
	Name         string  `json:"name"`
	Orientation  float64 `json:"orientation"`
	Tilt         float64 `json:"tilt"`
	Area         float64 `json:"area"`
	Construction string  `json:"construction"`

	// Properties is nil when the construction catalog had no match; the
	// aggregation report then carries a warning naming this element.
	Properties *catalog.TypeElement `json:"properties,omitempty"`
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s (area %.2f m², orientation %g)", d.Name, d.Area, d.Orientation)
}
