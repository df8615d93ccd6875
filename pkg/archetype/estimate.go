package archetype

import (
	"fmt"
	"math"
)

// Params describe one archetype building for estimation. Enum values are
// validated at construction; computation never sees an invalid set.
type Params struct {
	// FloorArea is the total usable (net leased) floor area in m².
	FloorArea float64
	// FloorCount is the number of floors above ground.
	FloorCount int
	Layout     FacadeLayout
	// Construction defaults to heavy when empty.
	Construction ConstructionType
}

// Estimator computes statistical envelope areas for a validated parameter
// set. Immutable after construction.
type Estimator struct {
	params  Params
	factors Factors
}

// New validates the parameter enums and builds an estimator. An
// out-of-range layout or construction type is a hard fault before any
// computation proceeds.
func New(p Params, f Factors) (*Estimator, error) {
	if p.Construction == "" {
		p.Construction = ConstructionHeavy
	}
	if p.FloorArea <= 0 {
		return nil, fmt.Errorf("floor area has to be positive, got %g", p.FloorArea)
	}
	if p.FloorCount < 1 {
		return nil, fmt.Errorf("floor count has to be at least 1, got %d", p.FloorCount)
	}
	if err := validLayout(p.Layout); err != nil {
		return nil, err
	}
	if err := validConstruction(p.Construction); err != nil {
		return nil, err
	}
	return &Estimator{params: p, factors: f}, nil
}

// Params returns the validated parameter set.
func (e *Estimator) Params() Params { return e.params }

// OrientedArea is the wall and window share of one cardinal direction.
type OrientedArea struct {
	Orientation float64 `json:"orientation"`
	WallArea    float64 `json:"wall_area"`
	WindowArea  float64 `json:"window_area"`
}

// Estimate holds the derived envelope geometry.
type Estimate struct {
	WallArea   float64 `json:"wall_area"`
	WindowArea float64 `json:"window_area"`
	FacadeArea float64 `json:"facade_area"`
	RoofArea   float64 `json:"roof_area"`
	FloorArea  float64 `json:"floor_area"`

	// Width and Length estimate the building footprint.
	Width  float64 `json:"width"`
	Length float64 `json:"length"`

	// Orientations distributes wall and window area over the four
	// cardinal directions by perimeter share, clockwise from north.
	Orientations [4]OrientedArea `json:"orientations"`
}

// Estimate derives envelope areas from the statistical correlations.
//
// Wall and window areas follow power laws over the floor area; the
// combined facade is redistributed by the layout's correction pair for
// non-generic layouts. Roof and floor equal the gross footprint. The
// orientation split assigns each direction the perimeter share of its
// side: north/south the length, east/west the width.
func (e *Estimator) Estimate() Estimate {
	p, f := e.params, e.factors

	wall := f.WallFactor * math.Pow(p.FloorArea, f.WallExponent)
	win := f.WinFactor * math.Pow(p.FloorArea, f.WinExponent)
	facade := wall + win

	if p.Layout != LayoutGeneric {
		corr := corrFactors[p.Layout]
		wall = facade * corr[0]
		win = facade * corr[1]
	}

	footprint := p.FloorArea / float64(p.FloorCount) * f.GrossFactor

	var width float64
	switch p.Layout {
	case LayoutGeneric, LayoutPunctuated:
		width = f.WidthElongated
	case LayoutBanner:
		width = f.WidthBanner
	case LayoutFullGlazing:
		width = math.Sqrt(footprint)
	}
	length := footprint / width

	perimeter := 2 * (width + length)
	lengthShare := length / perimeter
	widthShare := width / perimeter

	est := Estimate{
		WallArea:   wall,
		WindowArea: win,
		FacadeArea: facade,
		RoofArea:   footprint,
		FloorArea:  footprint,
		Width:      width,
		Length:     length,
	}
	for i, o := range [4]float64{0, 90, 180, 270} {
		share := lengthShare
		if o == 90 || o == 270 {
			share = widthShare
		}
		est.Orientations[i] = OrientedArea{
			Orientation: o,
			WallArea:    wall * share,
			WindowArea:  win * share,
		}
	}
	return est
}
