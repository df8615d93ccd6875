package schedule

import (
	"fmt"

	"github.com/Helarga/TEASER-1/pkg/catalog"
)

// Adjustments configures the optional profile transformations applied on
// top of the base schedules. Nil pointers disable the corresponding step.
type Adjustments struct {
	// OpeningTimes zeroes persons, machines and lighting outside the
	// opening window of each day.
	OpeningTimes *Window `yaml:"opening_times" json:"opening_times,omitempty"`

	// FirstWeekendDay is the zero-based index of the first weekend day.
	// All days at or after it are scaled by WeekendFactor. Daily profiles
	// are tiled over a full week before the scaling is applied.
	FirstWeekendDay *int    `yaml:"first_weekend_day" json:"first_weekend_day,omitempty"`
	WeekendFactor   float64 `yaml:"weekend_factor" json:"weekend_factor,omitempty"`

	// Setback shifts heating and cooling setpoints by the given deltas
	// inside the setback window of each day.
	Setback        *Window `yaml:"setback" json:"setback,omitempty"`
	HeatingSetback float64 `yaml:"heating_setback" json:"heating_setback,omitempty"`
	CoolingSetback float64 `yaml:"cooling_setback" json:"cooling_setback,omitempty"`
}

// Schedules holds the adjusted hourly profiles of one zone together with
// the base profiles they were derived from. Calc always rebuilds the
// adjusted profiles from the base set, so calling it repeatedly with the
// same adjustments yields identical results.
type Schedules struct {
	baseHeating  Profile
	baseCooling  Profile
	basePersons  Profile
	baseMachines Profile
	baseLighting Profile

	Heating  Profile
	Cooling  Profile
	Persons  Profile
	Machines Profile
	Lighting Profile

	Adjust Adjustments
}

// New captures the use-condition profiles as base schedules. All five
// profiles must share the same length, either a day or a week.
func New(uc *catalog.UseConditions) (*Schedules, error) {
	n := len(uc.HeatingProfile)
	for _, p := range [][]float64{uc.CoolingProfile, uc.PersonsProfile, uc.MachinesProfile, uc.LightingProfile} {
		if len(p) != n {
			return nil, fmt.Errorf("schedule: profile lengths differ for usage %q: %d vs %d", uc.Usage, n, len(p))
		}
	}
	if n != HoursPerDay && n != HoursPerWeek {
		return nil, fmt.Errorf("schedule: profile length %d for usage %q, want %d or %d", n, uc.Usage, HoursPerDay, HoursPerWeek)
	}
	s := &Schedules{
		baseHeating:  Profile(uc.HeatingProfile).Clone(),
		baseCooling:  Profile(uc.CoolingProfile).Clone(),
		basePersons:  Profile(uc.PersonsProfile).Clone(),
		baseMachines: Profile(uc.MachinesProfile).Clone(),
		baseLighting: Profile(uc.LightingProfile).Clone(),
	}
	s.Calc()
	return s, nil
}

// Calc recomputes the adjusted profiles from the base schedules and the
// currently configured adjustments.
//
//  1. Copy the base profiles.
//  2. Tile daily profiles to a week when weekend scaling is configured.
//  3. Zero the gain profiles outside the opening window.
//  4. Scale the gain profiles on weekend days.
//  5. Apply the setpoint setback deltas.
func (s *Schedules) Calc() {
	s.Heating = s.baseHeating.Clone()
	s.Cooling = s.baseCooling.Clone()
	s.Persons = s.basePersons.Clone()
	s.Machines = s.baseMachines.Clone()
	s.Lighting = s.baseLighting.Clone()

	if s.Adjust.FirstWeekendDay != nil {
		s.Heating = s.Heating.Tile()
		s.Cooling = s.Cooling.Tile()
		s.Persons = s.Persons.Tile()
		s.Machines = s.Machines.Tile()
		s.Lighting = s.Lighting.Tile()
	}

	if w := s.Adjust.OpeningTimes; w != nil {
		s.Persons.TruncateOpening(*w)
		s.Machines.TruncateOpening(*w)
		s.Lighting.TruncateOpening(*w)
	}

	if d := s.Adjust.FirstWeekendDay; d != nil {
		s.Persons.ScaleDays(*d, s.Adjust.WeekendFactor)
		s.Machines.ScaleDays(*d, s.Adjust.WeekendFactor)
		s.Lighting.ScaleDays(*d, s.Adjust.WeekendFactor)
	}

	if w := s.Adjust.Setback; w != nil {
		s.Heating.AddOffset(*w, s.Adjust.HeatingSetback)
		s.Cooling.AddOffset(*w, s.Adjust.CoolingSetback)
	}
}
