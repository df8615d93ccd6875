// Package schedule builds and adjusts hourly usage profiles: setpoints and
// internal gains per hour of a representative day or week.
package schedule

// HoursPerDay and HoursPerWeek are the two supported profile lengths.
const (
	HoursPerDay  = 24
	HoursPerWeek = 168
)

// Profile is a fixed-length ordered sequence of hourly values.
type Profile []float64

// Clone returns an independent copy.
func (p Profile) Clone() Profile {
	return append(Profile(nil), p...)
}

// Repeat builds a profile of n identical values.
func Repeat(v float64, n int) Profile {
	p := make(Profile, n)
	for i := range p {
		p[i] = v
	}
	return p
}

// Tile repeats a daily profile over a week. Profiles that are already a
// week long are returned unchanged.
func (p Profile) Tile() Profile {
	if len(p) != HoursPerDay {
		return p
	}
	week := make(Profile, 0, HoursPerWeek)
	for day := 0; day < 7; day++ {
		week = append(week, p...)
	}
	return week
}

// Window is a half-open hour range [Start, End) within a day. End may be
// smaller than Start for a window wrapping midnight.
type Window struct {
	Start int `yaml:"start" json:"start"`
	End   int `yaml:"end" json:"end"`
}

// Contains reports whether the hour-of-day lies inside the window.
func (w Window) Contains(hour int) bool {
	if w.Start <= w.End {
		return hour >= w.Start && hour < w.End
	}
	return hour >= w.Start || hour < w.End
}

// The adjustment operations below mutate the profile in place and are not
// idempotent: re-applying one stacks its effect. Callers apply each
// adjustment exactly once per profile-generation cycle; Schedules does
// that by recomputing from base profiles.

// TruncateOpening zeroes all hours outside the opening window. The close
// hour itself is zeroed, the hour before it is untouched.
func (p Profile) TruncateOpening(w Window) {
	for i := range p {
		if !w.Contains(i % HoursPerDay) {
			p[i] = 0
		}
	}
}

// ScaleDays multiplies all hours of days at or after firstDay by factor.
func (p Profile) ScaleDays(firstDay int, factor float64) {
	for i := range p {
		if i/HoursPerDay >= firstDay {
			p[i] *= factor
		}
	}
}

// AddOffset adds delta to all hours inside the window of each day.
func (p Profile) AddOffset(w Window, delta float64) {
	for i := range p {
		if w.Contains(i % HoursPerDay) {
			p[i] += delta
		}
	}
}
