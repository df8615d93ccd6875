package building

// SimulationSettings is the immutable record of downstream-simulation
// parameters handed to the export collaborator alongside the building.
type SimulationSettings struct {
	// RuntimeSeconds is the simulated span, one year by default.
	RuntimeSeconds int `yaml:"runtime_seconds" json:"runtime_seconds"`
	// OutputIntervalSeconds is the result sampling interval.
	OutputIntervalSeconds int `yaml:"output_interval_seconds" json:"output_interval_seconds"`
	// StartWeekday is the zero-based weekday of simulation start, Monday = 0.
	StartWeekday int    `yaml:"start_weekday" json:"start_weekday"`
	Solver       string `yaml:"solver" json:"solver"`
}

// Solvers lists the integrators the downstream tools accept.
var Solvers = []string{"dassl", "euler", "cvode", "rkfix4"}

// DefaultSimulation returns a one-year hourly run starting on a Monday.
func DefaultSimulation() SimulationSettings {
	return SimulationSettings{
		RuntimeSeconds:        31536000,
		OutputIntervalSeconds: 3600,
		StartWeekday:          0,
		Solver:                "dassl",
	}
}
