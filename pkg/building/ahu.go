package building

import "github.com/Helarga/TEASER-1/pkg/validation"

// AHU holds the central air-handling parameters of a building. Profiles
// cover hour 0 through 24 inclusive of a representative day.
type AHU struct {
	HeatRecovery       bool    `yaml:"heat_recovery" json:"heat_recovery"`
	RecoveryEfficiency float64 `yaml:"recovery_efficiency" json:"recovery_efficiency"`

	TemperatureProfile    []float64 `yaml:"temperature_profile" json:"temperature_profile"`
	MinRelHumidityProfile []float64 `yaml:"min_rel_humidity_profile" json:"min_rel_humidity_profile"`
	MaxRelHumidityProfile []float64 `yaml:"max_rel_humidity_profile" json:"max_rel_humidity_profile"`
	VFlowProfile          []float64 `yaml:"v_flow_profile" json:"v_flow_profile"`
}

// DefaultAHU returns the standard central-unit parameterization: heat
// recovery at 35 % efficiency, 18 °C supply, unconstrained humidity, full
// flow from hour one on.
func DefaultAHU() *AHU {
	a := &AHU{
		HeatRecovery:          true,
		RecoveryEfficiency:    0.35,
		TemperatureProfile:    make([]float64, 25),
		MinRelHumidityProfile: make([]float64, 25),
		MaxRelHumidityProfile: make([]float64, 25),
		VFlowProfile:          make([]float64, 25),
	}
	for i := 0; i < 25; i++ {
		a.TemperatureProfile[i] = 273.15 + 18
		a.MaxRelHumidityProfile[i] = 1
		if i > 0 {
			a.VFlowProfile[i] = 1
		}
	}
	return a
}

// FlowBounds are the per-usage supply volume flow limits in m³/(h·m²).
type FlowBounds struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// FlowTable maps catalog usage labels to AHU flow bounds.
type FlowTable map[string]FlowBounds

// DefaultFlowTable returns the hospital flow table, DIN 1946-4 values per
// usage label.
func DefaultFlowTable() FlowTable {
	return FlowTable{
		"Bed room":                             {Min: 15.778, Max: 15.778},
		"Corridors in the general care area":   {Min: 5.2941, Max: 5.2941},
		"Examination- or treatment room":       {Min: 15.743, Max: 15.743},
		"Meeting, Conference, seminar":         {Min: 16.036, Max: 16.036},
		"Stock, technical equipment, archives": {Min: 20.484, Max: 20.484},
		"WC and sanitary rooms in non-residential buildings": {Min: 27.692, Max: 27.692},
	}
}

// Lookup returns the bounds for a usage label. A missing entry yields
// zero flow and a warning so the zone is still generated.
func (t FlowTable) Lookup(usage string, rpt *validation.Report) FlowBounds {
	if b, ok := t[usage]; ok {
		return b
	}
	rpt.AddWarning(validation.Result{
		Level:    validation.LevelSchedule,
		Message:  "no AHU flow bounds for usage, assuming zero flow",
		Zone:     usage,
		Field:    "usage",
		Expected: "an entry in the AHU flow table",
	})
	return FlowBounds{}
}
