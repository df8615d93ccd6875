// Package building orchestrates a full generation run: zoning rows into
// zones, attaching boundary conditions and schedules, parameterizing the
// central air handling, and collecting all diagnostics on one report.
package building

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Helarga/TEASER-1/pkg/schedule"
	"github.com/Helarga/TEASER-1/pkg/tabular"
	"github.com/Helarga/TEASER-1/pkg/validation"
	"github.com/Helarga/TEASER-1/pkg/zoning"
)

// Zone couples a generated thermal zone with its adjusted usage schedules.
type Zone struct {
	*zoning.Zone
	Schedules *schedule.Schedules `json:"schedules,omitempty"`
}

// Building is the complete generated data model of one building, ready for
// the export collaborator.
type Building struct {
	Name string `json:"name"`
	Year int    `json:"year"`

	NetArea float64 `json:"net_area"`
	Volume  float64 `json:"volume"`

	Zones []*Zone `json:"zones"`

	// AHU is nil when the building has no central air handling.
	AHU        *AHU               `json:"ahu,omitempty"`
	Simulation SimulationSettings `json:"simulation"`
}

// Options configures one generation run.
type Options struct {
	Name string
	// Year is the construction year used for catalog lookups.
	Year int

	// WithAHU attaches a central air-handling unit. AHU overrides the
	// default parameterization when set.
	WithAHU bool
	AHU     *AHU
	// FlowTable maps usages to per-zone AHU flow bounds; nil selects the
	// default hospital table.
	FlowTable FlowTable

	// Zoning carries the catalogs and translation for the zoning engine.
	Zoning zoning.Options

	// Adjust is applied to every zone's schedules.
	Adjust schedule.Adjustments

	Logger *zap.Logger
}

// Generate runs the full pipeline on one building's rows. The report is
// non-nil even on error so callers can surface the findings collected
// before the fault.
func Generate(records []tabular.RawRoomRecord, opts Options) (*Building, *validation.Report, error) {
	rpt := validation.NewReport()
	rpt.RunID = uuid.NewString()

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("run_id", rpt.RunID), zap.String("building", opts.Name))
	log.Info("generating building", zap.Int("rows", len(records)), zap.Int("year", opts.Year))
	if labels := tabular.PresentValues(records, func(r tabular.RawRoomRecord) tabular.Cell { return r.UsageType }); len(labels) > 0 {
		log.Debug("usage labels present in input", zap.Strings("labels", labels))
	}

	zones, err := zoning.Zones(records, opts.Zoning, rpt)
	if err != nil {
		log.Error("zoning failed", zap.Error(err))
		return nil, rpt, err
	}

	b := &Building{
		Name:       opts.Name,
		Year:       opts.Year,
		Simulation: DefaultSimulation(),
	}
	if opts.WithAHU {
		b.AHU = opts.AHU
		if b.AHU == nil {
			b.AHU = DefaultAHU()
		}
	}

	flows := opts.FlowTable
	if flows == nil {
		flows = DefaultFlowTable()
	}

	for _, z := range zones {
		bz := &Zone{Zone: z}
		b.NetArea += z.NetArea
		b.Volume += z.Volume

		if z.UseConditions != nil {
			bounds := flows.Lookup(z.Name, rpt)
			z.UseConditions.MinAHU = bounds.Min
			z.UseConditions.MaxAHU = bounds.Max

			s, err := schedule.New(z.UseConditions)
			if err != nil {
				log.Error("schedule construction failed", zap.String("zone", z.Name), zap.Error(err))
				return nil, rpt, fmt.Errorf("zone %q: %w", z.Name, err)
			}
			s.Adjust = opts.Adjust
			s.Calc()
			bz.Schedules = s
		}
		b.Zones = append(b.Zones, bz)
	}

	log.Info("building generated",
		zap.Int("zones", len(b.Zones)),
		zap.Float64("net_area", b.NetArea),
		zap.Int("warnings", len(rpt.Warnings)),
		zap.Int("errors", len(rpt.Errors)))
	return b, rpt, nil
}

// Input is one building of a batch run.
type Input struct {
	Records []tabular.RawRoomRecord
	Options Options
}

// Result is the outcome of one building of a batch run.
type Result struct {
	Building *Building
	Report   *validation.Report
	Err      error
}

// GenerateAll processes a batch of buildings independently. A fault in one
// building is recorded in its result and does not stop the others.
func GenerateAll(inputs []Input) []Result {
	results := make([]Result, len(inputs))
	for i, in := range inputs {
		b, rpt, err := Generate(in.Records, in.Options)
		results[i] = Result{Building: b, Report: rpt, Err: err}
	}
	return results
}
