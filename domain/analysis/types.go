// Package analysis defines the request/response contract of the calculation
// core: the validated InputSet coming from the UI and the assembled Report
// going back to it.
package analysis

import (
	"adhtc/domain/biomass"
	"adhtc/domain/core"
	"adhtc/domain/thermo"
)

// InputSet is the complete, validated parameter set for one analysis run.
// Temperatures are Kelvin, efficiencies and moisture contents are fractions.
// Built fresh per request via NewInputSet and treated as immutable.
type InputSet struct {
	PressureRatio     float64 `json:"pressure_ratio"`
	AmbientTempK      float64 `json:"ambient_temp_k"`
	TurbineInletTempK float64 `json:"turbine_inlet_temp_k"`
	CompressorEff     float64 `json:"compressor_eff"`
	TurbineEff        float64 `json:"turbine_eff"`

	TankAFeedKgh    float64 `json:"tank_a_feed_kg_h"`
	TankAMoisture   float64 `json:"tank_a_moisture"`
	ReactorTempK    float64 `json:"reactor_temp_k"`
	TankBFeedKgh    float64 `json:"tank_b_feed_kg_h"`
	TankBMoisture   float64 `json:"tank_b_moisture"`
	VolatileSolids  float64 `json:"volatile_solids_frac"`
	PumpEff         float64 `json:"pump_eff"`
	SteamTurbineEff float64 `json:"steam_turbine_eff"`
}

// NewInputSet validates every field against its documented domain and
// returns a typed invalid-input error on the first violation. Computation
// never starts from an unvalidated set.
func NewInputSet(in InputSet) (InputSet, error) {
	if in.PressureRatio <= 1 {
		return InputSet{}, core.NewFieldRangeError("pressure_ratio", in.PressureRatio, "(1, inf)")
	}
	if in.AmbientTempK <= 0 {
		return InputSet{}, core.NewFieldRangeError("ambient_temp_k", in.AmbientTempK, "(0, inf)")
	}
	if in.TurbineInletTempK <= in.AmbientTempK {
		return InputSet{}, core.NewInvalidInputError("turbine_inlet_temp_k", "must exceed ambient temperature")
	}
	for _, eff := range []struct {
		name  string
		value float64
	}{
		{"compressor_eff", in.CompressorEff},
		{"turbine_eff", in.TurbineEff},
		{"pump_eff", in.PumpEff},
		{"steam_turbine_eff", in.SteamTurbineEff},
	} {
		if eff.value <= 0 || eff.value > 1 {
			return InputSet{}, core.NewFieldRangeError(eff.name, eff.value, "(0, 1]")
		}
	}
	if in.TankAFeedKgh < 0 {
		return InputSet{}, core.NewFieldRangeError("tank_a_feed_kg_h", in.TankAFeedKgh, "[0, inf)")
	}
	if in.TankBFeedKgh < 0 {
		return InputSet{}, core.NewFieldRangeError("tank_b_feed_kg_h", in.TankBFeedKgh, "[0, inf)")
	}
	for _, frac := range []struct {
		name  string
		value float64
	}{
		{"tank_a_moisture", in.TankAMoisture},
		{"tank_b_moisture", in.TankBMoisture},
		{"volatile_solids_frac", in.VolatileSolids},
	} {
		if frac.value < 0 || frac.value > 1 {
			return InputSet{}, core.NewFieldRangeError(frac.name, frac.value, "[0, 1]")
		}
	}
	if in.ReactorTempK <= thermo.KelvinOffset {
		return InputSet{}, core.NewFieldRangeError("reactor_temp_k", in.ReactorTempK, "(273.15, inf)")
	}
	return in, nil
}

// DefaultInputSet mirrors the dashboard's initial slider positions.
func DefaultInputSet() InputSet {
	return InputSet{
		PressureRatio:     10,
		AmbientTempK:      thermo.CelsiusToKelvin(25),
		TurbineInletTempK: thermo.CelsiusToKelvin(1200),
		CompressorEff:     0.85,
		TurbineEff:        0.90,
		TankAFeedKgh:      500,
		TankAMoisture:     0.20,
		ReactorTempK:      thermo.CelsiusToKelvin(200),
		TankBFeedKgh:      800,
		TankBMoisture:     0.70,
		VolatileSolids:    0.80,
		PumpEff:           0.80,
		SteamTurbineEff:   0.85,
	}
}

// MetricCard is one display-ready summary value. NA marks a degenerate
// metric the renderer must show as "N/A" instead of the zero sentinel.
type MetricCard struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	NA    bool    `json:"na,omitempty"`
}

// ReportRow is one name/value row of a report table, already formatted
// with units.
type ReportRow struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// StateTable is one ordered state-point table. Point order is physically
// meaningful (1→2→3→4 around the cycle) and must be preserved.
type StateTable struct {
	Title  string              `json:"title"`
	Points []thermo.StatePoint `json:"points"`
}

// Summary holds the combined plant-level metrics derived from the four
// model outputs.
type Summary struct {
	AirMassFlowKgh    float64  `json:"air_mass_flow_kg_h"`
	GasTurbinePowerKW float64  `json:"gas_turbine_power_kw"`
	SteamPowerKW      float64  `json:"steam_power_kw"`
	TotalPowerKW      float64  `json:"total_power_kw"`
	OverallEfficiency float64  `json:"overall_efficiency"`
	Degenerate        []string `json:"degenerate,omitempty"`
}

// IsDegenerate reports whether the named summary metric was tagged.
func (s Summary) IsDegenerate(metric string) bool {
	for _, d := range s.Degenerate {
		if d == metric {
			return true
		}
	}
	return false
}

// Summary metric tags
const (
	DegenerateAirMassFlow       = "air_mass_flow"
	DegenerateTotalPower        = "total_power"
	DegenerateOverallEfficiency = "overall_efficiency"
)

// Report aggregates the four model outputs plus combined metrics into a
// display-ready record. Constructed once per analysis, never persisted by
// the core (history storage is an optional collaborator).
type Report struct {
	AnalysisID core.AnalysisID `json:"analysis_id"`
	CreatedAt  core.Timestamp  `json:"created_at"`
	Inputs     InputSet        `json:"inputs"`

	Brayton *thermo.CycleResult   `json:"brayton"`
	Rankine *thermo.RankineResult `json:"rankine"`
	AD      *biomass.ADYield      `json:"ad"`
	HTC     *biomass.HTCYield     `json:"htc"`

	Summary        Summary      `json:"summary"`
	Cards          []MetricCard `json:"cards"`
	StateTables    []StateTable `json:"state_tables"`
	EnergyBalance  []ReportRow  `json:"energy_balance"`
	ProcessSummary []ReportRow  `json:"process_summary"`
}
