package biomass

import (
	"adhtc/domain/core"
	"adhtc/domain/thermo"
)

// HTCInput holds the hydrothermal carbonization feed parameters.
type HTCInput struct {
	FeedKgh      float64 `json:"feed_kg_h"`
	MoistureFrac float64 `json:"moisture_frac"`
	ReactorTempK float64 `json:"reactor_temp_k"`
}

// HTCConfig carries the carbonization yield constants.
type HTCConfig struct {
	MassYieldFraction float64 // hydrochar mass per kg dry feed
	HydrocharHHV      float64 // MJ/kg
	CPWater           float64 // kJ/(kg·K), for the sensible heat estimate
	AmbientTempC      float64
}

// DefaultHTCConfig returns the typical carbonization constants.
func DefaultHTCConfig() HTCConfig {
	return HTCConfig{
		MassYieldFraction: 0.60,
		HydrocharHHV:      25.0,
		CPWater:           thermo.CPWater,
		AmbientTempC:      25.0,
	}
}

// HTCYield is the carbonization output. ProcessEnergyMJh is the heat demand
// of the reactor and feeds the steam cycle's heat input; it grows with both
// feed rate and reactor temperature.
type HTCYield struct {
	DryMassKgh         float64 `json:"dry_mass_kg_h"`
	HydrocharKgh       float64 `json:"hydrochar_kg_h"`
	ProcessWaterKgh    float64 `json:"process_water_kg_h"`
	HydrocharEnergyMJh float64 `json:"hydrochar_energy_mj_h"`
	ProcessEnergyMJh   float64 `json:"process_energy_mj_h"`
}

// Validate checks the input against its documented domain.
func (in HTCInput) Validate() error {
	if in.FeedKgh < 0 {
		return core.NewFieldRangeError("tank_a_feed", in.FeedKgh, "[0, inf)")
	}
	if in.MoistureFrac < 0 || in.MoistureFrac > 1 {
		return core.NewFieldRangeError("tank_a_moisture", in.MoistureFrac, "[0, 1]")
	}
	if in.ReactorTempK <= thermo.KelvinOffset {
		return core.NewFieldRangeError("reactor_temp_k", in.ReactorTempK, "(273.15, inf)")
	}
	return nil
}

// ComputeHTC estimates hydrochar production and reactor heat demand from the
// moisture-lean feed. The heat demand is a sensible-heat estimate of raising
// the full feed stream from ambient to reactor temperature.
func ComputeHTC(in HTCInput, cfg HTCConfig) (*HTCYield, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	reactorC := thermo.KelvinToCelsius(in.ReactorTempK)
	if reactorC <= cfg.AmbientTempC {
		return nil, core.NewInvalidInputError("reactor_temp_k", "must exceed ambient temperature")
	}

	dryMass := in.FeedKgh * (1 - in.MoistureFrac)
	hydrochar := dryMass * cfg.MassYieldFraction

	return &HTCYield{
		DryMassKgh:         dryMass,
		HydrocharKgh:       hydrochar,
		ProcessWaterKgh:    in.FeedKgh - hydrochar,
		HydrocharEnergyMJh: hydrochar * cfg.HydrocharHHV,
		ProcessEnergyMJh:   in.FeedKgh * cfg.CPWater * (reactorC - cfg.AmbientTempC) / 1000,
	}, nil
}
