package thermo

import (
	"math"

	"adhtc/domain/core"
)

// RankineInput holds the HTC steam cycle parameters. The reactor temperature
// sets the boiler exit superheat; HeatAvailableMJh is the heat delivered by
// the HTC process and sizes the steam mass flow.
type RankineInput struct {
	ReactorTempK     float64 `json:"reactor_temp_k"`
	HeatAvailableMJh float64 `json:"heat_available_mj_h"`
	PumpEff          float64 `json:"pump_eff"`
	TurbineEff       float64 `json:"turbine_eff"`
}

// RankineConfig carries the cp-based steam property approximation and the
// fixed condenser/boiler conditions of the simplified cycle.
type RankineConfig struct {
	CondenserTempC       float64 // condenser saturation temperature
	SuperheatC           float64 // boiler exit superheat above reactor temperature
	CondenserPressureBar float64
	BoilerPressureBar    float64
	CPWater              float64 // kJ/(kg·K)
	CPSteam              float64 // kJ/(kg·K)
	Hfg                  float64 // kJ/kg
	ExitQuality          float64 // steam quality at isentropic turbine exit
}

// DefaultRankineConfig returns the cp-approximation constants. Enthalpies use
// sensible heat of water to 100 C, the latent heat, then superheat with a
// constant steam cp; no steam tables are consulted.
func DefaultRankineConfig() RankineConfig {
	return RankineConfig{
		CondenserTempC:       45.0,
		SuperheatC:           50.0,
		CondenserPressureBar: 0.1,
		BoilerPressureBar:    20.0,
		CPWater:              CPWater,
		CPSteam:              CPSteam,
		Hfg:                  HfgWater,
		ExitQuality:          0.88,
	}
}

// Validate checks the input against its documented domain.
func (in RankineInput) Validate() error {
	if in.PumpEff <= 0 || in.PumpEff > 1 {
		return core.NewFieldRangeError("pump_eff", in.PumpEff, "(0, 1]")
	}
	if in.TurbineEff <= 0 || in.TurbineEff > 1 {
		return core.NewFieldRangeError("turbine_eff", in.TurbineEff, "(0, 1]")
	}
	if in.ReactorTempK <= KelvinOffset {
		return core.NewFieldRangeError("reactor_temp_k", in.ReactorTempK, "(273.15, inf)")
	}
	if in.HeatAvailableMJh < 0 {
		return core.NewFieldRangeError("heat_available_mj_h", in.HeatAvailableMJh, "[0, inf)")
	}
	return nil
}

// RankineResult extends the cycle result with the steam mass flow implied by
// the available HTC heat.
type RankineResult struct {
	CycleResult
	SteamMassFlowKgh float64 `json:"steam_mass_flow_kg_h"`
}

// ComputeRankine evaluates the simplified HTC steam (Rankine-like) cycle.
// Ideal pump and turbine work are corrected by the component efficiency the
// same way the Brayton relations are: pump work is ideal work divided by
// η_pump, turbine work is η_turbine times the ideal enthalpy drop.
//
// When no heat is available the cycle cannot run; efficiency and mass flow
// are reported as zero and tagged degenerate rather than failing on a
// division by zero.
func ComputeRankine(in RankineInput, cfg RankineConfig) (*RankineResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	T1 := cfg.CondenserTempC
	T3 := KelvinToCelsius(in.ReactorTempK) + cfg.SuperheatC

	// Approximate enthalpies (kJ/kg)
	h1 := cfg.CPWater * T1
	wPumpIdeal := 0.001 * (cfg.BoilerPressureBar - cfg.CondenserPressureBar) * 100
	wPump := wPumpIdeal / in.PumpEff
	h2 := h1 + wPump
	h3 := cfg.CPWater*100 + cfg.Hfg + cfg.CPSteam*(T3-100)

	h4s := h1 + cfg.ExitQuality*cfg.Hfg
	wTurb := in.TurbineEff * (h3 - h4s)
	h4 := h3 - wTurb

	qIn := h3 - h2
	wNet := wTurb - wPump

	result := &RankineResult{
		CycleResult: CycleResult{
			Metrics: CycleMetrics{
				CompressorWork: wPump,
				TurbineWork:    wTurb,
				NetWork:        wNet,
				HeatIn:         qIn,
				HeatOut:        h4 - h1,
			},
		},
	}

	if qIn > 0 && in.HeatAvailableMJh > 0 {
		result.Metrics.ThermalEfficiency = wNet / qIn
	} else {
		result.Degenerate = append(result.Degenerate, DegenerateThermalEfficiency)
	}
	if wTurb > 0 {
		result.Metrics.BackWorkRatio = wPump / wTurb
	} else {
		result.Degenerate = append(result.Degenerate, DegenerateBackWorkRatio)
	}

	// Steam mass flow sized by the heat the HTC reactor delivers
	if qIn > 0 && in.HeatAvailableMJh > 0 {
		result.SteamMassFlowKgh = in.HeatAvailableMJh * 1000 / qIn
	} else {
		result.Degenerate = append(result.Degenerate, DegenerateSteamMassFlow)
	}

	// Approximate entropies relative to 0 C liquid
	s1 := cfg.CPWater * math.Log(CelsiusToKelvin(T1)/KelvinOffset)
	s2 := s1 // isentropic pump
	s3 := s1 + (h3-h2)/CelsiusToKelvin(T3)
	s4 := s3 + 0.15 // entropy increase from turbine irreversibility

	result.Points = []StatePoint{
		{Label: "1 - Pump Inlet", TemperatureC: T1, EnthalpyKJKg: h1, EntropyKJKgK: s1},
		{Label: "2 - Pump Outlet", TemperatureC: T1 + 2, EnthalpyKJKg: h2, EntropyKJKgK: s2},
		{Label: "3 - Boiler Outlet", TemperatureC: T3, EnthalpyKJKg: h3, EntropyKJKgK: s3},
		{Label: "4 - Turb Outlet", TemperatureC: T1 + 20, EnthalpyKJKg: h4, EntropyKJKgK: s4},
	}

	return result, nil
}
