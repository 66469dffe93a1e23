package thermo

import (
	"math"

	"adhtc/domain/core"
)

// BraytonInput holds the gas-turbine cycle parameters. Temperatures are in
// Kelvin, efficiencies are isentropic fractions in (0, 1].
type BraytonInput struct {
	PressureRatio    float64 `json:"pressure_ratio"`
	CompressorInletK float64 `json:"compressor_inlet_k"`
	TurbineInletK    float64 `json:"turbine_inlet_k"`
	CompressorEff    float64 `json:"compressor_eff"`
	TurbineEff       float64 `json:"turbine_eff"`
}

// BraytonConfig carries the working-gas properties.
type BraytonConfig struct {
	CP    float64 // kJ/(kg·K)
	Gamma float64
	R     float64 // kJ/(kg·K)
}

// DefaultBraytonConfig returns air-standard gas properties.
func DefaultBraytonConfig() BraytonConfig {
	return BraytonConfig{CP: CPAir, Gamma: GammaAir, R: RAir}
}

// Validate checks the input against its documented domain.
func (in BraytonInput) Validate() error {
	if in.PressureRatio <= 1 {
		return core.NewFieldRangeError("pressure_ratio", in.PressureRatio, "(1, inf)")
	}
	if in.CompressorEff <= 0 || in.CompressorEff > 1 {
		return core.NewFieldRangeError("compressor_eff", in.CompressorEff, "(0, 1]")
	}
	if in.TurbineEff <= 0 || in.TurbineEff > 1 {
		return core.NewFieldRangeError("turbine_eff", in.TurbineEff, "(0, 1]")
	}
	if in.CompressorInletK <= 0 {
		return core.NewFieldRangeError("compressor_inlet_k", in.CompressorInletK, "(0, inf)")
	}
	if in.TurbineInletK <= in.CompressorInletK {
		return core.NewInvalidInputError("turbine_inlet_k", "must exceed compressor inlet temperature")
	}
	return nil
}

// ComputeBrayton evaluates the Brayton (gas turbine) cycle state points and
// performance from the isentropic relations with real-component correction:
//
//	T2s = T1·rp^((γ-1)/γ)    T2 = T1 + (T2s-T1)/η_c
//	T4s = T3/rp^((γ-1)/γ)    T4 = T3 - η_t·(T3-T4s)
//
// Enthalpy and entropy are relative to state 1. The call is pure: identical
// inputs always produce identical results.
func ComputeBrayton(in BraytonInput, cfg BraytonConfig) (*CycleResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	T1 := in.CompressorInletK
	T3 := in.TurbineInletK
	rp := in.PressureRatio
	exp := (cfg.Gamma - 1) / cfg.Gamma

	// Isentropic compression
	T2s := T1 * math.Pow(rp, exp)
	T2 := T1 + (T2s-T1)/in.CompressorEff

	// Isentropic expansion
	T4s := T3 / math.Pow(rp, exp)
	T4 := T3 - (T3-T4s)*in.TurbineEff

	// Work and heat per kg of air
	wComp := cfg.CP * (T2 - T1)
	wTurb := cfg.CP * (T3 - T4)
	wNet := wTurb - wComp
	qIn := cfg.CP * (T3 - T2)
	qOut := cfg.CP * (T4 - T1)

	result := &CycleResult{
		Metrics: CycleMetrics{
			CompressorWork: wComp,
			TurbineWork:    wTurb,
			NetWork:        wNet,
			HeatIn:         qIn,
			HeatOut:        qOut,
		},
	}

	if qIn > 0 {
		result.Metrics.ThermalEfficiency = wNet / qIn
	} else {
		result.Degenerate = append(result.Degenerate, DegenerateThermalEfficiency)
	}
	if wTurb > 0 {
		result.Metrics.BackWorkRatio = wComp / wTurb
	} else {
		result.Degenerate = append(result.Degenerate, DegenerateBackWorkRatio)
	}

	// Entropy relative to state 1
	s2 := cfg.CP*math.Log(T2/T1) - cfg.R*math.Log(rp)
	s3 := s2 + cfg.CP*math.Log(T3/T2)
	s4 := s3 + cfg.CP*math.Log(T4/T3) + cfg.R*math.Log(rp)

	result.Points = []StatePoint{
		{Label: "1 - Comp Inlet", TemperatureC: KelvinToCelsius(T1), EnthalpyKJKg: 0, EntropyKJKgK: 0},
		{Label: "2 - Comp Outlet", TemperatureC: KelvinToCelsius(T2), EnthalpyKJKg: cfg.CP * (T2 - T1), EntropyKJKgK: s2},
		{Label: "3 - Turb Inlet", TemperatureC: KelvinToCelsius(T3), EnthalpyKJKg: cfg.CP * (T3 - T1), EntropyKJKgK: s3},
		{Label: "4 - Turb Outlet", TemperatureC: KelvinToCelsius(T4), EnthalpyKJKg: cfg.CP * (T4 - T1), EntropyKJKgK: s4},
	}

	return result, nil
}
