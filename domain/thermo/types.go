package thermo

// StatePoint is a labeled point in a thermodynamic cycle. Enthalpy and
// entropy are relative to state 1 of the cycle, which is what the h-s and
// T-Hdot diagrams plot.
type StatePoint struct {
	Label        string  `json:"label"`
	TemperatureC float64 `json:"temperature_c"`
	EnthalpyKJKg float64 `json:"enthalpy_kj_kg"`
	EntropyKJKgK float64 `json:"entropy_kj_kg_k"`
}

// CycleMetrics holds the scalar aggregates for one cycle. Work and heat are
// per kg of working fluid; efficiencies are fractions in [0, 1).
type CycleMetrics struct {
	CompressorWork    float64 `json:"compressor_work"` // pump work for the steam cycle
	TurbineWork       float64 `json:"turbine_work"`
	NetWork           float64 `json:"net_work"`
	HeatIn            float64 `json:"heat_in"`
	HeatOut           float64 `json:"heat_out"`
	ThermalEfficiency float64 `json:"thermal_efficiency"`
	BackWorkRatio     float64 `json:"back_work_ratio"`
}

// CycleResult is the full output of one cycle computation: the four state
// points in physical order (1→2→3→4) plus the aggregate metrics.
//
// Degenerate lists metric names whose value is numerically defined but
// physically meaningless (zero substituted for an undefined ratio). Callers
// must check it before presenting those metrics.
type CycleResult struct {
	Points     []StatePoint `json:"points"`
	Metrics    CycleMetrics `json:"metrics"`
	Degenerate []string     `json:"degenerate,omitempty"`
}

// IsDegenerate reports whether the named metric was tagged degenerate.
func (r *CycleResult) IsDegenerate(metric string) bool {
	for _, d := range r.Degenerate {
		if d == metric {
			return true
		}
	}
	return false
}

// Degenerate metric tags
const (
	DegenerateThermalEfficiency = "thermal_efficiency"
	DegenerateBackWorkRatio     = "back_work_ratio"
	DegenerateSteamMassFlow     = "steam_mass_flow"
)
