package thermo

import (
	"math"
	"testing"
)

// TestComputeRankineReference checks the steam cycle against hand-computed
// values for a 200 °C reactor, 366.275 MJ/h of available heat, η_pump=0.80
// and η_turbine=0.85 with the default property approximation.
func TestComputeRankineReference(t *testing.T) {
	result, err := ComputeRankine(RankineInput{
		ReactorTempK:     CelsiusToKelvin(200),
		HeatAvailableMJh: 366.275,
		PumpEff:          0.80,
		TurbineEff:       0.85,
	}, DefaultRankineConfig())
	if err != nil {
		t.Fatalf("ComputeRankine failed: %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"pump work", result.Metrics.CompressorWork, 2.4875, 1e-4},
		{"turbine work", result.Metrics.TurbineWork, 682.18, 0.05},
		{"net work", result.Metrics.NetWork, 679.70, 0.05},
		{"heat in", result.Metrics.HeatIn, 2786.24, 0.05},
		{"thermal efficiency", result.Metrics.ThermalEfficiency, 0.2439, 0.001},
		{"steam mass flow", result.SteamMassFlowKgh, 131.46, 0.05},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > c.tol {
			t.Errorf("%s = %.4f, want %.4f (±%g)", c.name, c.got, c.want, c.tol)
		}
	}

	if len(result.Degenerate) != 0 {
		t.Errorf("Expected no degenerate tags, got %v", result.Degenerate)
	}
}

// TestComputeRankineStatePoints checks labels, the fixed condenser
// conditions and the superheat at boiler exit.
func TestComputeRankineStatePoints(t *testing.T) {
	cfg := DefaultRankineConfig()
	result, err := ComputeRankine(RankineInput{
		ReactorTempK:     CelsiusToKelvin(220),
		HeatAvailableMJh: 400,
		PumpEff:          0.80,
		TurbineEff:       0.85,
	}, cfg)
	if err != nil {
		t.Fatalf("ComputeRankine failed: %v", err)
	}

	if len(result.Points) != 4 {
		t.Fatalf("Expected 4 state points, got %d", len(result.Points))
	}

	if result.Points[0].TemperatureC != cfg.CondenserTempC {
		t.Errorf("Pump inlet temperature = %g, want condenser temperature %g",
			result.Points[0].TemperatureC, cfg.CondenserTempC)
	}
	if want := 220 + cfg.SuperheatC; result.Points[2].TemperatureC != want {
		t.Errorf("Boiler outlet temperature = %g, want reactor + superheat = %g",
			result.Points[2].TemperatureC, want)
	}

	// Enthalpy rises through pump and boiler, drops through the turbine
	h := result.Points
	if !(h[0].EnthalpyKJKg < h[1].EnthalpyKJKg && h[1].EnthalpyKJKg < h[2].EnthalpyKJKg) {
		t.Error("Enthalpy must rise monotonically from pump inlet to boiler outlet")
	}
	if h[3].EnthalpyKJKg >= h[2].EnthalpyKJKg {
		t.Error("Turbine outlet enthalpy must be below boiler outlet")
	}

	// Turbine irreversibility shows as an entropy rise from 3 to 4
	if h[3].EntropyKJKgK <= h[2].EntropyKJKgK {
		t.Error("Turbine outlet entropy must exceed boiler outlet entropy")
	}
}

// TestComputeRankineNoHeat verifies that a cycle with no available heat
// reports zeroed, tagged metrics instead of failing.
func TestComputeRankineNoHeat(t *testing.T) {
	result, err := ComputeRankine(RankineInput{
		ReactorTempK:     CelsiusToKelvin(200),
		HeatAvailableMJh: 0,
		PumpEff:          0.80,
		TurbineEff:       0.85,
	}, DefaultRankineConfig())
	if err != nil {
		t.Fatalf("ComputeRankine failed: %v", err)
	}

	if !result.IsDegenerate(DegenerateThermalEfficiency) {
		t.Error("Expected thermal efficiency tagged degenerate with no heat")
	}
	if !result.IsDegenerate(DegenerateSteamMassFlow) {
		t.Error("Expected steam mass flow tagged degenerate with no heat")
	}
	if result.SteamMassFlowKgh != 0 {
		t.Errorf("Degenerate mass flow must be zero, got %g", result.SteamMassFlowKgh)
	}
	if result.Metrics.ThermalEfficiency != 0 {
		t.Errorf("Degenerate efficiency must be zero, got %g", result.Metrics.ThermalEfficiency)
	}
}

// TestRankineMassFlowScalesWithHeat checks that doubling the available heat
// doubles the steam mass flow at fixed specific heat input.
func TestRankineMassFlowScalesWithHeat(t *testing.T) {
	base := RankineInput{
		ReactorTempK:     CelsiusToKelvin(200),
		HeatAvailableMJh: 250,
		PumpEff:          0.80,
		TurbineEff:       0.85,
	}
	one, err := ComputeRankine(base, DefaultRankineConfig())
	if err != nil {
		t.Fatalf("ComputeRankine failed: %v", err)
	}
	base.HeatAvailableMJh = 500
	two, err := ComputeRankine(base, DefaultRankineConfig())
	if err != nil {
		t.Fatalf("ComputeRankine failed: %v", err)
	}
	if math.Abs(two.SteamMassFlowKgh-2*one.SteamMassFlowKgh) > 1e-9 {
		t.Errorf("Mass flow not linear in heat: %g vs 2·%g", two.SteamMassFlowKgh, one.SteamMassFlowKgh)
	}
}

// TestRankineInputValidation exercises each rejected field.
func TestRankineInputValidation(t *testing.T) {
	cases := []struct {
		name string
		in   RankineInput
	}{
		{"zero pump efficiency", RankineInput{ReactorTempK: 473.15, PumpEff: 0, TurbineEff: 0.85}},
		{"turbine efficiency above one", RankineInput{ReactorTempK: 473.15, PumpEff: 0.8, TurbineEff: 1.5}},
		{"sub-freezing reactor", RankineInput{ReactorTempK: 250, PumpEff: 0.8, TurbineEff: 0.85}},
		{"negative heat", RankineInput{ReactorTempK: 473.15, HeatAvailableMJh: -1, PumpEff: 0.8, TurbineEff: 0.85}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ComputeRankine(c.in, DefaultRankineConfig()); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}
