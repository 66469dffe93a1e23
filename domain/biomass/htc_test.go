package biomass

import (
	"math"
	"testing"

	"adhtc/domain/core"
	"adhtc/domain/thermo"
)

// TestComputeHTCReference checks the carbonization outputs for 500 kg/h feed
// at 20% moisture and a 200 °C reactor.
func TestComputeHTCReference(t *testing.T) {
	yield, err := ComputeHTC(HTCInput{
		FeedKgh:      500,
		MoistureFrac: 0.20,
		ReactorTempK: thermo.CelsiusToKelvin(200),
	}, DefaultHTCConfig())
	if err != nil {
		t.Fatalf("ComputeHTC failed: %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"dry mass", yield.DryMassKgh, 400, 1e-9},
		{"hydrochar", yield.HydrocharKgh, 240, 1e-9},
		{"process water", yield.ProcessWaterKgh, 260, 1e-9},
		{"hydrochar energy", yield.HydrocharEnergyMJh, 6000, 1e-9},
		{"process energy", yield.ProcessEnergyMJh, 366.275, 1e-6},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > c.tol {
			t.Errorf("%s = %g, want %g", c.name, c.got, c.want)
		}
	}
}

// TestComputeHTCMassClosure verifies feed mass splits exactly into
// hydrochar and process water.
func TestComputeHTCMassClosure(t *testing.T) {
	in := HTCInput{FeedKgh: 735, MoistureFrac: 0.35, ReactorTempK: thermo.CelsiusToKelvin(230)}
	yield, err := ComputeHTC(in, DefaultHTCConfig())
	if err != nil {
		t.Fatalf("ComputeHTC failed: %v", err)
	}
	if math.Abs(yield.HydrocharKgh+yield.ProcessWaterKgh-in.FeedKgh) > 1e-9 {
		t.Errorf("Mass balance violated: %g + %g != %g",
			yield.HydrocharKgh, yield.ProcessWaterKgh, in.FeedKgh)
	}
}

// TestComputeHTCHeatGrowsWithTemperature checks the heat demand is strictly
// increasing in reactor temperature at fixed feed.
func TestComputeHTCHeatGrowsWithTemperature(t *testing.T) {
	low, err := ComputeHTC(HTCInput{FeedKgh: 500, MoistureFrac: 0.2, ReactorTempK: thermo.CelsiusToKelvin(180)}, DefaultHTCConfig())
	if err != nil {
		t.Fatalf("ComputeHTC failed: %v", err)
	}
	high, err := ComputeHTC(HTCInput{FeedKgh: 500, MoistureFrac: 0.2, ReactorTempK: thermo.CelsiusToKelvin(260)}, DefaultHTCConfig())
	if err != nil {
		t.Fatalf("ComputeHTC failed: %v", err)
	}
	if high.ProcessEnergyMJh <= low.ProcessEnergyMJh {
		t.Errorf("Heat demand must grow with temperature: %g <= %g",
			high.ProcessEnergyMJh, low.ProcessEnergyMJh)
	}
}

// TestComputeHTCReactorAtAmbient rejects a reactor no hotter than ambient.
func TestComputeHTCReactorAtAmbient(t *testing.T) {
	_, err := ComputeHTC(HTCInput{
		FeedKgh:      500,
		MoistureFrac: 0.20,
		ReactorTempK: thermo.CelsiusToKelvin(20),
	}, DefaultHTCConfig())
	if err == nil {
		t.Fatal("Expected error for reactor at ambient temperature")
	}
	if !core.IsInvalidInput(err) {
		t.Errorf("Expected invalid-input error, got %v", err)
	}
}

// TestHTCInputValidation exercises each rejected field.
func TestHTCInputValidation(t *testing.T) {
	cases := []struct {
		name string
		in   HTCInput
	}{
		{"negative feed", HTCInput{FeedKgh: -1, MoistureFrac: 0.2, ReactorTempK: 473.15}},
		{"moisture above one", HTCInput{FeedKgh: 100, MoistureFrac: 1.1, ReactorTempK: 473.15}},
		{"sub-freezing reactor", HTCInput{FeedKgh: 100, MoistureFrac: 0.2, ReactorTempK: 200}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ComputeHTC(c.in, DefaultHTCConfig()); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}
