package analysis

import (
	"testing"

	"adhtc/domain/core"
)

// TestNewInputSetAcceptsDefaults verifies the default slider positions form
// a valid input set.
func TestNewInputSetAcceptsDefaults(t *testing.T) {
	in, err := NewInputSet(DefaultInputSet())
	if err != nil {
		t.Fatalf("DefaultInputSet rejected: %v", err)
	}
	if in != DefaultInputSet() {
		t.Error("Validation must not mutate a valid input set")
	}
}

// TestNewInputSetRejections exercises every validated field.
func TestNewInputSetRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*InputSet)
	}{
		{"pressure ratio at unity", func(in *InputSet) { in.PressureRatio = 1 }},
		{"non-positive ambient", func(in *InputSet) { in.AmbientTempK = 0 }},
		{"turbine inlet below ambient", func(in *InputSet) { in.TurbineInletTempK = in.AmbientTempK - 1 }},
		{"zero compressor efficiency", func(in *InputSet) { in.CompressorEff = 0 }},
		{"turbine efficiency above one", func(in *InputSet) { in.TurbineEff = 1.01 }},
		{"zero pump efficiency", func(in *InputSet) { in.PumpEff = 0 }},
		{"steam turbine efficiency above one", func(in *InputSet) { in.SteamTurbineEff = 2 }},
		{"negative tank A feed", func(in *InputSet) { in.TankAFeedKgh = -5 }},
		{"negative tank B feed", func(in *InputSet) { in.TankBFeedKgh = -5 }},
		{"tank A moisture above one", func(in *InputSet) { in.TankAMoisture = 1.5 }},
		{"negative tank B moisture", func(in *InputSet) { in.TankBMoisture = -0.1 }},
		{"volatile solids above one", func(in *InputSet) { in.VolatileSolids = 1.2 }},
		{"sub-freezing reactor", func(in *InputSet) { in.ReactorTempK = 270 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := DefaultInputSet()
			c.mutate(&in)
			_, err := NewInputSet(in)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !core.IsInvalidInput(err) {
				t.Errorf("Expected invalid-input error, got %v", err)
			}
		})
	}
}

// TestSummaryIsDegenerate checks the tag lookup.
func TestSummaryIsDegenerate(t *testing.T) {
	s := Summary{Degenerate: []string{DegenerateAirMassFlow}}
	if !s.IsDegenerate(DegenerateAirMassFlow) {
		t.Error("Expected air mass flow tagged")
	}
	if s.IsDegenerate(DegenerateOverallEfficiency) {
		t.Error("Overall efficiency must not be tagged")
	}
}
