// Package biomass models the two biomass conversion processes of the plant:
// anaerobic digestion of the moisture-rich feed (Tank B) and hydrothermal
// carbonization of the moisture-lean feed (Tank A). Both are closed-form
// yield correlations; all functions are pure.
package biomass

import (
	"adhtc/domain/core"
)

// ADInput holds the anaerobic digestion feed parameters.
type ADInput struct {
	FeedKgh            float64 `json:"feed_kg_h"`
	MoistureFrac       float64 `json:"moisture_frac"`
	VolatileSolidsFrac float64 `json:"volatile_solids_frac"`
}

// ADConfig carries the digestion yield correlation constants.
type ADConfig struct {
	SpecificYield   float64 // m³ biogas per kg volatile solids
	MethaneFraction float64
	BiogasLHV       float64 // MJ/m³
}

// DefaultADConfig returns the typical digestion yield constants.
func DefaultADConfig() ADConfig {
	return ADConfig{
		SpecificYield:   0.40,
		MethaneFraction: 0.60,
		BiogasLHV:       22.0,
	}
}

// ADYield is the digestion output. All rates are linear in the feed rate;
// a zero feed gives zero yields, which is a valid result, not an error.
type ADYield struct {
	DryMassKgh        float64 `json:"dry_mass_kg_h"`
	VolatileSolidsKgh float64 `json:"volatile_solids_kg_h"`
	BiogasM3h         float64 `json:"biogas_m3_h"`
	MethaneM3h        float64 `json:"methane_m3_h"`
	BiogasEnergyMJh   float64 `json:"biogas_energy_mj_h"`
}

// Validate checks the input against its documented domain.
func (in ADInput) Validate() error {
	if in.FeedKgh < 0 {
		return core.NewFieldRangeError("tank_b_feed", in.FeedKgh, "[0, inf)")
	}
	if in.MoistureFrac < 0 || in.MoistureFrac > 1 {
		return core.NewFieldRangeError("tank_b_moisture", in.MoistureFrac, "[0, 1]")
	}
	if in.VolatileSolidsFrac < 0 || in.VolatileSolidsFrac > 1 {
		return core.NewFieldRangeError("volatile_solids_frac", in.VolatileSolidsFrac, "[0, 1]")
	}
	return nil
}

// ComputeADYield estimates biogas production from the moisture-rich feed:
// dry mass → volatile solids → biogas volume → methane share and energy.
func ComputeADYield(in ADInput, cfg ADConfig) (*ADYield, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	dryMass := in.FeedKgh * (1 - in.MoistureFrac)
	volatileSolids := dryMass * in.VolatileSolidsFrac
	biogas := volatileSolids * cfg.SpecificYield
	methane := biogas * cfg.MethaneFraction

	return &ADYield{
		DryMassKgh:        dryMass,
		VolatileSolidsKgh: volatileSolids,
		BiogasM3h:         biogas,
		MethaneM3h:        methane,
		BiogasEnergyMJh:   biogas * cfg.BiogasLHV,
	}, nil
}
