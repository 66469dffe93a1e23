// Package app wires the domain models into the request/response services the
// UI and API layers call.
package app

import (
	"context"
	"encoding/json"

	"adhtc/domain/analysis"
	"adhtc/domain/biomass"
	"adhtc/domain/core"
	"adhtc/domain/thermo"
	"adhtc/internal"
	"adhtc/internal/errors"
	"adhtc/ports"
)

// AnalysisService runs one full plant analysis: validate the inputs, run the
// four models, assemble the report. Stateless between calls; identical
// inputs give identical reports (apart from the run ID and timestamp).
type AnalysisService struct {
	log     *internal.Logger
	history ports.HistoryRepository // optional, nil disables persistence

	braytonCfg thermo.BraytonConfig
	rankineCfg thermo.RankineConfig
	adCfg      biomass.ADConfig
	htcCfg     biomass.HTCConfig
}

// NewAnalysisService creates an analysis service with the default model
// configurations. history may be nil.
func NewAnalysisService(history ports.HistoryRepository) *AnalysisService {
	return &AnalysisService{
		log:        internal.DefaultLogger,
		history:    history,
		braytonCfg: thermo.DefaultBraytonConfig(),
		rankineCfg: thermo.DefaultRankineConfig(),
		adCfg:      biomass.DefaultADConfig(),
		htcCfg:     biomass.DefaultHTCConfig(),
	}
}

// Run executes one analysis. Invalid input aborts before any model runs and
// no partial report is returned. The HTC process heat demand feeds the steam
// cycle; the other models are independent.
func (s *AnalysisService) Run(ctx context.Context, raw analysis.InputSet) (*analysis.Report, error) {
	inputs, err := analysis.NewInputSet(raw)
	if err != nil {
		return nil, err
	}

	brayton, err := thermo.ComputeBrayton(thermo.BraytonInput{
		PressureRatio:    inputs.PressureRatio,
		CompressorInletK: inputs.AmbientTempK,
		TurbineInletK:    inputs.TurbineInletTempK,
		CompressorEff:    inputs.CompressorEff,
		TurbineEff:       inputs.TurbineEff,
	}, s.braytonCfg)
	if err != nil {
		return nil, err
	}

	htc, err := biomass.ComputeHTC(biomass.HTCInput{
		FeedKgh:      inputs.TankAFeedKgh,
		MoistureFrac: inputs.TankAMoisture,
		ReactorTempK: inputs.ReactorTempK,
	}, s.htcCfg)
	if err != nil {
		return nil, err
	}

	rankine, err := thermo.ComputeRankine(thermo.RankineInput{
		ReactorTempK:     inputs.ReactorTempK,
		HeatAvailableMJh: htc.ProcessEnergyMJh,
		PumpEff:          inputs.PumpEff,
		TurbineEff:       inputs.SteamTurbineEff,
	}, s.rankineCfg)
	if err != nil {
		return nil, err
	}

	ad, err := biomass.ComputeADYield(biomass.ADInput{
		FeedKgh:            inputs.TankBFeedKgh,
		MoistureFrac:       inputs.TankBMoisture,
		VolatileSolidsFrac: inputs.VolatileSolids,
	}, s.adCfg)
	if err != nil {
		return nil, err
	}

	report := analysis.AssembleReport(core.NewAnalysisID(), core.Now(), inputs, brayton, rankine, ad, htc)

	s.record(ctx, report)
	return report, nil
}

// record persists the run summary when a history store is configured.
// History is a convenience; a storage failure never fails the analysis.
func (s *AnalysisService) record(ctx context.Context, report *analysis.Report) {
	if s.history == nil {
		return
	}
	inputsJSON, err := json.Marshal(report.Inputs)
	if err != nil {
		s.log.Warn("history: failed to encode inputs: %v", err)
		return
	}
	rec := &ports.AnalysisRecord{
		ID:              report.AnalysisID,
		CreatedAt:       report.CreatedAt,
		InputsJSON:      inputsJSON,
		TotalPowerKW:    report.Summary.TotalPowerKW,
		GTEfficiency:    report.Brayton.Metrics.ThermalEfficiency,
		SteamEfficiency: report.Rankine.Metrics.ThermalEfficiency,
		BiogasM3h:       report.AD.BiogasM3h,
		HydrocharKgh:    report.HTC.HydrocharKgh,
	}
	if err := s.history.Save(ctx, rec); err != nil {
		s.log.Warn("history: failed to save analysis %s: %v", report.AnalysisID, err)
	}
}

// History lists recent persisted runs, newest first.
func (s *AnalysisService) History(ctx context.Context, limit int) ([]*ports.AnalysisRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	records, err := s.history.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list analysis history")
	}
	return records, nil
}
