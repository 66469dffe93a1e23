package analysis

import (
	"fmt"

	"adhtc/domain/biomass"
	"adhtc/domain/core"
	"adhtc/domain/thermo"
)

// AssembleReport combines the four model outputs into a unified report.
// Pure aggregation plus two documented combined metrics:
//
//   - Air mass flow estimate: ṁ_air = biogas energy [MJ/h] / q_in [MJ/kg],
//     i.e. the air flow the biogas output can sustain in the combustor.
//   - Overall efficiency: total net power (as MJ/h) divided by total energy
//     into the plant (biogas energy + HTC heat demand).
//
// Gas turbine power is w_net·ṁ_air/3600 kW; steam power is the steam cycle's
// specific net work times its mass flow, w_net·ṁ_steam/3600 kW. Undefined
// ratios are zeroed and tagged degenerate, never silently substituted, and
// a degenerate air mass flow taints the power totals built on it.
func AssembleReport(id core.AnalysisID, at core.Timestamp, inputs InputSet,
	brayton *thermo.CycleResult, rankine *thermo.RankineResult,
	ad *biomass.ADYield, htc *biomass.HTCYield) *Report {

	summary := Summary{}

	airDegenerate := brayton.Metrics.HeatIn <= 0
	if airDegenerate {
		summary.Degenerate = append(summary.Degenerate, DegenerateAirMassFlow)
	} else {
		summary.AirMassFlowKgh = ad.BiogasEnergyMJh / (brayton.Metrics.HeatIn / 1000)
	}

	summary.GasTurbinePowerKW = brayton.Metrics.NetWork * summary.AirMassFlowKgh / 3600
	summary.SteamPowerKW = rankine.Metrics.NetWork * rankine.SteamMassFlowKgh / 3600
	summary.TotalPowerKW = summary.GasTurbinePowerKW + summary.SteamPowerKW
	if airDegenerate {
		// Zero air flow zeroes the GT share, so the total understates the plant.
		summary.Degenerate = append(summary.Degenerate, DegenerateTotalPower)
	}

	energyIn := ad.BiogasEnergyMJh + htc.ProcessEnergyMJh
	if energyIn > 0 && !airDegenerate {
		summary.OverallEfficiency = summary.TotalPowerKW * 3.6 / energyIn
	} else {
		summary.Degenerate = append(summary.Degenerate, DegenerateOverallEfficiency)
	}

	r := &Report{
		AnalysisID: id,
		CreatedAt:  at,
		Inputs:     inputs,
		Brayton:    brayton,
		Rankine:    rankine,
		AD:         ad,
		HTC:        htc,
		Summary:    summary,
	}

	r.Cards = buildCards(r)
	r.StateTables = []StateTable{
		{Title: "Gas Turbine Cycle — State Points", Points: brayton.Points},
		{Title: "HTC Steam Cycle — State Points", Points: rankine.Points},
	}
	r.EnergyBalance = buildEnergyBalance(r)
	r.ProcessSummary = buildProcessSummary(r)
	return r
}

func buildCards(r *Report) []MetricCard {
	return []MetricCard{
		{Label: "Net Power", Value: r.Summary.TotalPowerKW, Unit: "kW",
			NA: r.Summary.IsDegenerate(DegenerateTotalPower)},
		{Label: "GT Efficiency", Value: r.Brayton.Metrics.ThermalEfficiency * 100, Unit: "%",
			NA: r.Brayton.IsDegenerate(thermo.DegenerateThermalEfficiency)},
		{Label: "HTC Efficiency", Value: r.Rankine.Metrics.ThermalEfficiency * 100, Unit: "%",
			NA: r.Rankine.IsDegenerate(thermo.DegenerateThermalEfficiency)},
		{Label: "Overall Efficiency", Value: r.Summary.OverallEfficiency * 100, Unit: "%",
			NA: r.Summary.IsDegenerate(DegenerateOverallEfficiency)},
		{Label: "Biogas Yield", Value: r.AD.BiogasM3h, Unit: "m³/h"},
		{Label: "GT Net Work", Value: r.Brayton.Metrics.NetWork, Unit: "kJ/kg"},
		{Label: "Hydrochar", Value: r.HTC.HydrocharKgh, Unit: "kg/h"},
		{Label: "Air Mass Flow", Value: r.Summary.AirMassFlowKgh, Unit: "kg/h",
			NA: r.Summary.IsDegenerate(DegenerateAirMassFlow)},
		{Label: "Back Work Ratio", Value: r.Brayton.Metrics.BackWorkRatio * 100, Unit: "%",
			NA: r.Brayton.IsDegenerate(thermo.DegenerateBackWorkRatio)},
	}
}

func buildEnergyBalance(r *Report) []ReportRow {
	return []ReportRow{
		{Name: "Compressor Work", Value: fmt.Sprintf("%.2f kJ/kg", r.Brayton.Metrics.CompressorWork)},
		{Name: "Turbine Work", Value: fmt.Sprintf("%.2f kJ/kg", r.Brayton.Metrics.TurbineWork)},
		{Name: "GT Net Work", Value: fmt.Sprintf("%.2f kJ/kg", r.Brayton.Metrics.NetWork)},
		{Name: "GT Heat Input (Q_in)", Value: fmt.Sprintf("%.2f kJ/kg", r.Brayton.Metrics.HeatIn)},
		{Name: "GT Heat Rejected (Q_out)", Value: fmt.Sprintf("%.2f kJ/kg", r.Brayton.Metrics.HeatOut)},
		{Name: "HTC Steam Pump Work", Value: fmt.Sprintf("%.2f kJ/kg", r.Rankine.Metrics.CompressorWork)},
		{Name: "HTC Steam Turbine Work", Value: fmt.Sprintf("%.2f kJ/kg", r.Rankine.Metrics.TurbineWork)},
		{Name: "HTC Net Work", Value: fmt.Sprintf("%.2f kJ/kg", r.Rankine.Metrics.NetWork)},
		{Name: "Biogas Energy Output", Value: fmt.Sprintf("%.2f MJ/h", r.AD.BiogasEnergyMJh)},
		{Name: "Hydrochar Energy", Value: fmt.Sprintf("%.2f MJ/h", r.HTC.HydrocharEnergyMJh)},
		{Name: "HTC Energy Required", Value: fmt.Sprintf("%.2f MJ/h", r.HTC.ProcessEnergyMJh)},
	}
}

func buildProcessSummary(r *Report) []ReportRow {
	return []ReportRow{
		{Name: "Tank A Feed Rate", Value: fmt.Sprintf("%.0f kg/h", r.Inputs.TankAFeedKgh)},
		{Name: "Tank A Dry Mass", Value: fmt.Sprintf("%.2f kg/h", r.HTC.DryMassKgh)},
		{Name: "Hydrochar Yield", Value: fmt.Sprintf("%.2f kg/h", r.HTC.HydrocharKgh)},
		{Name: "Process Water", Value: fmt.Sprintf("%.2f kg/h", r.HTC.ProcessWaterKgh)},
		{Name: "Tank B Feed Rate", Value: fmt.Sprintf("%.0f kg/h", r.Inputs.TankBFeedKgh)},
		{Name: "Tank B Dry Mass", Value: fmt.Sprintf("%.2f kg/h", r.AD.DryMassKgh)},
		{Name: "Volatile Solids", Value: fmt.Sprintf("%.2f kg/h", r.AD.VolatileSolidsKgh)},
		{Name: "Biogas Yield", Value: fmt.Sprintf("%.2f m³/h", r.AD.BiogasM3h)},
		{Name: "Methane Yield", Value: fmt.Sprintf("%.2f m³/h", r.AD.MethaneM3h)},
	}
}
