// Package chart builds display-ready series from cycle results. Rendering is
// the UI's job; this package only fixes axes, point order and labels so both
// the dashboard canvas and the JSON API plot identical diagrams.
package chart

import (
	"strings"

	"adhtc/domain/thermo"
)

// Series is one plottable cycle path. X and Y are index-aligned with Labels;
// the path is closed back to the first state point.
type Series struct {
	Title  string    `json:"title"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	Labels []string  `json:"labels"`
}

// HS builds the enthalpy-entropy diagram series for the steam cycle.
func HS(result *thermo.CycleResult) Series {
	s := Series{
		Title:  "h – s Diagram · HTC Steam Cycle",
		XLabel: "Entropy s [kJ/(kg·K)]",
		YLabel: "Enthalpy h [kJ/kg]",
	}
	for _, p := range result.Points {
		s.X = append(s.X, p.EntropyKJKgK)
		s.Y = append(s.Y, p.EnthalpyKJKg)
		s.Labels = append(s.Labels, shortLabel(p.Label))
	}
	return closeLoop(s)
}

// THdot builds the temperature vs enthalpy-rate diagram series for the gas
// turbine cycle. Ḣ = ṁ·h, in kW when the mass flow is kg/s.
func THdot(result *thermo.CycleResult, massFlowKgs float64) Series {
	s := Series{
		Title:  "T – Ḣ Diagram · Gas Turbine Cycle",
		XLabel: "Enthalpy Rate Ḣ [kW]",
		YLabel: "Temperature T [°C]",
	}
	for _, p := range result.Points {
		s.X = append(s.X, p.EnthalpyKJKg*massFlowKgs)
		s.Y = append(s.Y, p.TemperatureC)
		s.Labels = append(s.Labels, shortLabel(p.Label))
	}
	return closeLoop(s)
}

// closeLoop appends the first point so the cycle path draws closed.
func closeLoop(s Series) Series {
	if len(s.X) == 0 {
		return s
	}
	s.X = append(s.X, s.X[0])
	s.Y = append(s.Y, s.Y[0])
	s.Labels = append(s.Labels, s.Labels[0])
	return s
}

// shortLabel trims "1 - Comp Inlet" to "1" for point annotations.
func shortLabel(label string) string {
	if i := strings.Index(label, " -"); i > 0 {
		return label[:i]
	}
	return label
}
