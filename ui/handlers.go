package ui

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"adhtc/domain/analysis"
	"adhtc/domain/core"
	"adhtc/domain/thermo"
	"adhtc/internal/chart"
)

// sliderValues are the dashboard-facing input units: temperatures in °C,
// efficiencies and moisture in percent, matching the slider ranges.
type sliderValues struct {
	TankAFeed     float64
	TankAMoisture float64
	ReactorTemp   float64
	TankBFeed     float64
	TankBMoisture float64
	VSFraction    float64
	PressureRatio float64
	TurbineInlet  float64
	AmbientTemp   float64
	CompressorEff float64
	TurbineEff    float64
}

func defaultSliders() sliderValues {
	return sliderValues{
		TankAFeed:     500,
		TankAMoisture: 20,
		ReactorTemp:   200,
		TankBFeed:     800,
		TankBMoisture: 70,
		VSFraction:    0.80,
		PressureRatio: 10,
		TurbineInlet:  1200,
		AmbientTemp:   25,
		CompressorEff: 85,
		TurbineEff:    90,
	}
}

// toInputSet converts slider units to the core contract (Kelvin, fractions).
func (v sliderValues) toInputSet() analysis.InputSet {
	in := analysis.DefaultInputSet()
	in.PressureRatio = v.PressureRatio
	in.AmbientTempK = thermo.CelsiusToKelvin(v.AmbientTemp)
	in.TurbineInletTempK = thermo.CelsiusToKelvin(v.TurbineInlet)
	in.CompressorEff = v.CompressorEff / 100
	in.TurbineEff = v.TurbineEff / 100
	in.TankAFeedKgh = v.TankAFeed
	in.TankAMoisture = v.TankAMoisture / 100
	in.ReactorTempK = thermo.CelsiusToKelvin(v.ReactorTemp)
	in.TankBFeedKgh = v.TankBFeed
	in.TankBMoisture = v.TankBMoisture / 100
	in.VolatileSolids = v.VSFraction
	return in
}

func parseSliders(r *http.Request) sliderValues {
	v := defaultSliders()
	read := func(name string, dst *float64) {
		if raw := r.FormValue(name); raw != "" {
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				*dst = f
			}
		}
	}
	read("ta_feed", &v.TankAFeed)
	read("ta_moist", &v.TankAMoisture)
	read("ta_treact", &v.ReactorTemp)
	read("tb_feed", &v.TankBFeed)
	read("tb_moist", &v.TankBMoisture)
	read("tb_vs", &v.VSFraction)
	read("gt_rp", &v.PressureRatio)
	read("gt_tit", &v.TurbineInlet)
	read("gt_tamb", &v.AmbientTemp)
	read("gt_etac", &v.CompressorEff)
	read("gt_etat", &v.TurbineEff)
	return v
}

// pageData drives the index template.
type pageData struct {
	Sliders   sliderValues
	Report    *analysis.Report
	ChartJSON template.JS
	Error     string
}

// chartPayload is the JSON the canvas renderer consumes.
type chartPayload struct {
	HS    chart.Series `json:"hs"`
	THdot chart.Series `json:"t_hdot"`
}

func (a *App) render(w http.ResponseWriter, name string, data interface{}) {
	if err := a.templates.ExecuteTemplate(w, name, data); err != nil {
		a.log.Error("template %s: %v", name, err)
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

// handleIndex renders the dashboard with default slider positions and no
// report; the report appears after the analyze action.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.render(w, "index.html", pageData{Sliders: defaultSliders()})
}

// handleAnalyze runs the analysis for the submitted slider values and
// re-renders the dashboard with the report and chart data.
func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	sliders := parseSliders(r)
	data := pageData{Sliders: sliders}

	report, err := a.analysis.Run(r.Context(), sliders.toInputSet())
	if err != nil {
		if core.IsInvalidInput(err) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			data.Error = err.Error()
			a.render(w, "index.html", data)
			return
		}
		a.log.Error("analysis failed: %v", err)
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	data.Report = report
	data.ChartJSON = chartJSON(a, report)
	a.render(w, "index.html", data)
}

func chartJSON(a *App, report *analysis.Report) template.JS {
	payload := chartPayload{
		HS:    chart.HS(&report.Rankine.CycleResult),
		THdot: chart.THdot(report.Brayton, report.Summary.AirMassFlowKgh/3600),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		a.log.Error("chart payload: %v", err)
		return "null"
	}
	return template.JS(raw)
}

// handleHistory lists recent persisted runs.
func (a *App) handleHistory(w http.ResponseWriter, r *http.Request) {
	records, err := a.analysis.History(r.Context(), 50)
	if err != nil {
		a.log.Error("history: %v", err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}
	a.render(w, "history.html", records)
}

// ---- JSON API ----

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type apiError struct {
	Error string `json:"error"`
}

// handleAPIAnalyze accepts a core InputSet as JSON and returns the full
// report plus chart series.
func (a *App) handleAPIAnalyze(w http.ResponseWriter, r *http.Request) {
	var in analysis.InputSet
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON body"})
		return
	}

	report, err := a.analysis.Run(r.Context(), in)
	if err != nil {
		if core.IsInvalidInput(err) {
			writeJSON(w, http.StatusUnprocessableEntity, apiError{Error: err.Error()})
			return
		}
		a.log.Error("analysis failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "analysis failed"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Report *analysis.Report `json:"report"`
		Charts chartPayload     `json:"charts"`
	}{
		Report: report,
		Charts: chartPayload{
			HS:    chart.HS(&report.Rankine.CycleResult),
			THdot: chart.THdot(report.Brayton, report.Summary.AirMassFlowKgh/3600),
		},
	})
}

// handleAPISweep returns the pressure-ratio efficiency curve.
func (a *App) handleAPISweep(w http.ResponseWriter, r *http.Request) {
	minPR, maxPR := 4.0, 25.0
	if raw := r.URL.Query().Get("min"); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			minPR = f
		}
	}
	if raw := r.URL.Query().Get("max"); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			maxPR = f
		}
	}

	result, err := a.sweep.EfficiencyCurve(r.Context(), parseSliders(r).toInputSet(), minPR, maxPR)
	if err != nil {
		if core.IsInvalidInput(err) {
			writeJSON(w, http.StatusUnprocessableEntity, apiError{Error: err.Error()})
			return
		}
		a.log.Error("sweep failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "sweep failed"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleAPIHistory returns recent runs as JSON.
func (a *App) handleAPIHistory(w http.ResponseWriter, r *http.Request) {
	records, err := a.analysis.History(r.Context(), 50)
	if err != nil {
		a.log.Error("history: %v", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to load history"})
		return
	}
	writeJSON(w, http.StatusOK, records)
}
