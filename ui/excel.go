package ui

import (
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"adhtc/domain/analysis"
	"adhtc/domain/core"
)

// handleExportExcel runs the analysis for the submitted sliders and streams
// the report as an .xlsx workbook.
func (a *App) handleExportExcel(w http.ResponseWriter, r *http.Request) {
	report, err := a.analysis.Run(r.Context(), parseSliders(r).toInputSet())
	if err != nil {
		if core.IsInvalidInput(err) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		a.log.Error("export analysis failed: %v", err)
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	f, err := buildWorkbook(report)
	if err != nil {
		a.log.Error("export workbook failed: %v", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="adhtc-report.xlsx"`)
	if err := f.Write(w); err != nil {
		a.log.Error("export write failed: %v", err)
	}
}

// buildWorkbook lays the report out across three sheets: summary cards,
// state-point tables, and the energy balance / process summary rows.
func buildWorkbook(report *analysis.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}
	f.SetCellValue(summary, "A1", "Metric")
	f.SetCellValue(summary, "B1", "Value")
	f.SetCellValue(summary, "C1", "Unit")
	for i, card := range report.Cards {
		row := i + 2
		f.SetCellValue(summary, fmt.Sprintf("A%d", row), card.Label)
		if card.NA {
			f.SetCellValue(summary, fmt.Sprintf("B%d", row), "N/A")
		} else {
			f.SetCellValue(summary, fmt.Sprintf("B%d", row), card.Value)
		}
		f.SetCellValue(summary, fmt.Sprintf("C%d", row), card.Unit)
	}

	const states = "State Points"
	if _, err := f.NewSheet(states); err != nil {
		return nil, err
	}
	row := 1
	for _, table := range report.StateTables {
		f.SetCellValue(states, fmt.Sprintf("A%d", row), table.Title)
		row++
		f.SetCellValue(states, fmt.Sprintf("A%d", row), "State")
		f.SetCellValue(states, fmt.Sprintf("B%d", row), "T (°C)")
		f.SetCellValue(states, fmt.Sprintf("C%d", row), "h (kJ/kg)")
		f.SetCellValue(states, fmt.Sprintf("D%d", row), "s (kJ/kg·K)")
		row++
		for _, p := range table.Points {
			f.SetCellValue(states, fmt.Sprintf("A%d", row), p.Label)
			f.SetCellValue(states, fmt.Sprintf("B%d", row), p.TemperatureC)
			f.SetCellValue(states, fmt.Sprintf("C%d", row), p.EnthalpyKJKg)
			f.SetCellValue(states, fmt.Sprintf("D%d", row), p.EntropyKJKgK)
			row++
		}
		row++ // blank row between tables
	}

	const balance = "Energy Balance"
	if _, err := f.NewSheet(balance); err != nil {
		return nil, err
	}
	row = 1
	for _, section := range []struct {
		title string
		rows  []analysis.ReportRow
	}{
		{"Energy Balance", report.EnergyBalance},
		{"AD & HTC Process Summary", report.ProcessSummary},
	} {
		f.SetCellValue(balance, fmt.Sprintf("A%d", row), section.title)
		row++
		for _, rr := range section.rows {
			f.SetCellValue(balance, fmt.Sprintf("A%d", row), rr.Name)
			f.SetCellValue(balance, fmt.Sprintf("B%d", row), rr.Value)
			row++
		}
		row++
	}

	return f, nil
}
