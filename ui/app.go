// Package ui serves the process-flow analysis dashboard: parameter sliders,
// the animated schematic, the report tables and the cycle charts. All
// numbers come from the app layer; no physics lives here.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adhtc/app"
	"adhtc/internal"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the dashboard application
type App struct {
	router    *chi.Mux
	analysis  *app.AnalysisService
	sweep     *app.SweepService
	templates *template.Template
	log       *internal.Logger
}

// Config holds dashboard configuration
type Config struct {
	Port string
}

// NewApp creates the dashboard application
func NewApp(analysis *app.AnalysisService, sweep *app.SweepService) (*App, error) {
	funcMap := template.FuncMap{
		"mul": func(a, b float64) float64 { return a * b },
		"fmt1": func(v float64) string {
			return fmt.Sprintf("%.1f", v)
		},
		"fmt2": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"fmt4": func(v float64) string {
			return fmt.Sprintf("%.4f", v)
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		analysis:  analysis,
		sweep:     sweep,
		templates: templates,
		log:       internal.DefaultLogger,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Pages
	a.router.Get("/", a.handleIndex)
	a.router.Post("/analyze", a.handleAnalyze)
	a.router.Get("/history", a.handleHistory)
	a.router.Get("/methodology", a.handleMethodology)

	// API endpoints
	a.router.Post("/api/analyze", a.handleAPIAnalyze)
	a.router.Get("/api/sweep", a.handleAPISweep)
	a.router.Get("/api/history", a.handleAPIHistory)

	// Report export
	a.router.Post("/export/report.xlsx", a.handleExportExcel)
}

// Start runs the HTTP server
func (a *App) Start(addr string) error {
	a.log.Info("dashboard listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the chi mux (used by tests)
func (a *App) Router() *chi.Mux {
	return a.router
}
