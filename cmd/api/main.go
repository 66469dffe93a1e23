// Headless JSON API for the AD-HTC analyzer. Serves the same calculation
// core as the dashboard without templates or static assets, for scripted
// parameter studies.
package main

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"adhtc/adapters/memory"
	"adhtc/adapters/postgres"
	"adhtc/app"
	"adhtc/domain/analysis"
	"adhtc/domain/core"
	"adhtc/internal/config"
	"adhtc/ports"
)

type apiServer struct {
	analysis *app.AnalysisService
	sweep    *app.SweepService
}

func (s *apiServer) handleAnalyze(c *gin.Context) {
	var in analysis.InputSet
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	report, err := s.analysis.Run(c.Request.Context(), in)
	if err != nil {
		if core.IsInvalidInput(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *apiServer) handleDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, analysis.DefaultInputSet())
}

func (s *apiServer) handleSweep(c *gin.Context) {
	base := analysis.DefaultInputSet()
	if raw, ok := c.GetQuery("turbine_inlet_temp_k"); ok {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			base.TurbineInletTempK = f
		}
	}
	minPR := queryFloat(c, "min", 4.0)
	maxPR := queryFloat(c, "max", 25.0)

	result, err := s.sweep.EfficiencyCurve(c.Request.Context(), base, minPR, maxPR)
	if err != nil {
		if core.IsInvalidInput(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sweep failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *apiServer) handleHistory(c *gin.Context) {
	records, err := s.analysis.History(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func queryFloat(c *gin.Context, name string, fallback float64) float64 {
	if raw, ok := c.GetQuery(name); ok {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var history ports.HistoryRepository
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		history, err = postgres.NewHistoryRepository(db)
		if err != nil {
			log.Fatalf("Failed to initialize history store: %v", err)
		}
	} else {
		history = memory.NewHistoryRepository(200)
	}

	server := &apiServer{
		analysis: app.NewAnalysisService(history),
		sweep:    app.NewSweepService(cfg.Sweep.Points, cfg.Sweep.Concurrency),
	}

	router := gin.Default()
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/api/defaults", server.handleDefaults)
	router.POST("/api/analyze", server.handleAnalyze)
	router.GET("/api/sweep", server.handleSweep)
	router.GET("/api/history", server.handleHistory)

	addr := ":" + cfg.Server.Port
	log.Printf("API listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
