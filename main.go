package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"adhtc/adapters/memory"
	"adhtc/adapters/postgres"
	"adhtc/app"
	"adhtc/internal/config"
	"adhtc/ports"
	"adhtc/ui"
)

// initHistory picks the history backend: Postgres when DATABASE_URL is set,
// an in-memory store otherwise. The dashboard works identically either way.
func initHistory(cfg *config.Config) (ports.HistoryRepository, func(), error) {
	if cfg.Database.URL == "" {
		log.Println("No DATABASE_URL configured, keeping analysis history in memory")
		return memory.NewHistoryRepository(200), func() {}, nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	repo, err := postgres.NewHistoryRepository(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return repo, func() { db.Close() }, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	history, closeHistory, err := initHistory(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize history store: %v", err)
	}
	defer closeHistory()

	analysisService := app.NewAnalysisService(history)
	sweepService := app.NewSweepService(cfg.Sweep.Points, cfg.Sweep.Concurrency)

	dashboard, err := ui.NewApp(analysisService, sweepService)
	if err != nil {
		log.Fatalf("Failed to create dashboard: %v", err)
	}

	if cfg.Profiling.Enabled {
		go func() {
			log.Printf("pprof listening on :%s", cfg.Profiling.Port)
			if err := http.ListenAndServe(":"+cfg.Profiling.Port, nil); err != nil {
				log.Printf("pprof server stopped: %v", err)
			}
		}()
	}

	if err := dashboard.Start(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
