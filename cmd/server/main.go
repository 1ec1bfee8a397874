package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/cellwatch/towerjumps-backend-go/internal/analysis"
	"github.com/cellwatch/towerjumps-backend-go/internal/api"
	"github.com/cellwatch/towerjumps-backend-go/internal/config"
	"github.com/cellwatch/towerjumps-backend-go/internal/database"
	"github.com/cellwatch/towerjumps-backend-go/internal/handler"
	"github.com/cellwatch/towerjumps-backend-go/internal/repository"
	"github.com/cellwatch/towerjumps-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal("Failed to create data directory:", err)
		}
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	records := repository.NewRecordRepository(db)
	uploads := service.NewUploadService(records)
	jobs := service.NewAnalysisService(analysis.NewPipeline(cfg.Detector))

	router := api.SetupRouter(cfg,
		handler.NewUploadHandler(uploads),
		handler.NewAnalysisHandler(uploads, jobs),
	)

	log.Printf("Server starting on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
