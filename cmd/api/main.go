package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"

	"go-resume-collector/config"
	_ "go-resume-collector/docs" // Important for Swagger
	v1 "go-resume-collector/internal/delivery/http/v1"
	"go-resume-collector/internal/repository/memory"
	"go-resume-collector/internal/usecase"
	"go-resume-collector/pkg/filestore"
	"go-resume-collector/pkg/logger"
	"go-resume-collector/pkg/validation"
)

// @title           Resume Collector API
// @version         1.0
// @description     REST service for collecting candidate resumes with validation and filtering.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting resume collector", "port", cfg.Port,
		"upload_dir", cfg.UploadDir, "max_file_size", cfg.MaxFileSize)

	// 3. Setup File Store
	files, err := filestore.NewLocalStore(afero.NewOsFs(), cfg.UploadDir, cfg.MaxFileSize)
	if err != nil {
		logger.Log.Error("Failed to prepare upload directory", "error", err)
		os.Exit(1)
	}

	// 4. Setup Candidate Store
	candidateStore := memory.NewCandidateStore()

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	candidateUC := usecase.NewCandidateUsecase(candidateStore, files, validate)
	healthUC := usecase.NewHealthUsecase(cfg.AppVersion)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC: candidateUC,
		HealthUC:    healthUC,
		Config:      cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
