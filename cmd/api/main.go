package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"recruitment-portal-api/config"
	_ "recruitment-portal-api/docs" // Important for Swagger
	v1 "recruitment-portal-api/internal/delivery/http/v1"
	"recruitment-portal-api/internal/repository/postgres"
	"recruitment-portal-api/internal/usecase"
	"recruitment-portal-api/pkg/auth"
	"recruitment-portal-api/pkg/database"
	"recruitment-portal-api/pkg/logger"
	"recruitment-portal-api/pkg/validation"
)

// @title           Recruitment Portal API
// @version         1.0
// @description     Backend for a recruitment portal: applicants build and submit applications, recruiters review them.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting recruitment portal backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Custom validators for gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 5. Setup Store and Token Manager
	store := postgres.NewStore(dbPool)
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiresHours)*time.Hour)

	// 6. Setup UseCases
	authUC := usecase.NewAuthUsecase(store, tokens)
	personUC := usecase.NewPersonUsecase(store)
	applicationUC := usecase.NewApplicationUsecase(store)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		PersonUC:      personUC,
		ApplicationUC: applicationUC,
		Tokens:        tokens,
		Config:        cfg,
	})

	// 8. Start Server
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
