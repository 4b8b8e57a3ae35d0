package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-backend/api/routes"
	"github.com/bloodlink/bloodlink-backend/internal/config"
	"github.com/bloodlink/bloodlink-backend/internal/handlers"
	"github.com/bloodlink/bloodlink-backend/internal/metrics"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
	mongorepo "github.com/bloodlink/bloodlink-backend/internal/repositories/mongodb"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/bloodlink/bloodlink-backend/pkg/jwt"
	"github.com/bloodlink/bloodlink-backend/pkg/mongodb"
)

func main() {
	// A missing .env is fine; the environment takes over
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT.Secret is not configured")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)
	timeout := cfg.MongoDB.QueryTimeout

	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db, timeout)
	var donorRepo repositories.DonorRepository = mongorepo.NewDonorRepository(db, timeout)
	var requestRepo repositories.BloodRequestRepository = mongorepo.NewBloodRequestRepository(db, timeout)
	var donationRepo repositories.DonationRepository = mongorepo.NewDonationRepository(db, timeout)
	var activityRepo repositories.ActivityRepository = mongorepo.NewActivityRepository(db, timeout)

	tokens := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	authService := services.NewAuthService(userRepo, donorRepo, activityRepo, tokens, appMetrics, logger)
	donorService := services.NewDonorService(donorRepo, userRepo)
	requestService := services.NewRequestService(requestRepo, donorRepo, userRepo, activityRepo, appMetrics, logger)
	donationService := services.NewDonationService(requestRepo, donorRepo, donationRepo, activityRepo, appMetrics, logger)
	statsService := services.NewStatsService(userRepo, donorRepo, requestRepo, donationRepo, activityRepo)

	handlerDeps := routes.HandlerDependencies{
		AuthHandler:     handlers.NewAuthHandler(authService),
		DonorHandler:    handlers.NewDonorHandler(donorService),
		RequestHandler:  handlers.NewRequestHandler(requestService),
		DonationHandler: handlers.NewDonationHandler(donationService),
		StatsHandler:    handlers.NewStatsHandler(statsService),
	}

	router := routes.SetupRouter(cfg, logger, tokens, authService, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
