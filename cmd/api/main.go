package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"alfredoptarigan/salary-estimator/internal/config"
	"alfredoptarigan/salary-estimator/internal/handlers"
	"alfredoptarigan/salary-estimator/internal/logger"
	"alfredoptarigan/salary-estimator/internal/middleware"
	"alfredoptarigan/salary-estimator/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store, err := services.OpenStore(cfg)
	if err != nil {
		logger.Fatal("failed to initialize artifact store", zap.Error(err))
	}
	logger.Info("artifact store ready", zap.String("store", store.Describe()))

	// Dataset and model are loaded once and shared read-only by every request.
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	res, err := services.LoadResources(ctx, store,
		cfg.Data.DatasetPath,
		cfg.Data.ModelPath,
		services.NewSynthesizer(cfg.Data.SynthSeed),
	)
	cancel()
	if err != nil {
		logger.Fatal("failed to load resources", zap.Error(err))
	}
	logger.Info("resources loaded",
		zap.Int("dataset_rows", res.Dataset.Len()),
		zap.String("model", res.Artifact.Regressor.Kind()),
		zap.Int("features", len(res.Artifact.FeatureNames)),
	)

	for col, values := range res.VocabularyGaps() {
		logger.Warn("dataset offers values the model was not trained on",
			zap.String("column", string(col)),
			zap.Strings("values", values),
		)
	}

	estimator := services.NewEstimatorService(res, services.CurrencyFormatter{Symbol: cfg.Display.CurrencySymbol})

	formHandler := handlers.NewFormHandler(estimator)
	predictHandler := handlers.NewPredictHandler(estimator)

	app := fiber.New(fiber.Config{
		AppName:      "Salary Estimator",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Recover(logger.Log))
	app.Use(middleware.RequestLogger(logger.Log))
	app.Use(middleware.Metrics())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.SetupRoutes(app, formHandler, predictHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			logger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
