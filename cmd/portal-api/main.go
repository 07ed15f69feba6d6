package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/studieportaal/regiovoorlichting-api/api/swagger"
	"github.com/studieportaal/regiovoorlichting-api/internal/handler"
	"github.com/studieportaal/regiovoorlichting-api/internal/middleware"
	"github.com/studieportaal/regiovoorlichting-api/internal/models"
	"github.com/studieportaal/regiovoorlichting-api/internal/repository"
	"github.com/studieportaal/regiovoorlichting-api/internal/service"
	"github.com/studieportaal/regiovoorlichting-api/pkg/config"
	"github.com/studieportaal/regiovoorlichting-api/pkg/jobs"
	"github.com/studieportaal/regiovoorlichting-api/pkg/logger"
	corsmiddleware "github.com/studieportaal/regiovoorlichting-api/pkg/middleware/cors"
	reqidmiddleware "github.com/studieportaal/regiovoorlichting-api/pkg/middleware/requestid"
	"github.com/studieportaal/regiovoorlichting-api/pkg/storage"
)

// @title Regiovoorlichting API
// @version 1.0.0
// @description Regional study-orientation portal backend
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()

	activityRepo := repository.NewCollection[models.Activity](filepath.Join(cfg.Data.Dir, "activities.json"), logr)
	eventRepo := repository.NewCollection[models.Event](filepath.Join(cfg.Data.Dir, "events.json"), logr)
	videoRepo := repository.NewCollection[models.Video](filepath.Join(cfg.Data.Dir, "videos.json"), logr)
	regionRepo := repository.NewRegionRepository(filepath.Join(cfg.Data.Dir, "regions.json"), logr)

	metricsSvc := service.NewMetricsService()
	activitySvc := service.NewActivityService(activityRepo, validate, logr)
	eventSvc := service.NewEventService(eventRepo, validate, logr)
	videoSvc := service.NewVideoService(videoRepo, validate, logr)
	regionSvc := service.NewRegionService(regionRepo, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if _, err := os.Stat(cfg.Data.Dir); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "data directory unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api := r.Group("/api")
	{
		activityHandler := handler.NewActivityHandler(activitySvc)
		api.GET("/activities", activityHandler.List)
		api.POST("/activities", activityHandler.Create)
		api.PUT("/activities", activityHandler.Update)
		api.DELETE("/activities", activityHandler.Delete)

		eventHandler := handler.NewEventHandler(eventSvc)
		api.GET("/events", eventHandler.List)
		api.POST("/events", eventHandler.Create)
		api.PUT("/events", eventHandler.Update)
		api.DELETE("/events", eventHandler.Delete)

		videoHandler := handler.NewVideoHandler(videoSvc)
		api.GET("/videos", videoHandler.List)
		api.POST("/videos", videoHandler.Create)
		api.PUT("/videos", videoHandler.Update)
		api.DELETE("/videos", videoHandler.Delete)

		regionHandler := handler.NewRegionHandler(regionSvc)
		api.GET("/regions", regionHandler.List)
	}

	if cfg.Exports.Enabled {
		exportStore, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init export storage", "error", err)
		}
		signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
		exportSvc := service.NewExportService(
			service.PortalDatasets(activityRepo, eventRepo, videoRepo),
			exportStore,
			signer,
			metricsSvc,
			logr,
		)
		queue := jobs.NewQueue("exports", exportSvc.Process, jobs.QueueConfig{
			Workers:    cfg.Exports.WorkerConcurrency,
			MaxRetries: cfg.Exports.WorkerRetries,
			Logger:     logr,
		})
		exportSvc.SetQueue(queue)
		queue.Start(context.Background())
		defer queue.Stop()

		exportHandler := handler.NewExportHandler(exportSvc)
		api.POST("/exports", exportHandler.Create)
		api.GET("/exports/download", exportHandler.Download)
		api.GET("/exports/:id", exportHandler.Get)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "data_dir", cfg.Data.Dir)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
