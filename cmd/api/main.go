package main

import (
	"fmt"
	"log"
	"os"

	"tou-pricegen/internal/api/handlers"
	"tou-pricegen/internal/api/middleware"
	"tou-pricegen/internal/config"
	"tou-pricegen/internal/recorder"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("load config %s: %v", path, err)
		}
		cfg = loaded
		log.Printf("Loaded config from %s (tariff=%s)", path, cfg.Tariff.Name)
	}

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Recorder.SQLitePath != "" {
		r, err := recorder.NewSQLiteRecorder(cfg.Recorder.SQLitePath)
		if err != nil {
			log.Fatalf("open recorder: %v", err)
		}
		defer r.Close()
		rec = r
		log.Printf("Recording runs to %s", cfg.Recorder.SQLitePath)
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	seriesHandler := handlers.NewSeriesHandler(cfg, rec)
	tariffHandler := handlers.NewTariffHandler(cfg)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/tariff", tariffHandler.GetTariff)
		api.POST("/series", seriesHandler.GenerateSeries)
		api.GET("/series.csv", seriesHandler.GenerateSeriesCSV)
		api.GET("/series/stats", seriesHandler.SeriesStats)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
