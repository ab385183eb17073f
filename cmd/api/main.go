package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"harvest-guard/internal/advisory"
	"harvest-guard/internal/api/handlers"
	"harvest-guard/internal/api/middleware"
	"harvest-guard/internal/config"
	"harvest-guard/internal/notify"
	"harvest-guard/internal/weather"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
		log.Printf("Loaded config from %s", path)
	}

	sim := weather.NewWithSource(cfg.RegionProfiles, randSource())
	composer := advisory.NewWithNames(cfg.CropNames, cfg.StorageNames)

	var deliverer notify.Deliverer
	if cfg.Notifications.Enabled {
		deliverer = notify.LogDeliverer{}
	}
	trigger := notify.NewTrigger(deliverer)

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	assessHandler := handlers.NewAssessHandler(cfg, sim, composer, trigger)
	forecastHandler := handlers.NewForecastHandler(sim)
	catalogHandler := handlers.NewCatalogHandler(sim, composer)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/assess", assessHandler.RunAssessment)
		api.GET("/forecast", forecastHandler.GetForecast)

		api.GET("/regions", catalogHandler.ListRegions)
		api.GET("/crops", catalogHandler.ListCrops)
		api.GET("/storage-types", catalogHandler.ListStorageTypes)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func randSource() rand.Source {
	return rand.NewSource(time.Now().UnixNano())
}
