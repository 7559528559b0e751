package main

import (
	"context"
	"net/http"
	"os"

	"github.com/M-Muallim/ecosense-appv4/internal/api"
	"github.com/M-Muallim/ecosense-appv4/internal/config"
	"github.com/M-Muallim/ecosense-appv4/internal/database"
	"github.com/M-Muallim/ecosense-appv4/internal/handler"
	"github.com/M-Muallim/ecosense-appv4/internal/logger"
	"github.com/M-Muallim/ecosense-appv4/internal/middleware"
	"github.com/M-Muallim/ecosense-appv4/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.InitSchema(context.Background()); err != nil {
		logger.Error("Schema init failed: %v", err)
		os.Exit(1)
	}

	// Cloudinary est optionnel en dev : sans credentials, l'upload d'avatar
	// renvoie une erreur mais le reste de l'API fonctionne.
	if cloudinary, err := services.NewCloudinaryService(cfg); err != nil {
		logger.Warning("Cloudinary disabled: %v", err)
	} else {
		handler.Cloudinary = cloudinary
	}

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
