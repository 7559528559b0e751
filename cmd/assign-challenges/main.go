package main

import (
	"context"
	"os"

	"github.com/M-Muallim/ecosense-appv4/internal/challenge"
	"github.com/M-Muallim/ecosense-appv4/internal/config"
	"github.com/M-Muallim/ecosense-appv4/internal/database"
	"github.com/M-Muallim/ecosense-appv4/internal/logger"
)

// Job hebdomadaire, déclenché par cron le lundi à 00:00 (heure locale).
// Relançable sans risque : la sélection de la semaine est recréée à
// l'identique de zéro, donc une exécution interrompue se corrige en relançant.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := challenge.AssignWeekly(context.Background()); err != nil {
		logger.Error("Weekly challenge assignment failed: %v", err)
		os.Exit(1)
	}

	logger.Success("Current week challenges set!")
}
