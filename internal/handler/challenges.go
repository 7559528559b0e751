package handler

import (
	"context"
	"net/http"

	"github.com/M-Muallim/ecosense-appv4/internal/database"
	model "github.com/M-Muallim/ecosense-appv4/internal/models"
	"github.com/M-Muallim/ecosense-appv4/internal/scanner"
	"github.com/M-Muallim/ecosense-appv4/internal/utils"
)

// GetChallenges liste le catalogue statique des challenges (lecture seule,
// les définitions sont créées hors bande).
func GetChallenges(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	rows, err := database.DB.Query(ctx, `
		SELECT id, title, description, points, tags
		FROM challenges
		ORDER BY title
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query challenges", err)
		return
	}
	defer rows.Close()

	var challenges []model.Challenge
	for rows.Next() {
		c, err := scanner.ScanChallenge(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan challenge", err)
			return
		}
		challenges = append(challenges, *c)
	}

	utils.Success(w, challenges)
}
