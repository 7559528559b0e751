package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/M-Muallim/ecosense-appv4/internal/database"
	"github.com/M-Muallim/ecosense-appv4/internal/utils"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

// CompleteChallenge est le chemin de complétion manuel, indépendant de
// l'évaluation automatique par seuil. 404 si le user_challenge n'existe pas,
// 400 s'il est déjà complété.
func CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	firebaseUID := vars["firebaseUid"]

	var payload struct {
		ChallengeID string `json:"challengeId"`
		WeekStart   string `json:"weekStart"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.ChallengeID == "" || payload.WeekStart == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "challengeId and weekStart are required")
		return
	}

	weekStart, err := time.Parse(time.RFC3339, payload.WeekStart)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "weekStart must be an RFC 3339 timestamp")
		return
	}

	ctx := context.Background()

	user, err := utils.GetUserByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			utils.ErrorSimple(w, http.StatusNotFound, "user not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not get user", err)
		return
	}

	uc, err := getUserChallenge(ctx, user.ID, payload.ChallengeID, weekStart)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.ErrorSimple(w, http.StatusNotFound, "user challenge not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not load user challenge", err)
		return
	}
	if uc.Completed {
		utils.ErrorSimple(w, http.StatusBadRequest, "challenge already completed")
		return
	}

	var points int
	err = database.DB.QueryRow(ctx,
		`SELECT points FROM challenges WHERE id = $1`, payload.ChallengeID,
	).Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.ErrorSimple(w, http.StatusNotFound, "challenge not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not load challenge", err)
		return
	}

	// Même garde conditionnelle que l'évaluation automatique : si une autre
	// requête complète entre la lecture et l'update, on renvoie le conflit
	// au lieu de créditer une deuxième fois.
	tag, err := database.DB.Exec(ctx,
		`UPDATE user_challenges
		 SET completed = TRUE, completed_at = NOW()
		 WHERE id = $1 AND completed = FALSE`,
		uc.ID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not complete challenge", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "challenge already completed")
		return
	}

	if err := utils.IncrementUserScore(ctx, user.ID, points); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update weighted score", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"pointsAdded": points,
	})
}
