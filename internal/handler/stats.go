package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/M-Muallim/ecosense-appv4/internal/category"
	"github.com/M-Muallim/ecosense-appv4/internal/challenge"
	"github.com/M-Muallim/ecosense-appv4/internal/database"
	"github.com/M-Muallim/ecosense-appv4/internal/utils"
	"github.com/gorilla/mux"
)

// weeklyStats compte les items recyclés d'un utilisateur depuis weekStart,
// groupés par catégorie canonique. Chaque ligne tombe dans exactement un
// bucket : la somme des valeurs égale le nombre de lignes qualifiées.
func weeklyStats(ctx context.Context, userID string, weekStart time.Time) (map[string]int, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT type FROM recycled_items WHERE user_id = $1 AND created_at >= $2`,
		userID, weekStart,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := map[string]int{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		stats[category.Normalize(raw)]++
	}
	return stats, rows.Err()
}

// GetUserStats renvoie les compteurs par catégorie de la semaine courante
func GetUserStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	firebaseUID := vars["firebaseUid"]

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

	weekStart := challenge.WeekStart(time.Now())

	stats, err := weeklyStats(ctx, user.ID, weekStart)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch user stats", err)
		return
	}

	utils.Success(w, stats)
}
