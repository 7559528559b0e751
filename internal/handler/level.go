package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/M-Muallim/ecosense-appv4/internal/database"
	"github.com/M-Muallim/ecosense-appv4/internal/leveling"
	model "github.com/M-Muallim/ecosense-appv4/internal/models"
	"github.com/M-Muallim/ecosense-appv4/internal/scanner"
	"github.com/M-Muallim/ecosense-appv4/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

// getOrCreateLeaderboardEntry charge l'entrée leaderboard d'un utilisateur,
// en la créant au niveau 1 si elle manque (anciens comptes d'avant la
// création automatique à l'inscription).
func getOrCreateLeaderboardEntry(ctx context.Context, userID string) (*model.LeaderboardEntry, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT id, user_id, level, weighted_score, leveled_up_at
		 FROM leaderboard WHERE user_id = $1`,
		userID,
	)
	entry, err := scanner.ScanLeaderboardEntry(row)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	row = database.DB.QueryRow(ctx,
		`INSERT INTO leaderboard (id, user_id, level, weighted_score, leveled_up_at)
		 VALUES ($1, $2, 1, 0, NOW())
		 RETURNING id, user_id, level, weighted_score, leveled_up_at`,
		uuid.NewString(), userID,
	)
	return scanner.ScanLeaderboardEntry(row)
}

// GetUserLevel calcule le niveau et la progression dans le palier courant.
// Seuls les items créés strictement après leveled_up_at comptent ; quand le
// niveau calculé dépasse le niveau stocké, on persiste et on remet la fenêtre
// à zéro (les items d'avant le level-up ne sont pas reportés).
func GetUserLevel(w http.ResponseWriter, r *http.Request) {
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

	entry, err := getOrCreateLeaderboardEntry(ctx, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load leaderboard entry", err)
		return
	}

	var total int
	err = database.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM recycled_items WHERE user_id = $1 AND created_at > $2`,
		user.ID, entry.LeveledUpAt,
	).Scan(&total)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not count recycled items", err)
		return
	}

	result := leveling.Compute(total)

	// No-op si rappelé sans nouvel item : le niveau calculé ne dépasse pas
	// le niveau stocké.
	if result.Level > entry.Level {
		if _, err := database.DB.Exec(ctx,
			`UPDATE leaderboard SET level = $1, leveled_up_at = NOW() WHERE id = $2`,
			result.Level, entry.ID,
		); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not persist level up", err)
			return
		}
		entry.Level = result.Level
	}

	utils.Success(w, map[string]interface{}{
		"level":    entry.Level,
		"progress": result.Progress,
		"needed":   result.Needed,
		"total":    result.Total,
	})
}
