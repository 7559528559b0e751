package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/M-Muallim/ecosense-appv4/internal/database"
	model "github.com/M-Muallim/ecosense-appv4/internal/models"
	"github.com/M-Muallim/ecosense-appv4/internal/scanner"
	"github.com/M-Muallim/ecosense-appv4/internal/utils"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

const defaultAvatar = "https://via.placeholder.com/100"

// GetLeaderboard renvoie le top 10 par weighted_score décroissant
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	rows, err := database.DB.Query(ctx, `
		SELECT u.id, COALESCE(u.display_name, ''), u.email, COALESCE(u.photo_url, ''),
			l.level, l.weighted_score
		FROM leaderboard l
		INNER JOIN users u ON u.id = l.user_id
		ORDER BY l.weighted_score DESC
		LIMIT 10
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query leaderboard", err)
		return
	}
	defer rows.Close()

	leaderboard := []model.LeaderboardRow{}
	for rows.Next() {
		var entry model.LeaderboardRow
		var email string
		if err := rows.Scan(
			&entry.ID, &entry.Name, &email, &entry.Avatar,
			&entry.Level, &entry.WeightedScore,
		); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan leaderboard row", err)
			return
		}

		// Fallbacks d'affichage : partie locale de l'email, avatar générique
		if entry.Name == "" {
			entry.Name = strings.SplitN(email, "@", 2)[0]
		}
		if entry.Avatar == "" {
			entry.Avatar = defaultAvatar
		}
		entry.Rank = len(leaderboard) + 1

		leaderboard = append(leaderboard, entry)
	}
	if err := rows.Err(); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not read leaderboard rows", err)
		return
	}

	utils.Success(w, leaderboard)
}

// GetUserLeaderboardEntry renvoie l'entrée brute d'un utilisateur
func GetUserLeaderboardEntry(w http.ResponseWriter, r *http.Request) {
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

	row := database.DB.QueryRow(ctx,
		`SELECT id, user_id, level, weighted_score, leveled_up_at
		 FROM leaderboard WHERE user_id = $1`,
		user.ID,
	)
	entry, err := scanner.ScanLeaderboardEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.ErrorSimple(w, http.StatusNotFound, "leaderboard entry not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not load leaderboard entry", err)
		return
	}

	utils.Success(w, entry)
}
