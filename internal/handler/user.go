package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/M-Muallim/ecosense-appv4/internal/database"
	model "github.com/M-Muallim/ecosense-appv4/internal/models"
	"github.com/M-Muallim/ecosense-appv4/internal/scanner"
	"github.com/M-Muallim/ecosense-appv4/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// CreateUser crée le profil et son entrée leaderboard (level 1, score 0).
// L'authentification est déléguée à Firebase : on ne reçoit que le firebaseUid
// déjà validé côté app.
func CreateUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FirebaseUID string `json:"firebaseUid"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
		PhotoURL    string `json:"photoUrl"`
		Bio         string `json:"bio"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.FirebaseUID == "" || payload.Email == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "firebaseUid and email are required")
		return
	}

	ctx := context.Background()

	var user model.UserProfile
	user.FirebaseUID = payload.FirebaseUID
	user.Email = payload.Email
	user.DisplayName = payload.DisplayName
	user.PhotoURL = payload.PhotoURL
	user.Bio = payload.Bio

	err := database.DB.QueryRow(ctx,
		`INSERT INTO users (id, firebase_uid, email, display_name, photo_url, bio, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		 RETURNING id, created_at, updated_at`,
		uuid.NewString(), payload.FirebaseUID, payload.Email,
		utils.StringToNullString(payload.DisplayName),
		utils.StringToNullString(payload.PhotoURL),
		utils.StringToNullString(payload.Bio),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create user", err)
		return
	}

	// Entrée leaderboard créée une seule fois, à l'inscription
	if _, err := database.DB.Exec(ctx,
		`INSERT INTO leaderboard (id, user_id, level, weighted_score, leveled_up_at)
		 VALUES ($1, $2, 1, 0, NOW())`,
		uuid.NewString(), user.ID,
	); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create leaderboard entry", err)
		return
	}

	utils.Created(w, user)
}

func GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()
	rows, err := database.DB.Query(ctx, `
		SELECT id, firebase_uid, email, display_name, photo_url, bio, created_at, updated_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query users", err)
		return
	}
	defer rows.Close()

	var users []model.UserProfile
	for rows.Next() {
		user, err := scanner.ScanUserProfile(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan user row", err)
			return
		}
		users = append(users, *user)
	}

	utils.Success(w, users)
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	firebaseUID := vars["firebaseUid"]

	user, err := utils.GetUserByFirebaseUID(context.Background(), firebaseUID)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			utils.ErrorSimple(w, http.StatusNotFound, "user not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not get user", err)
		return
	}

	utils.Success(w, user)
}

// UpdateUser met à jour les champs modifiables du profil (nom, photo, bio)
func UpdateUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	firebaseUID := vars["firebaseUid"]

	var payload struct {
		DisplayName string `json:"displayName"`
		PhotoURL    string `json:"photoUrl"`
		Bio         string `json:"bio"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := context.Background()
	tag, err := database.DB.Exec(ctx,
		`UPDATE users SET display_name=$1, photo_url=$2, bio=$3, updated_at=NOW()
		 WHERE firebase_uid=$4`,
		utils.StringToNullString(payload.DisplayName),
		utils.StringToNullString(payload.PhotoURL),
		utils.StringToNullString(payload.Bio),
		firebaseUID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update user", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.ErrorSimple(w, http.StatusNotFound, "user not found")
		return
	}

	user, err := utils.GetUserByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not reload user", err)
		return
	}

	utils.Success(w, user)
}
