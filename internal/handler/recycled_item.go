package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/M-Muallim/ecosense-appv4/internal/category"
	"github.com/M-Muallim/ecosense-appv4/internal/database"
	model "github.com/M-Muallim/ecosense-appv4/internal/models"
	"github.com/M-Muallim/ecosense-appv4/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// CreateRecycledItem enregistre un item classifié et crédite immédiatement
// les points fixes de sa catégorie. Un même item peut rapporter une seconde
// fois via un challenge hebdo : cumul voulu, pas de déduplication.
func CreateRecycledItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	firebaseUID := vars["firebaseUid"]

	var payload struct {
		Type       string  `json:"type"`
		LocationID *string `json:"locationId"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.Type == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "type is required")
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

	points := category.Points(payload.Type)

	item := model.RecycledItem{
		UserID:     user.ID,
		Type:       payload.Type,
		LocationID: payload.LocationID,
	}

	err = database.DB.QueryRow(ctx,
		`INSERT INTO recycled_items (id, user_id, type, location_id, created_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 RETURNING id, created_at`,
		uuid.NewString(), user.ID, payload.Type, payload.LocationID,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create recycled item", err)
		return
	}

	if err := utils.IncrementUserScore(ctx, user.ID, points); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update weighted score", err)
		return
	}

	utils.Created(w, map[string]interface{}{
		"recycledItem": item,
		"pointsAdded":  points,
	})
}
