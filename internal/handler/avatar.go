package handler

import (
	"context"
	"net/http"

	"github.com/M-Muallim/ecosense-appv4/internal/database"
	"github.com/M-Muallim/ecosense-appv4/internal/services"
	"github.com/M-Muallim/ecosense-appv4/internal/utils"
)

// Cloudinary est initialisé au démarrage par cmd/server ; nil si la
// configuration Cloudinary est absente (l'upload renvoie alors 500).
var Cloudinary *services.CloudinaryService

// UploadProfileImage reçoit l'avatar en multipart, l'envoie sur Cloudinary
// et persiste l'URL sur le profil.
func UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	// Limiter la taille du fichier à 10MB
	r.ParseMultipartForm(10 << 20)

	firebaseUID := r.FormValue("firebaseUid")
	file, header, err := r.FormFile("file")
	if err != nil || firebaseUID == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "firebaseUid and file are required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/jpg" {
		utils.ErrorSimple(w, http.StatusBadRequest, "only JPEG and PNG images are allowed")
		return
	}

	if Cloudinary == nil {
		utils.ErrorSimple(w, http.StatusInternalServerError, "image upload is not configured")
		return
	}

	ctx := context.Background()

	secureURL, err := Cloudinary.UploadProfileImage(ctx, file, firebaseUID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "cloudinary upload failed", err)
		return
	}

	if _, err := database.DB.Exec(ctx,
		`UPDATE users SET photo_url = $1, updated_at = NOW() WHERE firebase_uid = $2`,
		secureURL, firebaseUID,
	); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save avatar url", err)
		return
	}

	utils.Success(w, map[string]string{"secure_url": secureURL})
}
