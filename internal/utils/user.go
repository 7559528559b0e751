package utils

import (
	"context"
	"errors"

	"github.com/M-Muallim/ecosense-appv4/internal/database"
	model "github.com/M-Muallim/ecosense-appv4/internal/models"
	"github.com/jackc/pgx/v5"
)

// ErrUserNotFound est renvoyée quand aucun utilisateur ne porte ce firebase_uid.
var ErrUserNotFound = errors.New("user not found")

// GetUserByFirebaseUID résout le profil local à partir de l'identifiant
// Firebase passé dans l'URL. Presque toutes les routes commencent par là.
func GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*model.UserProfile, error) {
	var user model.UserProfile
	var displayName, photoURL, bio *string

	err := database.DB.QueryRow(ctx, `
		SELECT id, firebase_uid, email, display_name, photo_url, bio, created_at, updated_at
		FROM users
		WHERE firebase_uid = $1
	`, firebaseUID).Scan(
		&user.ID, &user.FirebaseUID, &user.Email,
		&displayName, &photoURL, &bio,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if displayName != nil {
		user.DisplayName = *displayName
	}
	if photoURL != nil {
		user.PhotoURL = *photoURL
	}
	if bio != nil {
		user.Bio = *bio
	}

	return &user, nil
}
