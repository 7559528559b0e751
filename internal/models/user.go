package model

import (
	"time"
)

// UserProfile est le profil applicatif d'un utilisateur. L'identité elle-même
// (mot de passe, tokens) est gérée par Firebase ; on ne stocke que le lien
// via FirebaseUID.
type UserProfile struct {
	ID          string    `json:"id"`
	FirebaseUID string    `json:"firebaseUid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName,omitempty"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
