package model

import "time"

// RecycledItem est une ligne du registre append-only : un item classifié par
// l'utilisateur. Jamais modifié ni supprimé par le backend.
type RecycledItem struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Type       string    `json:"type"` // label brut du classifieur, normalisé à la lecture
	LocationID *string   `json:"locationId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
