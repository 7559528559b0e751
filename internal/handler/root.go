package handler

import (
	"net/http"

	"github.com/M-Muallim/ecosense-appv4/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "EcoSense API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"users": []map[string]string{
				{"method": "POST", "path": "/users", "description": "Créer un utilisateur (+ entrée leaderboard)"},
				{"method": "GET", "path": "/users", "description": "Récupérer tous les utilisateurs"},
				{"method": "GET", "path": "/users/{firebaseUid}", "description": "Récupérer un utilisateur"},
				{"method": "PUT", "path": "/users/{firebaseUid}", "description": "Mettre à jour un profil"},
				{"method": "GET", "path": "/users/{firebaseUid}/stats", "description": "Stats de recyclage de la semaine"},
				{"method": "GET", "path": "/users/{firebaseUid}/level", "description": "Niveau et progression"},
				{"method": "GET", "path": "/users/{firebaseUid}/challenges", "description": "Challenges de la semaine avec avancement"},
				{"method": "POST", "path": "/users/{firebaseUid}/recycled-items", "description": "Enregistrer un item recyclé"},
				{"method": "POST", "path": "/users/{firebaseUid}/complete-challenge", "description": "Compléter un challenge manuellement"},
			},
			"challenges": []map[string]string{
				{"method": "GET", "path": "/challenges", "description": "Catalogue des challenges"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard", "description": "Top 10 par weighted_score"},
				{"method": "GET", "path": "/leaderboard/{firebaseUid}", "description": "Entrée leaderboard d'un utilisateur"},
			},
			"images": []map[string]string{
				{"method": "POST", "path": "/upload-profile-image", "description": "Upload avatar (multipart)"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
	}

	utils.Success(w, routes)
}
