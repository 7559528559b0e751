package api

import (
	"net/http"

	"github.com/M-Muallim/ecosense-appv4/internal/handler"
	"github.com/M-Muallim/ecosense-appv4/internal/middleware"
	"github.com/M-Muallim/ecosense-appv4/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Users
	r.HandleFunc("/users", handler.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/{firebaseUid}", handler.GetUser).Methods(http.MethodGet)
	r.HandleFunc("/users/{firebaseUid}", handler.UpdateUser).Methods(http.MethodPut, http.MethodPatch)

	// Recycling core
	r.HandleFunc("/users/{firebaseUid}/stats", handler.GetUserStats).Methods(http.MethodGet)
	r.HandleFunc("/users/{firebaseUid}/level", handler.GetUserLevel).Methods(http.MethodGet)
	r.HandleFunc("/users/{firebaseUid}/challenges", handler.GetUserChallenges).Methods(http.MethodGet)
	r.HandleFunc("/users/{firebaseUid}/recycled-items", handler.CreateRecycledItem).Methods(http.MethodPost)
	r.HandleFunc("/users/{firebaseUid}/complete-challenge", handler.CompleteChallenge).Methods(http.MethodPost)

	// Challenge catalog
	r.HandleFunc("/challenges", handler.GetChallenges).Methods(http.MethodGet)

	// Leaderboard
	r.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/{firebaseUid}", handler.GetUserLeaderboardEntry).Methods(http.MethodGet)

	// Images
	r.HandleFunc("/upload-profile-image", handler.UploadProfileImage).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
