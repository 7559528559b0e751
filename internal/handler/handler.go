package handler

import (
	"net/http"

	"github.com/M-Muallim/ecosense-appv4/internal/utils"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
