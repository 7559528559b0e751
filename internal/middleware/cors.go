package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSMiddleware autorise l'app mobile (origines multiples en dev) à appeler
// l'API depuis n'importe quelle origine.
func CORSMiddleware(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler(next)
}
