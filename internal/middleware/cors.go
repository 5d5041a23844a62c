package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS разрешает кросс-доменные запросы с перечисленных origin, включая credentials
func CORS(origins []string) func(next http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Request-Id"}),
		handlers.ExposedHeaders([]string{"X-Request-Id"}),
		handlers.AllowCredentials(),
	)
}
