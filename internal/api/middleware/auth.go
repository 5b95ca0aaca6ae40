package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/islandbreeze/booking-service/internal/api/handlers"
)

// AdminKeyHeader заголовок с ключом администратора каталога
const AdminKeyHeader = "X-Admin-Key"

// AdminAuth закрывает административные маршруты каталога ключом из конфига.
// Пустой ключ в конфиге отключает административный API целиком.
func AdminAuth(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				handlers.RespondForbidden(w, "административный API отключен")
				return
			}

			provided := r.Header.Get(AdminKeyHeader)
			if provided == "" {
				handlers.RespondUnauthorized(w, "требуется заголовок "+AdminKeyHeader)
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				handlers.RespondForbidden(w, "неверный ключ администратора")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
