package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ration-marketplace/internal/http/response"
)

// CheckUserMiddleware сверяет сегмент пути {userId} с subject токена из контекста.
//
// Несовпадение отклоняет запрос до вызова бизнес-логики.
func CheckUserMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userUID, ok := r.Context().Value(UserUID).(string)
			if !ok || userUID == "" {
				log.Error("user identification missing")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user identification missing"))
				return
			}

			pathUserID := chi.URLParam(r, "userId")
			if pathUserID != userUID {
				log.Error("token subject mismatch",
					slog.String("path_user_id", pathUserID),
					slog.String("token_sub", userUID))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("token sub does not match user id"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
