// Package info содержит обработчик сводки о пользователе.
package info

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ration-marketplace/internal/http/response"
	"github.com/magabrotheeeer/ration-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/ration-marketplace/internal/models"
)

// Service описывает интерфейс бизнес-логики сводки о пользователе.
type Service interface {
	GetUserInfo(ctx context.Context, userUID string) (*models.UserInfo, error)
}

// Handler обрабатывает запросы на получение сводки о пользователе.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.info"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID := chi.URLParam(r, "userId")

	res, err := h.service.GetUserInfo(r.Context(), userUID)
	if err != nil {
		log.Error("failed to get user info", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("user info", slog.String("user_uid", userUID))
	render.JSON(w, r, response.OKWithData(res))
}
