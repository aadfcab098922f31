// Package assignworkcenter содержит обработчик назначения воркцентра пользователю.
package assignworkcenter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/ration-marketplace/internal/http/response"
	"github.com/magabrotheeeer/ration-marketplace/internal/lib/sl"
)

// Request содержит данные для назначения воркцентра.
type Request struct {
	WorkCenterID string `json:"workCenterId" validate:"required,uuid"`
}

// Service описывает интерфейс бизнес-логики назначения воркцентра.
type Service interface {
	AssignWorkCenter(ctx context.Context, userUID, workCenterUID string) error
}

// Handler обрабатывает запросы на назначение воркцентра.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate // Валидатор структуры входящих данных
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.assignworkcenter"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		validateErr := err.(validator.ValidationErrors)
		log.Error("invalid request", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(validateErr))
		return
	}

	userUID := chi.URLParam(r, "userId")

	if err := h.service.AssignWorkCenter(r.Context(), userUID, req.WorkCenterID); err != nil {
		log.Error("failed to assign workcenter", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("workcenter assigned",
		slog.String("user_uid", userUID),
		slog.String("workcenter_uid", req.WorkCenterID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithMessage("Work Center successfully assigned"))
}
