// Package list содержит обработчик фильтрованного списка рационов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/ration-marketplace/internal/http/response"
	"github.com/magabrotheeeer/ration-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/ration-marketplace/internal/models"
)

// Service описывает интерфейс бизнес-логики списка рационов.
type Service interface {
	List(ctx context.Context, dummy models.DummyRationFilter) ([]models.RationView, error)
}

// Handler обрабатывает запросы на получение списка рационов по фильтру.
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
	const op = "handlers.ration.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRationFilter
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

	views, err := h.service.List(r.Context(), req)
	if err != nil {
		log.Error("failed to list rations", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("list rations", slog.Int("count", len(views)))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(views))
}
