// Package create содержит обработчик создания рационов.
package create

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
	"github.com/magabrotheeeer/ration-marketplace/internal/models"
)

// Service описывает интерфейс бизнес-логики создания рационов.
type Service interface {
	Create(ctx context.Context, creatorUID string, dummy models.DummyRation) error
}

// Handler обрабатывает запросы на создание рационов.
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
	const op = "handlers.ration.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRation
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

	creatorUID := chi.URLParam(r, "userId")

	if err := h.service.Create(r.Context(), creatorUID, req); err != nil {
		log.Error("failed to create rations", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("rations created",
		slog.String("creator", creatorUID),
		slog.Int("count", req.NumberOfRations))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithMessage("Rations successfully created"))
}
