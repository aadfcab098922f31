// Package create реализует HTTP-обработчик создания воркцентров.
package create

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/ration-marketplace/internal/http/response"
	"github.com/magabrotheeeer/ration-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/ration-marketplace/internal/models"
)

// Service описывает интерфейс бизнес-логики создания воркцентра.
type Service interface {
	Create(ctx context.Context, req models.DummyWorkCenter) error
}

// Handler обрабатывает запросы на создание воркцентра.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
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
	const op = "handlers.workcenter.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyWorkCenter
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("name", req.Name))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.service.Create(r.Context(), req); err != nil {
		log.Error("failed to create workcenter", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("workcenter created", slog.String("name", req.Name))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithMessage(fmt.Sprintf("Work Center %s successfully created", req.Name)))
}
