// Package assignration содержит обработчик покупки рациона пользователем.
package assignration

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

// Request содержит данные для покупки рациона.
type Request struct {
	RationID string `json:"rationId" validate:"required,uuid"`
}

// Service описывает интерфейс бизнес-логики покупки рациона.
type Service interface {
	BuyRation(ctx context.Context, buyerUID, rationUID string) error
}

// Handler обрабатывает запросы на покупку рациона.
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
	const op = "handlers.user.assignration"

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

	buyerUID := chi.URLParam(r, "userId")

	if err := h.service.BuyRation(r.Context(), buyerUID, req.RationID); err != nil {
		log.Error("failed to buy ration", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("ration bought",
		slog.String("buyer_uid", buyerUID),
		slog.String("ration_uid", req.RationID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithMessage("Ration successfully assigned"))
}
