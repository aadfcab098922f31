package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/ration-marketplace/internal/http/response"
	"github.com/magabrotheeeer/ration-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/ration-marketplace/internal/models"
)

// Service описывает интерфейс бизнес-логики списка воркцентров.
type Service interface {
	List(ctx context.Context) ([]*models.WorkCenter, error)
}

// Handler обрабатывает запросы на получение списка воркцентров.
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
	const op = "handlers.workcenter.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list workcenters", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("list workcenters", slog.Int("count", len(res)))
	render.JSON(w, r, response.OKWithData(res))
}
