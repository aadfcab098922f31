package read

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

// Service описывает интерфейс бизнес-логики чтения воркцентра.
type Service interface {
	Read(ctx context.Context, uid string) (*models.WorkCenter, error)
}

// Handler обрабатывает запросы на получение воркцентра по идентификатору.
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
	const op = "handlers.workcenter.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid := chi.URLParam(r, "id")
	if uid == "" {
		log.Error("workcenter id is empty")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("workcenter id is required"))
		return
	}

	res, err := h.service.Read(r.Context(), uid)
	if err != nil {
		log.Error("failed to read workcenter", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("read workcenter", slog.String("uid", uid))
	render.JSON(w, r, response.OKWithData(res))
}
