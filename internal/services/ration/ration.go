// Package services содержит бизнес-логику создания и выборки рационов.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/ration-marketplace/internal/lib/errs"
	"github.com/magabrotheeeer/ration-marketplace/internal/models"
)

// Верхняя граница количества рационов в одном запросе на создание.
const maxRationsPerRequest = 5

// RationRepository определяет методы для работы с рационами в хранилище.
type RationRepository interface {
	// CreateRation вставляет новую запись рациона и возвращает её UID.
	CreateRation(ctx context.Context, ration models.Ration) (string, error)
	// ListRations возвращает рационы, удовлетворяющие фильтру.
	ListRations(ctx context.Context, filter models.RationFilter) ([]*models.Ration, error)
}

// UserReader возвращает пользователя по UID.
type UserReader interface {
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// RationService реализует бизнес-правила создания и выборки рационов.
type RationService struct {
	rations RationRepository
	users   UserReader
	log     *slog.Logger
}

// NewRationService создает новый экземпляр RationService.
func NewRationService(rations RationRepository, users UserReader, log *slog.Logger) *RationService {
	return &RationService{
		rations: rations,
		users:   users,
		log:     log,
	}
}

// Create создает req.NumberOfRations независимых рационов от имени creatorUID.
//
// Создатель обязан быть приписан к целевому воркцентру; пользователь без
// назначения не проходит проверку. Записи вставляются последовательно, по
// одной на итерацию: ошибка в середине цикла оставляет уже вставленные
// рационы в хранилище, компенсирующего отката нет.
func (s *RationService) Create(ctx context.Context, creatorUID string, req models.DummyRation) error {
	user, err := s.users.GetUser(ctx, creatorUID)
	if err != nil {
		return err
	}
	if user.WorkCenterUID == nil || *user.WorkCenterUID != req.WorkCenterID {
		return errs.NotAllowed("user can't create a ration in other workcenter")
	}
	if req.NumberOfRations > maxRationsPerRequest {
		return errs.NotAllowed("you can't create more than five rations")
	}

	for i := 0; i < req.NumberOfRations; i++ {
		ration := models.Ration{
			UID:           uuid.New().String(),
			Name:          req.Name,
			Prize:         req.Prize,
			Photo:         "#",
			CreatedBy:     creatorUID,
			WorkCenterUID: req.WorkCenterID,
			CreationDate:  time.Now().UTC(),
		}
		if _, err := s.rations.CreateRation(ctx, ration); err != nil {
			return err
		}
		s.log.Info("created new ration", slog.String("uid", ration.UID),
			slog.String("created_by", creatorUID))
	}
	return nil
}

// List возвращает публичные проекции рационов, удовлетворяющих фильтру.
// nil-поля фильтра отбрасываются; пустой фильтр возвращает все рационы
// в порядке хранения.
func (s *RationService) List(ctx context.Context, req models.DummyRationFilter) ([]models.RationView, error) {
	filter := models.RationFilter{
		Name:       req.Name,
		Prize:      req.Prize,
		CreatedBy:  req.CreatedBy,
		WorkCenter: req.WorkCenter,
		Sold:       req.Sold,
	}

	rations, err := s.rations.ListRations(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]models.RationView, 0, len(rations))
	for _, ration := range rations {
		views = append(views, models.RationView{
			Photo:        ration.Photo,
			RationID:     ration.UID,
			Prize:        ration.Prize,
			CreatedBy:    ration.CreatedBy,
			CreationDate: ration.CreationDate,
			Name:         ration.Name,
			WorkCenter:   ration.WorkCenterUID,
		})
	}
	return views, nil
}
