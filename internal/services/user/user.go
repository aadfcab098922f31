// Package services содержит бизнес-логику операций над пользователем:
// назначение воркцентра, покупка рациона и сводка о пользователе.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/ration-marketplace/internal/lib/errs"
	"github.com/magabrotheeeer/ration-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/ration-marketplace/internal/models"
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// GetUser возвращает пользователя по UID или ошибку вида errs.ErrNotFound.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// UpdateUserWorkCenter записывает ссылку на воркцентр пользователя.
	UpdateUserWorkCenter(ctx context.Context, userUID, workCenterUID string) (int, error)
	// CountUserRations подсчитывает размеры списков рационов пользователя.
	CountUserRations(ctx context.Context, userUID string) (*models.RationCounts, error)
}

// RationRepository определяет методы для работы с рационами при покупке.
type RationRepository interface {
	// GetRation возвращает рацион по UID или ошибку вида errs.ErrNotFound.
	GetRation(ctx context.Context, uid string) (*models.Ration, error)
	// MarkRationSold помечает рацион проданным и записывает покупателя.
	MarkRationSold(ctx context.Context, rationUID, buyerUID string) (int, error)
}

// WorkCenterReader возвращает воркцентр по UID.
type WorkCenterReader interface {
	GetWorkCenter(ctx context.Context, uid string) (*models.WorkCenter, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Publisher публикует событие в брокер уведомлений.
type Publisher interface {
	Publish(routingKey string, message any) error
}

// UserService реализует операции над пользователем.
type UserService struct {
	users       UserRepository
	rations     RationRepository
	workcenters WorkCenterReader
	cache       Cache
	publisher   Publisher
	log         *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(users UserRepository, rations RationRepository,
	workcenters WorkCenterReader, cache Cache, publisher Publisher, log *slog.Logger) *UserService {
	return &UserService{
		users:       users,
		rations:     rations,
		workcenters: workcenters,
		cache:       cache,
		publisher:   publisher,
		log:         log,
	}
}

// AssignWorkCenter записывает ссылку на воркцентр пользователя.
//
// Существование воркцентра не проверяется: несуществующая ссылка принимается
// молча, как в исходном поведении операции.
func (s *UserService) AssignWorkCenter(ctx context.Context, userUID, workCenterUID string) error {
	count, err := s.users.UpdateUserWorkCenter(ctx, userUID, workCenterUID)
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NotFound("user not found")
	}

	s.invalidateUserInfo(userUID)
	s.log.Info("assigned workcenter", slog.String("user_uid", userUID),
		slog.String("workcenter_uid", workCenterUID))
	return nil
}

// BuyRation назначает рацион покупателю.
//
// Уже проданный рацион возвращает ошибку вида errs.ErrAlreadyExists и не
// изменяется. Успешная покупка — одноразовый переход sold=false -> true,
// после которого публикуется событие ration.sold; ошибка публикации
// логируется и не отменяет покупку.
func (s *UserService) BuyRation(ctx context.Context, buyerUID, rationUID string) error {
	ration, err := s.rations.GetRation(ctx, rationUID)
	if err != nil {
		return err
	}
	if ration.Sold {
		return errs.AlreadyExists("ration assigned")
	}

	if _, err := s.rations.MarkRationSold(ctx, rationUID, buyerUID); err != nil {
		return err
	}
	s.log.Info("ration sold", slog.String("ration_uid", rationUID),
		slog.String("buyer_uid", buyerUID))

	s.invalidateUserInfo(buyerUID)
	s.invalidateUserInfo(ration.CreatedBy)

	seller, err := s.users.GetUser(ctx, ration.CreatedBy)
	if err != nil {
		s.log.Warn("failed to load seller for notification", sl.Err(err))
		return nil
	}
	event := models.RationSoldEvent{
		RationUID:      ration.UID,
		RationName:     ration.Name,
		Prize:          ration.Prize,
		SellerName:     seller.Name,
		SellerUsername: seller.Username,
	}
	if err := s.publisher.Publish("ration.sold", event); err != nil {
		s.log.Warn("failed to publish ration.sold event", sl.Err(err))
	}
	return nil
}

// GetUserInfo возвращает сводку о пользователе: имя, воркцентр (если назначен)
// и размеры списков созданных, купленных и проданных рационов.
func (s *UserService) GetUserInfo(ctx context.Context, userUID string) (*models.UserInfo, error) {
	var result *models.UserInfo
	cacheKey := userInfoKey(userUID)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return result, nil
	}

	user, err := s.users.GetUser(ctx, userUID)
	if err != nil {
		return nil, err
	}
	counts, err := s.users.CountUserRations(ctx, userUID)
	if err != nil {
		return nil, err
	}

	info := &models.UserInfo{
		Name:           user.Name,
		CreatedRations: counts.Created,
		BuyedRations:   counts.Buyed,
		SoldRations:    counts.Sold,
	}
	if user.WorkCenterUID != nil {
		center, err := s.workcenters.GetWorkCenter(ctx, *user.WorkCenterUID)
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return nil, err
		}
		info.WorkCenter = center
	}

	if err := s.cache.Set(cacheKey, info, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), sl.Err(err))
	}
	return info, nil
}

func (s *UserService) invalidateUserInfo(userUID string) {
	cacheKey := userInfoKey(userUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), sl.Err(err))
	}
}

func userInfoKey(userUID string) string {
	return fmt.Sprintf("userinfo:%s", userUID)
}
