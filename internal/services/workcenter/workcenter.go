// Package services содержит бизнес-логику для работы с воркцентрами.
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

// WorkCenterRepository определяет методы для работы с воркцентрами в хранилище.
type WorkCenterRepository interface {
	// CreateWorkCenter сохраняет новый воркцентр и возвращает его UID.
	CreateWorkCenter(ctx context.Context, center models.WorkCenter) (string, error)
	// GetWorkCenterByName возвращает воркцентр по имени
	// или ошибку вида errs.ErrNotFound.
	GetWorkCenterByName(ctx context.Context, name string) (*models.WorkCenter, error)
	// GetWorkCenter возвращает воркцентр по UID или ошибку вида errs.ErrNotFound.
	GetWorkCenter(ctx context.Context, uid string) (*models.WorkCenter, error)
	// ListWorkCenters возвращает все воркцентры.
	ListWorkCenters(ctx context.Context) ([]*models.WorkCenter, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// WorkCenterService реализует бизнес-логику работы с воркцентрами.
type WorkCenterService struct {
	repo  WorkCenterRepository
	cache Cache
	log   *slog.Logger
}

// NewWorkCenterService создает новый экземпляр WorkCenterService.
func NewWorkCenterService(repo WorkCenterRepository, cache Cache, log *slog.Logger) *WorkCenterService {
	return &WorkCenterService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новый воркцентр. Повторное имя возвращает ошибку
// вида errs.ErrAlreadyExists.
func (s *WorkCenterService) Create(ctx context.Context, req models.DummyWorkCenter) error {
	existing, err := s.repo.GetWorkCenterByName(ctx, req.Name)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return err
	}
	if existing != nil {
		return errs.AlreadyExists(fmt.Sprintf("workcenter %s already registered", req.Name))
	}

	uid, err := s.repo.CreateWorkCenter(ctx, models.WorkCenter{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
	})
	if err != nil {
		return err
	}
	s.log.Info("created new workcenter", slog.String("uid", uid))
	return nil
}

// List возвращает все воркцентры.
func (s *WorkCenterService) List(ctx context.Context) ([]*models.WorkCenter, error) {
	return s.repo.ListWorkCenters(ctx)
}

// Read возвращает воркцентр по UID, используя кеш или репозиторий.
func (s *WorkCenterService) Read(ctx context.Context, uid string) (*models.WorkCenter, error) {
	var result *models.WorkCenter
	cacheKey := fmt.Sprintf("workcenter:%s", uid)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.GetWorkCenter(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}
