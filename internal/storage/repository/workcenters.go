package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/ration-marketplace/internal/lib/errs"
	"github.com/magabrotheeeer/ration-marketplace/internal/models"
)

// CreateWorkCenter сохраняет новый воркцентр и возвращает его UID.
func (s *Storage) CreateWorkCenter(ctx context.Context, center models.WorkCenter) (string, error) {
	const op = "storage.CreateWorkCenter"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO workcenters (name, address, city)
			  VALUES ($1, $2, $3)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		center.Name, center.Address, center.City).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetWorkCenterByName возвращает воркцентр по его имени.
func (s *Storage) GetWorkCenterByName(ctx context.Context, name string) (*models.WorkCenter, error) {
	const op = "storage.GetWorkCenterByName"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, address, city
			  FROM workcenters
			  WHERE name = $1`
	center := &models.WorkCenter{}
	row := s.DB.QueryRowContext(ctx, query, name)
	if err := row.Scan(&center.UID, &center.Name, &center.Address, &center.City); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return center, nil
}

// GetWorkCenter возвращает воркцентр по его UID.
func (s *Storage) GetWorkCenter(ctx context.Context, uid string) (*models.WorkCenter, error) {
	const op = "storage.GetWorkCenter"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, address, city
			  FROM workcenters
			  WHERE uid = $1`
	center := &models.WorkCenter{}
	row := s.DB.QueryRowContext(ctx, query, uid)
	if err := row.Scan(&center.UID, &center.Name, &center.Address, &center.City); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return center, nil
}

// ListWorkCenters возвращает список всех воркцентров.
func (s *Storage) ListWorkCenters(ctx context.Context) ([]*models.WorkCenter, error) {
	const op = "storage.ListWorkCenters"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, address, city
			  FROM workcenters
			  ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.WorkCenter
	for rows.Next() {
		var item models.WorkCenter
		if err := rows.Scan(&item.UID, &item.Name, &item.Address, &item.City); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
