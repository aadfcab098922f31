package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/ration-marketplace/internal/lib/errs"
	"github.com/magabrotheeeer/ration-marketplace/internal/models"
)

// CreateRation вставляет новую запись рациона и возвращает её UID.
func (s *Storage) CreateRation(ctx context.Context, ration models.Ration) (string, error) {
	const op = "storage.CreateRation"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO rations (uid, name, prize, photo, created_by, workcenter_uid, creation_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING uid`
	err := s.DB.QueryRowContext(ctx, query,
		ration.UID, ration.Name, ration.Prize, ration.Photo,
		ration.CreatedBy, ration.WorkCenterUID, ration.CreationDate).Scan(&newUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetRation возвращает рацион по его UID.
func (s *Storage) GetRation(ctx context.Context, uid string) (*models.Ration, error) {
	const op = "storage.GetRation"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, prize, photo, created_by, buyed_by, workcenter_uid, creation_date, sold
			  FROM rations
			  WHERE uid = $1`
	ration := &models.Ration{}
	row := s.DB.QueryRowContext(ctx, query, uid)

	var buyedBy sql.NullString
	if err := row.Scan(&ration.UID, &ration.Name, &ration.Prize, &ration.Photo,
		&ration.CreatedBy, &buyedBy, &ration.WorkCenterUID, &ration.CreationDate, &ration.Sold); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if buyedBy.Valid {
		ration.BuyedBy = &buyedBy.String
	}
	return ration, nil
}

// MarkRationSold помечает рацион проданным и записывает покупателя,
// возвращает количество изменённых строк.
func (s *Storage) MarkRationSold(ctx context.Context, rationUID, buyerUID string) (int, error) {
	const op = "storage.MarkRationSold"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE rations
			  SET sold = true, buyed_by = $1
			  WHERE uid = $2`
	result, err := s.DB.ExecContext(ctx, query, buyerUID, rationUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListRations возвращает рационы, удовлетворяющие фильтру. Поля фильтра со
// значением nil не участвуют в выборке; пустой фильтр возвращает все записи
// в порядке хранения.
func (s *Storage) ListRations(ctx context.Context, filter models.RationFilter) ([]*models.Ration, error) {
	const op = "storage.ListRations"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, prize, photo, created_by, buyed_by, workcenter_uid, creation_date, sold
			  FROM rations
			  WHERE ($1::text IS NULL OR name = $1)
			  	AND ($2::numeric IS NULL OR prize = $2)
			  	AND ($3::uuid IS NULL OR created_by = $3)
			  	AND ($4::uuid IS NULL OR workcenter_uid = $4)
			  	AND ($5::boolean IS NULL OR sold = $5)`
	rows, err := s.DB.QueryContext(ctx, query,
		filter.Name, filter.Prize, filter.CreatedBy, filter.WorkCenter, filter.Sold)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Ration
	for rows.Next() {
		var item models.Ration
		var buyedBy sql.NullString
		if err := rows.Scan(&item.UID, &item.Name, &item.Prize, &item.Photo,
			&item.CreatedBy, &buyedBy, &item.WorkCenterUID, &item.CreationDate, &item.Sold); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if buyedBy.Valid {
			item.BuyedBy = &buyedBy.String
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
