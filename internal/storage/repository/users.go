package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/ration-marketplace/internal/lib/errs"
	"github.com/magabrotheeeer/ration-marketplace/internal/models"
)

// RegisterUser сохраняет нового пользователя в базу данных и возвращает его UID.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (name, username, password_hash, photo)
			  VALUES ($1, $2, $3, $4)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Name, user.Username, user.PasswordHash, user.Photo).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetUserByUsername возвращает пользователя по его username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, username, password_hash, photo, workcenter_uid, created_at
			  FROM users
			  WHERE username = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, username)

	var workCenterUID sql.NullString
	if err := row.Scan(&u.UID, &u.Name, &u.Username, &u.PasswordHash,
		&u.Photo, &workCenterUID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if workCenterUID.Valid {
		u.WorkCenterUID = &workCenterUID.String
	}
	return u, nil
}

// GetUser возвращает пользователя по его UID.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, username, password_hash, photo, workcenter_uid, created_at
			  FROM users
			  WHERE uid = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, userUID)

	var workCenterUID sql.NullString
	if err := row.Scan(&u.UID, &u.Name, &u.Username, &u.PasswordHash,
		&u.Photo, &workCenterUID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if workCenterUID.Valid {
		u.WorkCenterUID = &workCenterUID.String
	}
	return u, nil
}

// UpdateUserWorkCenter записывает ссылку на воркцентр пользователя
// и возвращает количество изменённых строк.
func (s *Storage) UpdateUserWorkCenter(ctx context.Context, userUID, workCenterUID string) (int, error) {
	const op = "storage.UpdateUserWorkCenter"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET workcenter_uid = $1
			  WHERE uid = $2`
	result, err := s.DB.ExecContext(ctx, query, workCenterUID, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// CountUserRations подсчитывает размеры списков рационов пользователя:
// созданные, купленные и проданные (созданные и уже проданные).
func (s *Storage) CountUserRations(ctx context.Context, userUID string) (*models.RationCounts, error) {
	const op = "storage.CountUserRations"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT
				  COUNT(*) FILTER (WHERE created_by = $1),
				  COUNT(*) FILTER (WHERE buyed_by = $1),
				  COUNT(*) FILTER (WHERE created_by = $1 AND sold)
			  FROM rations
			  WHERE created_by = $1 OR buyed_by = $1`
	var counts models.RationCounts
	row := s.DB.QueryRowContext(ctx, query, userUID)
	if err := row.Scan(&counts.Created, &counts.Buyed, &counts.Sold); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &counts, nil
}
