// Package services содержит логику бизнес-уровня для регистрации и аутентификации пользователей.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/ration-marketplace/internal/lib/errs"
	"github.com/magabrotheeeer/ration-marketplace/internal/lib/jwt"
	"github.com/magabrotheeeer/ration-marketplace/internal/lib/password"
	"github.com/magabrotheeeer/ration-marketplace/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени
	// или ошибку вида errs.ErrNotFound, если он не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService отвечает за регистрацию и авторизацию с выдачей JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Повторная регистрация username возвращает ошибку вида errs.ErrAlreadyExists.
func (s *AuthService) Register(ctx context.Context, name, username, rawPassword string) error {
	existing, err := s.users.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return err
	}
	if existing != nil {
		return errs.AlreadyExists(fmt.Sprintf("username %s already registered", username))
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return err
	}
	user := models.User{
		Name:         name,
		Username:     username,
		PasswordHash: hashed,
		Photo:        "#",
	}
	_, err = s.users.RegisterUser(ctx, user)
	return err
}

// Login проверяет пароль пользователя и генерирует JWT с uid в subject.
//
// Неизвестный username и неверный пароль дают одну и ту же ошибку, чтобы по
// ответу нельзя было перечислять зарегистрированные имена.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (uid, token string, err error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", "", errs.Auth("invalid username or password")
		}
		return "", "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", errs.Auth("invalid username or password")
	}
	token, err = s.jwtMaker.GenerateToken(user.Username, user.UID)
	if err != nil {
		return "", "", err
	}
	return user.UID, token, nil
}
