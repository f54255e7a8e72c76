// Package auth содержит логику бизнес-уровня для регистрации,
// авторизации и повторной проверки статуса пользователя.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/telecom-provider/internal/lib/jwt"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/password"
	"github.com/magabrotheeeer/telecom-provider/internal/models"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Ошибки бизнес-уровня аутентификации.
var (
	// ErrInvalidCredentials — неизвестный пользователь или неверный пароль.
	// Единое сообщение без уточнения, что именно не совпало.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrBanned — пользователь заблокирован.
	ErrBanned = errors.New("user is banned")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByEmail возвращает пользователя по электронной почте.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByPhone возвращает пользователя по номеру телефона.
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
}

// Service отвечает за регистрацию, вход и выдачу JWT.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля, дефолтной
// ролью client и статусом active, затем выдает JWT. Если почта или телефон
// принадлежат заблокированному пользователю — ErrBanned; дубликат имени,
// почты или телефона — repository.ErrConflict.
func (s *Service) Register(ctx context.Context, username, rawPassword, email, phone string) (string, error) {
	const op = "services.auth.Register"

	if err := s.rejectBanned(ctx, email, phone); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     username,
		PasswordHash: hashed,
		Email:        email,
		Phone:        phone,
		Role:         models.RoleClient,
		Status:       models.StatusActive,
	}
	if _, err = s.users.CreateUser(ctx, user); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(user.Username, user.Role)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// rejectBanned проверяет, не принадлежат ли почта или телефон
// заблокированному пользователю. Повторная регистрация на такие
// контакты запрещена.
func (s *Service) rejectBanned(ctx context.Context, email, phone string) error {
	byEmail, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if byEmail.Status == models.StatusBanned {
			return ErrBanned
		}
	case !errors.Is(err, repository.ErrNotFound):
		return err
	}

	byPhone, err := s.users.GetUserByPhone(ctx, phone)
	switch {
	case err == nil:
		if byPhone.Status == models.StatusBanned {
			return ErrBanned
		}
	case !errors.Is(err, repository.ErrNotFound):
		return err
	}
	return nil
}

// Login проверяет пароль пользователя и выдает JWT. Неизвестное имя
// и неверный пароль дают одну и ту же ошибку ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err = password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	if user.Status == models.StatusBanned {
		return "", fmt.Errorf("%s: %w", op, ErrBanned)
	}

	token, err := s.jwtMaker.GenerateToken(user.Username, user.Role)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ResolvePrincipal возвращает пользователя по имени для повторной
// проверки статуса на каждом запросе.
func (s *Service) ResolvePrincipal(ctx context.Context, username string) (*models.User, error) {
	const op = "services.auth.ResolvePrincipal"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}
