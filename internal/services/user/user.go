// Package user содержит логику бизнес-уровня для администрирования
// пользователей и клиентских операций с собственным профилем.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/telecom-provider/internal/lib/password"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/telecom-provider/internal/models"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// emailTokenTTL — срок действия токена подтверждения смены профиля.
const emailTokenTTL = 24 * time.Hour

// routingKeyEmailConfirmation — ключ маршрутизации события подтверждения
// почты в обменнике уведомлений.
const routingKeyEmailConfirmation = "email_confirmation"

// Repository описывает контракт хранилища пользователей и токенов
// подтверждения.
type Repository interface {
	CreateUser(ctx context.Context, user models.User) (int, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	UpdateUser(ctx context.Context, user models.User, id int) (int, error)
	UpdateUserStatus(ctx context.Context, id int, statusName string) error
	UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error
	UpdateProfile(ctx context.Context, id int, username, email, phone string) error
	DeleteUser(ctx context.Context, id int) (int, error)

	ListRoles(ctx context.Context) ([]*models.Role, error)
	GetRoleByID(ctx context.Context, id int) (*models.Role, error)
	CreateRole(ctx context.Context, name string) (int, error)
	UpdateRole(ctx context.Context, id int, name string) (int, error)
	DeleteRole(ctx context.Context, id int) (int, error)

	ListStatuses(ctx context.Context) ([]*models.Status, error)
	GetStatusByID(ctx context.Context, id int) (*models.Status, error)
	CreateStatus(ctx context.Context, name string) (int, error)
	UpdateStatus(ctx context.Context, id int, name string) (int, error)
	DeleteStatus(ctx context.Context, id int) (int, error)

	SaveEmailToken(ctx context.Context, token models.EmailToken) error
	TakeEmailToken(ctx context.Context, token string) (*models.EmailToken, error)
}

// EmailConfirmationEvent — событие для отправки письма со ссылкой
// подтверждения. Потребляется почтовым воркером.
type EmailConfirmationEvent struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Service реализует операции над пользователями поверх хранилища
// и публикует события подтверждения почты в RabbitMQ.
type Service struct {
	repo Repository
	ch   *amqp.Channel
	log  *slog.Logger
}

// New создает новый экземпляр Service. Канал RabbitMQ может быть nil:
// тогда смена профиля применяется без подтверждения по почте.
func New(repo Repository, ch *amqp.Channel, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		ch:   ch,
		log:  log,
	}
}

// Create создает пользователя с заданными ролью и статусом
// (административная операция).
func (s *Service) Create(ctx context.Context, req models.DummyUser) (int, error) {
	const op = "services.user.Create"

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     req.Username,
		PasswordHash: hashed,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		Status:       req.Status,
	}
	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Read возвращает пользователя по ID.
func (s *Service) Read(ctx context.Context, id int) (*models.User, error) {
	const op = "services.user.Read"

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// List возвращает список пользователей с пагинацией.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	const op = "services.user.List"

	users, err := s.repo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// Update обновляет пользователя по ID и возвращает количество
// изменённых строк.
func (s *Service) Update(ctx context.Context, req models.DummyUser, id int) (int, error) {
	const op = "services.user.Update"

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     req.Username,
		PasswordHash: hashed,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		Status:       req.Status,
	}
	count, err := s.repo.UpdateUser(ctx, user, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// UpdateStatus меняет статус пользователя (active, inactive, banned).
// Блокировка вступает в силу на следующем запросе пользователя:
// шлюз аутентификации перечитывает статус на каждом обращении.
func (s *Service) UpdateStatus(ctx context.Context, id int, statusName string) error {
	const op = "services.user.UpdateStatus"

	if err := s.repo.UpdateUserStatus(ctx, id, statusName); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user status updated",
		slog.String("op", op),
		slog.Int("user_id", id),
		slog.String("status", statusName))
	return nil
}

// Delete удаляет пользователя по ID и возвращает количество удалённых строк.
func (s *Service) Delete(ctx context.Context, id int) (int, error) {
	const op = "services.user.Delete"

	count, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// ChangePassword меняет пароль пользователя, найденного по имени.
func (s *Service) ChangePassword(ctx context.Context, username, newPassword string) error {
	const op = "services.user.ChangePassword"

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = s.repo.UpdatePasswordHash(ctx, user.ID, hashed); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RequestProfileUpdate сохраняет отложенное изменение профиля и публикует
// событие подтверждения: на новую почту уходит письмо со ссылкой,
// изменения применяются только после подтверждения токена.
func (s *Service) RequestProfileUpdate(ctx context.Context, username, newUsername, newEmail, newPhone string) error {
	const op = "services.user.RequestProfileUpdate"

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.ch == nil {
		// без брокера подтверждение невозможно, применяем сразу
		if err = s.repo.UpdateProfile(ctx, user.ID, newUsername, newEmail, newPhone); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	token := models.EmailToken{
		Token:       uuid.NewString(),
		UserID:      user.ID,
		NewEmail:    newEmail,
		NewUsername: newUsername,
		NewPhone:    newPhone,
		ExpiresAt:   time.Now().UTC().Add(emailTokenTTL),
	}
	if err = s.repo.SaveEmailToken(ctx, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	event := EmailConfirmationEvent{
		Email:    newEmail,
		Username: newUsername,
		Token:    token.Token,
	}
	if err = rabbitmq.PublishMessage(s.ch, rabbitmq.Exchange, routingKeyEmailConfirmation, event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("profile update requested",
		slog.String("op", op),
		slog.String("username", username))
	return nil
}

// ConfirmProfileUpdate применяет отложенное изменение профиля по токену
// из письма. Токен одноразовый; истёкший или неизвестный токен — ошибка.
func (s *Service) ConfirmProfileUpdate(ctx context.Context, token string) error {
	const op = "services.user.ConfirmProfileUpdate"

	saved, err := s.repo.TakeEmailToken(ctx, token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = s.repo.UpdateProfile(ctx, saved.UserID,
		saved.NewUsername, saved.NewEmail, saved.NewPhone); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("profile update confirmed",
		slog.String("op", op),
		slog.Int("user_id", saved.UserID))
	return nil
}

// ListRoles возвращает справочник ролей.
func (s *Service) ListRoles(ctx context.Context) ([]*models.Role, error) {
	const op = "services.user.ListRoles"

	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return roles, nil
}

// ListStatuses возвращает справочник статусов.
func (s *Service) ListStatuses(ctx context.Context) ([]*models.Status, error) {
	const op = "services.user.ListStatuses"

	statuses, err := s.repo.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return statuses, nil
}

// Встроенные имена справочников. На них завязаны регистрация,
// блокировки и проверки прав, поэтому переименовывать и удалять
// такие записи нельзя.
var builtinRoles = map[string]struct{}{
	models.RoleAdmin:  {},
	models.RoleClient: {},
}

var builtinStatuses = map[string]struct{}{
	models.StatusActive:   {},
	models.StatusInactive: {},
	models.StatusBanned:   {},
}

// CreateRole добавляет новую роль в справочник.
func (s *Service) CreateRole(ctx context.Context, name string) (int, error) {
	const op = "services.user.CreateRole"

	id, err := s.repo.CreateRole(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("role created", slog.String("op", op), slog.Int("role_id", id))
	return id, nil
}

// ReadRole возвращает роль по ID.
func (s *Service) ReadRole(ctx context.Context, id int) (*models.Role, error) {
	const op = "services.user.ReadRole"

	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return role, nil
}

// RenameRole переименовывает роль. Встроенные роли защищены от изменения.
func (s *Service) RenameRole(ctx context.Context, id int, name string) (int, error) {
	const op = "services.user.RenameRole"

	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if _, ok := builtinRoles[role.Name]; ok {
		return 0, fmt.Errorf("%s: %w", op, repository.ErrConflict)
	}

	count, err := s.repo.UpdateRole(ctx, id, name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// DeleteRole удаляет роль из справочника. Встроенные роли защищены
// от удаления.
func (s *Service) DeleteRole(ctx context.Context, id int) (int, error) {
	const op = "services.user.DeleteRole"

	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if _, ok := builtinRoles[role.Name]; ok {
		return 0, fmt.Errorf("%s: %w", op, repository.ErrConflict)
	}

	count, err := s.repo.DeleteRole(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("role deleted", slog.String("op", op), slog.Int("role_id", id))
	return count, nil
}

// CreateStatus добавляет новый статус аккаунта в справочник.
func (s *Service) CreateStatus(ctx context.Context, name string) (int, error) {
	const op = "services.user.CreateStatus"

	id, err := s.repo.CreateStatus(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("status created", slog.String("op", op), slog.Int("status_id", id))
	return id, nil
}

// ReadStatus возвращает статус аккаунта по ID.
func (s *Service) ReadStatus(ctx context.Context, id int) (*models.Status, error) {
	const op = "services.user.ReadStatus"

	status, err := s.repo.GetStatusByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return status, nil
}

// RenameStatus переименовывает статус аккаунта. Встроенные статусы
// защищены от изменения.
func (s *Service) RenameStatus(ctx context.Context, id int, name string) (int, error) {
	const op = "services.user.RenameStatus"

	status, err := s.repo.GetStatusByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if _, ok := builtinStatuses[status.Name]; ok {
		return 0, fmt.Errorf("%s: %w", op, repository.ErrConflict)
	}

	count, err := s.repo.UpdateStatus(ctx, id, name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// DeleteStatus удаляет статус аккаунта из справочника. Встроенные
// статусы защищены от удаления.
func (s *Service) DeleteStatus(ctx context.Context, id int) (int, error) {
	const op = "services.user.DeleteStatus"

	status, err := s.repo.GetStatusByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if _, ok := builtinStatuses[status.Name]; ok {
		return 0, fmt.Errorf("%s: %w", op, repository.ErrConflict)
	}

	count, err := s.repo.DeleteStatus(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("status deleted", slog.String("op", op), slog.Int("status_id", id))
	return count, nil
}
