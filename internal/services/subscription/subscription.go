// Package subscription содержит логику бизнес-уровня жизненного цикла
// подписок: подключение, смена плана, отмена и административные операции.
package subscription

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/telecom-provider/internal/models"
)

// Repository описывает контракт хранилища подписок. Мутации по имени
// пользователя сериализуются на уровне базы данных, поэтому сервис
// не добавляет собственных блокировок.
type Repository interface {
	Subscribe(ctx context.Context, username string, planID int) (*models.Subscription, error)
	SwitchPlan(ctx context.Context, username string, newPlanID int) (*models.Subscription, error)
	CancelSubscription(ctx context.Context, username string) error
	GetSignedByUsername(ctx context.Context, username string) (*models.Subscription, error)

	CreateSubscription(ctx context.Context, sub models.Subscription) (int, error)
	ReadSubscription(ctx context.Context, id int) (*models.Subscription, error)
	ListSubscriptions(ctx context.Context, limit, offset int) ([]*models.Subscription, error)
	UpdateSubscription(ctx context.Context, sub models.Subscription, id int) (int, error)
	DeleteSubscription(ctx context.Context, id int) (int, error)
}

// Service реализует операции над подписками поверх хранилища.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Subscribe подключает пользователю план и возвращает созданную подписку.
func (s *Service) Subscribe(ctx context.Context, username string, planID int) (*models.Subscription, error) {
	const op = "services.subscription.Subscribe"

	sub, err := s.repo.Subscribe(ctx, username, planID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("subscription created",
		slog.String("op", op),
		slog.String("username", username),
		slog.Int("plan_id", planID))
	return sub, nil
}

// SwitchPlan заменяет текущую активную подписку пользователя на подписку
// с новым планом в одной транзакции.
func (s *Service) SwitchPlan(ctx context.Context, username string, newPlanID int) (*models.Subscription, error) {
	const op = "services.subscription.SwitchPlan"

	sub, err := s.repo.SwitchPlan(ctx, username, newPlanID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("subscription switched",
		slog.String("op", op),
		slog.String("username", username),
		slog.Int("plan_id", newPlanID))
	return sub, nil
}

// Cancel отменяет текущую активную подписку пользователя. Отсутствие
// активной подписки — ошибка.
func (s *Service) Cancel(ctx context.Context, username string) error {
	const op = "services.subscription.Cancel"

	if err := s.repo.CancelSubscription(ctx, username); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("subscription cancelled",
		slog.String("op", op),
		slog.String("username", username))
	return nil
}

// GetCurrent возвращает текущую активную подписку пользователя.
func (s *Service) GetCurrent(ctx context.Context, username string) (*models.Subscription, error) {
	const op = "services.subscription.GetCurrent"

	sub, err := s.repo.GetSignedByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// Create создает подписку с произвольным статусом (административная операция).
func (s *Service) Create(ctx context.Context, sub models.Subscription) (int, error) {
	const op = "services.subscription.Create"

	id, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Read возвращает подписку по ID.
func (s *Service) Read(ctx context.Context, id int) (*models.Subscription, error) {
	const op = "services.subscription.Read"

	sub, err := s.repo.ReadSubscription(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// List возвращает список подписок с пагинацией.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.Subscription, error) {
	const op = "services.subscription.List"

	subs, err := s.repo.ListSubscriptions(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return subs, nil
}

// Update обновляет подписку по ID и возвращает количество изменённых строк.
func (s *Service) Update(ctx context.Context, sub models.Subscription, id int) (int, error) {
	const op = "services.subscription.Update"

	count, err := s.repo.UpdateSubscription(ctx, sub, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// Delete удаляет подписку по ID и возвращает количество удалённых строк.
func (s *Service) Delete(ctx context.Context, id int) (int, error) {
	const op = "services.subscription.Delete"

	count, err := s.repo.DeleteSubscription(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
