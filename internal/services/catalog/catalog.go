// Package catalog содержит логику бизнес-уровня справочника оператора:
// тарифы, тарифные планы, акции и их связи.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/telecom-provider/internal/models"
)

// dateLayout — формат дат в запросах справочника.
const dateLayout = "02-01-2006"

// Repository описывает контракт хранилища справочника.
type Repository interface {
	CreateTariff(ctx context.Context, tariff models.Tariff) (int, error)
	ReadTariff(ctx context.Context, id int) (*models.Tariff, error)
	ListTariffs(ctx context.Context, limit, offset int) ([]*models.Tariff, error)
	UpdateTariff(ctx context.Context, tariff models.Tariff, id int) (int, error)
	DeleteTariff(ctx context.Context, id int) (int, error)

	CreatePlan(ctx context.Context, plan models.Plan) (int, error)
	ReadPlan(ctx context.Context, id int) (*models.Plan, error)
	ListPlans(ctx context.Context, limit, offset int) ([]*models.Plan, error)
	UpdatePlan(ctx context.Context, plan models.Plan, id int) (int, error)
	DeletePlan(ctx context.Context, id int) (int, error)

	CreatePromotion(ctx context.Context, promo models.Promotion) (int, error)
	ReadPromotion(ctx context.Context, id int) (*models.Promotion, error)
	ListPromotions(ctx context.Context, limit, offset int) ([]*models.Promotion, error)
	UpdatePromotion(ctx context.Context, promo models.Promotion, id int) (int, error)
	DeletePromotion(ctx context.Context, id int) (int, error)

	AttachPromotionTariff(ctx context.Context, promotionID, tariffID int) (int, error)
	DetachPromotionTariff(ctx context.Context, id int) (int, error)
	ListPromotionTariffs(ctx context.Context, limit, offset int) ([]*models.PromotionTariff, error)
}

// Service реализует операции справочника поверх хранилища.
type Service struct {
	repo Repository
}

// New создает новый экземпляр Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateTariff создает тариф из данных запроса.
func (s *Service) CreateTariff(ctx context.Context, req models.DummyTariff) (int, error) {
	const op = "services.catalog.CreateTariff"

	id, err := s.repo.CreateTariff(ctx, models.Tariff{
		Name:        req.Name,
		Description: req.Description,
		MonthlyCost: req.MonthlyCost,
		DataLimit:   req.DataLimit,
		VoiceLimit:  req.VoiceLimit,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// ReadTariff возвращает тариф по ID.
func (s *Service) ReadTariff(ctx context.Context, id int) (*models.Tariff, error) {
	const op = "services.catalog.ReadTariff"

	tariff, err := s.repo.ReadTariff(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tariff, nil
}

// ListTariffs возвращает список тарифов с пагинацией.
func (s *Service) ListTariffs(ctx context.Context, limit, offset int) ([]*models.Tariff, error) {
	const op = "services.catalog.ListTariffs"

	tariffs, err := s.repo.ListTariffs(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tariffs, nil
}

// UpdateTariff обновляет тариф по ID и возвращает количество
// изменённых строк.
func (s *Service) UpdateTariff(ctx context.Context, req models.DummyTariff, id int) (int, error) {
	const op = "services.catalog.UpdateTariff"

	count, err := s.repo.UpdateTariff(ctx, models.Tariff{
		Name:        req.Name,
		Description: req.Description,
		MonthlyCost: req.MonthlyCost,
		DataLimit:   req.DataLimit,
		VoiceLimit:  req.VoiceLimit,
	}, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// DeleteTariff удаляет тариф по ID и возвращает количество удалённых строк.
func (s *Service) DeleteTariff(ctx context.Context, id int) (int, error) {
	const op = "services.catalog.DeleteTariff"

	count, err := s.repo.DeleteTariff(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// parsePlan конвертирует данные запроса в модель плана, разбирая даты.
func parsePlan(req models.DummyPlan) (models.Plan, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return models.Plan{}, err
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return models.Plan{}, err
	}
	return models.Plan{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		TariffID:    req.TariffID,
	}, nil
}

// CreatePlan создает тарифный план из данных запроса.
func (s *Service) CreatePlan(ctx context.Context, req models.DummyPlan) (int, error) {
	const op = "services.catalog.CreatePlan"

	plan, err := parsePlan(req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	id, err := s.repo.CreatePlan(ctx, plan)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// ReadPlan возвращает тарифный план по ID.
func (s *Service) ReadPlan(ctx context.Context, id int) (*models.Plan, error) {
	const op = "services.catalog.ReadPlan"

	plan, err := s.repo.ReadPlan(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return plan, nil
}

// ListPlans возвращает список тарифных планов с пагинацией.
func (s *Service) ListPlans(ctx context.Context, limit, offset int) ([]*models.Plan, error) {
	const op = "services.catalog.ListPlans"

	plans, err := s.repo.ListPlans(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return plans, nil
}

// UpdatePlan обновляет тарифный план по ID и возвращает количество
// изменённых строк.
func (s *Service) UpdatePlan(ctx context.Context, req models.DummyPlan, id int) (int, error) {
	const op = "services.catalog.UpdatePlan"

	plan, err := parsePlan(req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := s.repo.UpdatePlan(ctx, plan, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// DeletePlan удаляет тарифный план по ID и возвращает количество
// удалённых строк.
func (s *Service) DeletePlan(ctx context.Context, id int) (int, error) {
	const op = "services.catalog.DeletePlan"

	count, err := s.repo.DeletePlan(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// parsePromotion конвертирует данные запроса в модель акции, разбирая даты.
func parsePromotion(req models.DummyPromotion) (models.Promotion, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return models.Promotion{}, err
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return models.Promotion{}, err
	}
	return models.Promotion{
		Title:              req.Title,
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage,
		StartDate:          startDate,
		EndDate:            endDate,
	}, nil
}

// CreatePromotion создает акцию из данных запроса.
func (s *Service) CreatePromotion(ctx context.Context, req models.DummyPromotion) (int, error) {
	const op = "services.catalog.CreatePromotion"

	promo, err := parsePromotion(req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	id, err := s.repo.CreatePromotion(ctx, promo)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// ReadPromotion возвращает акцию по ID.
func (s *Service) ReadPromotion(ctx context.Context, id int) (*models.Promotion, error) {
	const op = "services.catalog.ReadPromotion"

	promo, err := s.repo.ReadPromotion(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return promo, nil
}

// ListPromotions возвращает список акций с пагинацией.
func (s *Service) ListPromotions(ctx context.Context, limit, offset int) ([]*models.Promotion, error) {
	const op = "services.catalog.ListPromotions"

	promos, err := s.repo.ListPromotions(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return promos, nil
}

// UpdatePromotion обновляет акцию по ID и возвращает количество
// изменённых строк.
func (s *Service) UpdatePromotion(ctx context.Context, req models.DummyPromotion, id int) (int, error) {
	const op = "services.catalog.UpdatePromotion"

	promo, err := parsePromotion(req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := s.repo.UpdatePromotion(ctx, promo, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// DeletePromotion удаляет акцию по ID и возвращает количество
// удалённых строк.
func (s *Service) DeletePromotion(ctx context.Context, id int) (int, error) {
	const op = "services.catalog.DeletePromotion"

	count, err := s.repo.DeletePromotion(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// AttachPromotionTariff связывает акцию с тарифом.
func (s *Service) AttachPromotionTariff(ctx context.Context, promotionID, tariffID int) (int, error) {
	const op = "services.catalog.AttachPromotionTariff"

	id, err := s.repo.AttachPromotionTariff(ctx, promotionID, tariffID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// DetachPromotionTariff удаляет связь акции с тарифом.
func (s *Service) DetachPromotionTariff(ctx context.Context, id int) (int, error) {
	const op = "services.catalog.DetachPromotionTariff"

	count, err := s.repo.DetachPromotionTariff(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// ListPromotionTariffs возвращает связи акций с тарифами с пагинацией.
func (s *Service) ListPromotionTariffs(ctx context.Context, limit, offset int) ([]*models.PromotionTariff, error) {
	const op = "services.catalog.ListPromotionTariffs"

	links, err := s.repo.ListPromotionTariffs(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return links, nil
}
