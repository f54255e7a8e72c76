package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/telecom-provider/internal/models"
	"github.com/magabrotheeeer/telecom-provider/internal/services/catalog"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Мок для Repository
type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) CreateTariff(ctx context.Context, tariff models.Tariff) (int, error) {
	args := m.Called(ctx, tariff)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) ReadTariff(ctx context.Context, id int) (*models.Tariff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tariff), args.Error(1)
}

func (m *RepoMock) ListTariffs(ctx context.Context, limit, offset int) ([]*models.Tariff, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tariff), args.Error(1)
}

func (m *RepoMock) UpdateTariff(ctx context.Context, tariff models.Tariff, id int) (int, error) {
	args := m.Called(ctx, tariff, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) DeleteTariff(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) CreatePlan(ctx context.Context, plan models.Plan) (int, error) {
	args := m.Called(ctx, plan)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) ReadPlan(ctx context.Context, id int) (*models.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

func (m *RepoMock) ListPlans(ctx context.Context, limit, offset int) ([]*models.Plan, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Plan), args.Error(1)
}

func (m *RepoMock) UpdatePlan(ctx context.Context, plan models.Plan, id int) (int, error) {
	args := m.Called(ctx, plan, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) DeletePlan(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) CreatePromotion(ctx context.Context, promo models.Promotion) (int, error) {
	args := m.Called(ctx, promo)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) ReadPromotion(ctx context.Context, id int) (*models.Promotion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Promotion), args.Error(1)
}

func (m *RepoMock) ListPromotions(ctx context.Context, limit, offset int) ([]*models.Promotion, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Promotion), args.Error(1)
}

func (m *RepoMock) UpdatePromotion(ctx context.Context, promo models.Promotion, id int) (int, error) {
	args := m.Called(ctx, promo, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) DeletePromotion(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) AttachPromotionTariff(ctx context.Context, promotionID, tariffID int) (int, error) {
	args := m.Called(ctx, promotionID, tariffID)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) DetachPromotionTariff(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) ListPromotionTariffs(ctx context.Context, limit, offset int) ([]*models.PromotionTariff, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PromotionTariff), args.Error(1)
}

func TestService_CreateTariff(t *testing.T) {
	repoMock := new(RepoMock)
	repoMock.On("CreateTariff", mock.Anything, models.Tariff{
		Name:        "Базовый",
		Description: "стартовый тариф",
		MonthlyCost: 299.99,
		DataLimit:   10000,
		VoiceLimit:  500,
	}).Return(1, nil).Once()

	service := catalog.New(repoMock)
	id, err := service.CreateTariff(context.Background(), models.DummyTariff{
		Name:        "Базовый",
		Description: "стартовый тариф",
		MonthlyCost: 299.99,
		DataLimit:   10000,
		VoiceLimit:  500,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, id)
	repoMock.AssertExpectations(t)
}

func TestService_CreatePlan_ParsesDates(t *testing.T) {
	repoMock := new(RepoMock)
	repoMock.On("CreatePlan", mock.Anything, mock.MatchedBy(func(plan models.Plan) bool {
		wantStart := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
		return plan.Name == "Летний" &&
			plan.StartDate.Equal(wantStart) &&
			plan.EndDate.Equal(wantEnd) &&
			plan.TariffID == 2
	})).Return(4, nil).Once()

	service := catalog.New(repoMock)
	id, err := service.CreatePlan(context.Background(), models.DummyPlan{
		Name:      "Летний",
		StartDate: "15-01-2026",
		EndDate:   "31-12-2026",
		TariffID:  2,
	})

	assert.NoError(t, err)
	assert.Equal(t, 4, id)
	repoMock.AssertExpectations(t)
}

func TestService_CreatePlan_InvalidDate(t *testing.T) {
	repoMock := new(RepoMock)

	service := catalog.New(repoMock)
	_, err := service.CreatePlan(context.Background(), models.DummyPlan{
		Name:      "Летний",
		StartDate: "2026-01-15",
		EndDate:   "31-12-2026",
		TariffID:  2,
	})

	assert.Error(t, err)
	repoMock.AssertNotCalled(t, "CreatePlan", mock.Anything, mock.Anything)
}

func TestService_ReadTariff_NotFound(t *testing.T) {
	repoMock := new(RepoMock)
	repoMock.On("ReadTariff", mock.Anything, 99).
		Return(nil, repository.ErrNotFound).Once()

	service := catalog.New(repoMock)
	_, err := service.ReadTariff(context.Background(), 99)

	assert.ErrorIs(t, err, repository.ErrNotFound)
	repoMock.AssertExpectations(t)
}

func TestService_AttachPromotionTariff_Duplicate(t *testing.T) {
	repoMock := new(RepoMock)
	repoMock.On("AttachPromotionTariff", mock.Anything, 1, 2).
		Return(0, repository.ErrConflict).Once()

	service := catalog.New(repoMock)
	_, err := service.AttachPromotionTariff(context.Background(), 1, 2)

	assert.ErrorIs(t, err, repository.ErrConflict)
	repoMock.AssertExpectations(t)
}
