package subscription_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/telecom-provider/internal/models"
	"github.com/magabrotheeeer/telecom-provider/internal/services/subscription"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Мок для Repository
type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) Subscribe(ctx context.Context, username string, planID int) (*models.Subscription, error) {
	args := m.Called(ctx, username, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *RepoMock) SwitchPlan(ctx context.Context, username string, newPlanID int) (*models.Subscription, error) {
	args := m.Called(ctx, username, newPlanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *RepoMock) CancelSubscription(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *RepoMock) GetSignedByUsername(ctx context.Context, username string) (*models.Subscription, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *RepoMock) CreateSubscription(ctx context.Context, sub models.Subscription) (int, error) {
	args := m.Called(ctx, sub)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) ReadSubscription(ctx context.Context, id int) (*models.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *RepoMock) ListSubscriptions(ctx context.Context, limit, offset int) ([]*models.Subscription, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Subscription), args.Error(1)
}

func (m *RepoMock) UpdateSubscription(ctx context.Context, sub models.Subscription, id int) (int, error) {
	args := m.Called(ctx, sub, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) DeleteSubscription(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Subscribe(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *RepoMock)
		wantErr    error
	}{
		{
			name: "successful subscribe",
			setupMocks: func(r *RepoMock) {
				r.On("Subscribe", mock.Anything, "testuser", 7).
					Return(&models.Subscription{
						ID:     1,
						Status: models.SubscriptionSigned,
						UserID: 1,
						PlanID: 7,
					}, nil).Once()
			},
		},
		{
			name: "already subscribed to the same plan",
			setupMocks: func(r *RepoMock) {
				r.On("Subscribe", mock.Anything, "testuser", 7).
					Return(nil, repository.ErrAlreadySubscribed).Once()
			},
			wantErr: repository.ErrAlreadySubscribed,
		},
		{
			name: "another plan already signed",
			setupMocks: func(r *RepoMock) {
				r.On("Subscribe", mock.Anything, "testuser", 7).
					Return(nil, repository.ErrConflict).Once()
			},
			wantErr: repository.ErrConflict,
		},
		{
			name: "unknown plan",
			setupMocks: func(r *RepoMock) {
				r.On("Subscribe", mock.Anything, "testuser", 7).
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoMock := new(RepoMock)
			tt.setupMocks(repoMock)

			service := subscription.New(repoMock, discardLogger())
			sub, err := service.Subscribe(context.Background(), "testuser", 7)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, models.SubscriptionSigned, sub.Status)
				assert.Equal(t, 7, sub.PlanID)
			}
			repoMock.AssertExpectations(t)
		})
	}
}

func TestService_SwitchPlan(t *testing.T) {
	repoMock := new(RepoMock)
	repoMock.On("SwitchPlan", mock.Anything, "testuser", 9).
		Return(&models.Subscription{
			ID:     2,
			Status: models.SubscriptionSigned,
			UserID: 1,
			PlanID: 9,
		}, nil).Once()

	service := subscription.New(repoMock, discardLogger())
	sub, err := service.SwitchPlan(context.Background(), "testuser", 9)

	assert.NoError(t, err)
	assert.Equal(t, 9, sub.PlanID)
	repoMock.AssertExpectations(t)
}

func TestService_SwitchPlan_NoCurrentSubscription(t *testing.T) {
	repoMock := new(RepoMock)
	repoMock.On("SwitchPlan", mock.Anything, "testuser", 9).
		Return(nil, repository.ErrNotFound).Once()

	service := subscription.New(repoMock, discardLogger())
	_, err := service.SwitchPlan(context.Background(), "testuser", 9)

	assert.ErrorIs(t, err, repository.ErrNotFound)
	repoMock.AssertExpectations(t)
}

func TestService_Cancel(t *testing.T) {
	// повторная отмена — ошибка, а не no-op
	repoMock := new(RepoMock)
	repoMock.On("CancelSubscription", mock.Anything, "testuser").
		Return(nil).Once()
	repoMock.On("CancelSubscription", mock.Anything, "testuser").
		Return(repository.ErrNotFound).Once()

	service := subscription.New(repoMock, discardLogger())

	err := service.Cancel(context.Background(), "testuser")
	assert.NoError(t, err)

	err = service.Cancel(context.Background(), "testuser")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	repoMock.AssertExpectations(t)
}

func TestService_GetCurrent(t *testing.T) {
	repoMock := new(RepoMock)
	repoMock.On("GetSignedByUsername", mock.Anything, "testuser").
		Return(&models.Subscription{
			ID:     3,
			Status: models.SubscriptionSigned,
			UserID: 1,
			PlanID: 5,
		}, nil).Once()

	service := subscription.New(repoMock, discardLogger())
	sub, err := service.GetCurrent(context.Background(), "testuser")

	assert.NoError(t, err)
	assert.Equal(t, 5, sub.PlanID)
	repoMock.AssertExpectations(t)
}
