package user_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/telecom-provider/internal/models"
	"github.com/magabrotheeeer/telecom-provider/internal/services/user"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Мок для Repository
type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) CreateUser(ctx context.Context, u models.User) (int, error) {
	args := m.Called(ctx, u)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *RepoMock) UpdateUser(ctx context.Context, u models.User, id int) (int, error) {
	args := m.Called(ctx, u, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) UpdateUserStatus(ctx context.Context, id int, statusName string) error {
	args := m.Called(ctx, id, statusName)
	return args.Error(0)
}

func (m *RepoMock) UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *RepoMock) UpdateProfile(ctx context.Context, id int, username, email, phone string) error {
	args := m.Called(ctx, id, username, email, phone)
	return args.Error(0)
}

func (m *RepoMock) DeleteUser(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) ListRoles(ctx context.Context) ([]*models.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Role), args.Error(1)
}

func (m *RepoMock) ListStatuses(ctx context.Context) ([]*models.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Status), args.Error(1)
}

func (m *RepoMock) GetRoleByID(ctx context.Context, id int) (*models.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

func (m *RepoMock) CreateRole(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) UpdateRole(ctx context.Context, id int, name string) (int, error) {
	args := m.Called(ctx, id, name)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) DeleteRole(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) GetStatusByID(ctx context.Context, id int) (*models.Status, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Status), args.Error(1)
}

func (m *RepoMock) CreateStatus(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) UpdateStatus(ctx context.Context, id int, name string) (int, error) {
	args := m.Called(ctx, id, name)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) DeleteStatus(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) SaveEmailToken(ctx context.Context, token models.EmailToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *RepoMock) TakeEmailToken(ctx context.Context, token string) (*models.EmailToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmailToken), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Create_HashesPassword(t *testing.T) {
	repoMock := new(RepoMock)
	repoMock.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Username == "newuser" &&
			u.PasswordHash != "" &&
			u.PasswordHash != "password123" &&
			u.Role == models.RoleClient &&
			u.Status == models.StatusActive
	})).Return(5, nil).Once()

	service := user.New(repoMock, nil, discardLogger())
	id, err := service.Create(context.Background(), models.DummyUser{
		Username: "newuser",
		Password: "password123",
		Email:    "new@example.com",
		Phone:    "+79001234567",
		Role:     models.RoleClient,
		Status:   models.StatusActive,
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, id)
	repoMock.AssertExpectations(t)
}

func TestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusName string
		setupMocks func(r *RepoMock)
		wantErr    error
	}{
		{
			name:       "ban user",
			statusName: models.StatusBanned,
			setupMocks: func(r *RepoMock) {
				r.On("UpdateUserStatus", mock.Anything, 1, models.StatusBanned).
					Return(nil).Once()
			},
		},
		{
			name:       "unknown user",
			statusName: models.StatusBanned,
			setupMocks: func(r *RepoMock) {
				r.On("UpdateUserStatus", mock.Anything, 1, models.StatusBanned).
					Return(repository.ErrNotFound).Once()
			},
			wantErr: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoMock := new(RepoMock)
			tt.setupMocks(repoMock)

			service := user.New(repoMock, nil, discardLogger())
			err := service.UpdateStatus(context.Background(), 1, tt.statusName)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			repoMock.AssertExpectations(t)
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	repoMock := new(RepoMock)
	repoMock.On("GetUserByUsername", mock.Anything, "testuser").
		Return(&models.User{ID: 3, Username: "testuser"}, nil).Once()
	repoMock.On("UpdatePasswordHash", mock.Anything, 3,
		mock.MatchedBy(func(hash string) bool {
			return hash != "" && hash != "new-password"
		})).Return(nil).Once()

	service := user.New(repoMock, nil, discardLogger())
	err := service.ChangePassword(context.Background(), "testuser", "new-password")

	assert.NoError(t, err)
	repoMock.AssertExpectations(t)
}

func TestService_RequestProfileUpdate_WithoutBroker(t *testing.T) {
	// без канала RabbitMQ изменение применяется сразу
	repoMock := new(RepoMock)
	repoMock.On("GetUserByUsername", mock.Anything, "testuser").
		Return(&models.User{ID: 3, Username: "testuser"}, nil).Once()
	repoMock.On("UpdateProfile", mock.Anything, 3,
		"newname", "new@example.com", "+79009999999").Return(nil).Once()

	service := user.New(repoMock, nil, discardLogger())
	err := service.RequestProfileUpdate(context.Background(),
		"testuser", "newname", "new@example.com", "+79009999999")

	assert.NoError(t, err)
	repoMock.AssertExpectations(t)
}

func TestService_ConfirmProfileUpdate(t *testing.T) {
	repoMock := new(RepoMock)
	repoMock.On("TakeEmailToken", mock.Anything, "token-value").
		Return(&models.EmailToken{
			Token:       "token-value",
			UserID:      3,
			NewEmail:    "new@example.com",
			NewUsername: "newname",
			NewPhone:    "+79009999999",
			ExpiresAt:   time.Now().UTC().Add(time.Hour),
		}, nil).Once()
	repoMock.On("UpdateProfile", mock.Anything, 3,
		"newname", "new@example.com", "+79009999999").Return(nil).Once()

	service := user.New(repoMock, nil, discardLogger())
	err := service.ConfirmProfileUpdate(context.Background(), "token-value")

	assert.NoError(t, err)
	repoMock.AssertExpectations(t)
}

func TestService_ConfirmProfileUpdate_UnknownToken(t *testing.T) {
	repoMock := new(RepoMock)
	repoMock.On("TakeEmailToken", mock.Anything, "stale-token").
		Return(nil, repository.ErrNotFound).Once()

	service := user.New(repoMock, nil, discardLogger())
	err := service.ConfirmProfileUpdate(context.Background(), "stale-token")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	repoMock.AssertExpectations(t)
}

func TestService_RenameRole(t *testing.T) {
	tests := []struct {
		name       string
		roleID     int
		newName    string
		setupMocks func(r *RepoMock)
		wantErr    error
	}{
		{
			name:    "custom role renamed",
			roleID:  3,
			newName: "support",
			setupMocks: func(r *RepoMock) {
				r.On("GetRoleByID", mock.Anything, 3).
					Return(&models.Role{ID: 3, Name: "operator"}, nil).Once()
				r.On("UpdateRole", mock.Anything, 3, "support").
					Return(1, nil).Once()
			},
		},
		{
			name:    "built-in role is protected",
			roleID:  1,
			newName: "superadmin",
			setupMocks: func(r *RepoMock) {
				r.On("GetRoleByID", mock.Anything, 1).
					Return(&models.Role{ID: 1, Name: models.RoleAdmin}, nil).Once()
			},
			wantErr: repository.ErrConflict,
		},
		{
			name:    "unknown role",
			roleID:  99,
			newName: "support",
			setupMocks: func(r *RepoMock) {
				r.On("GetRoleByID", mock.Anything, 99).
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoMock := new(RepoMock)
			tt.setupMocks(repoMock)

			service := user.New(repoMock, nil, discardLogger())
			count, err := service.RenameRole(context.Background(), tt.roleID, tt.newName)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, count)
			}
			repoMock.AssertExpectations(t)
		})
	}
}

func TestService_DeleteRole_BuiltinProtected(t *testing.T) {
	repoMock := new(RepoMock)
	repoMock.On("GetRoleByID", mock.Anything, 2).
		Return(&models.Role{ID: 2, Name: models.RoleClient}, nil).Once()

	service := user.New(repoMock, nil, discardLogger())
	_, err := service.DeleteRole(context.Background(), 2)

	assert.ErrorIs(t, err, repository.ErrConflict)
	repoMock.AssertNotCalled(t, "DeleteRole", mock.Anything, mock.Anything)
	repoMock.AssertExpectations(t)
}

func TestService_DeleteStatus_BuiltinProtected(t *testing.T) {
	repoMock := new(RepoMock)
	repoMock.On("GetStatusByID", mock.Anything, 3).
		Return(&models.Status{ID: 3, Name: models.StatusBanned}, nil).Once()

	service := user.New(repoMock, nil, discardLogger())
	_, err := service.DeleteStatus(context.Background(), 3)

	assert.ErrorIs(t, err, repository.ErrConflict)
	repoMock.AssertNotCalled(t, "DeleteStatus", mock.Anything, mock.Anything)
	repoMock.AssertExpectations(t)
}

func TestService_DeleteStatus_Custom(t *testing.T) {
	repoMock := new(RepoMock)
	repoMock.On("GetStatusByID", mock.Anything, 7).
		Return(&models.Status{ID: 7, Name: "suspended"}, nil).Once()
	repoMock.On("DeleteStatus", mock.Anything, 7).Return(1, nil).Once()

	service := user.New(repoMock, nil, discardLogger())
	count, err := service.DeleteStatus(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	repoMock.AssertExpectations(t)
}
