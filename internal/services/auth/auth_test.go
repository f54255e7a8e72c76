package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	customjwt "github.com/magabrotheeeer/telecom-provider/internal/lib/jwt"
	"github.com/magabrotheeeer/telecom-provider/internal/lib/password"
	"github.com/magabrotheeeer/telecom-provider/internal/models"
	"github.com/magabrotheeeer/telecom-provider/internal/services/auth"
	"github.com/magabrotheeeer/telecom-provider/internal/storage/repository"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) CreateUser(ctx context.Context, user models.User) (int, error) {
	args := m.Called(ctx, user)
	return args.Int(0), args.Error(1)
}

func (m *UserRepoMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Мок для jwt.Maker
type JwtMakerMock struct {
	mock.Mock
}

func (m *JwtMakerMock) GenerateToken(username, role string) (string, error) {
	args := m.Called(username, role)
	return args.String(0), args.Error(1)
}

func (m *JwtMakerMock) ParseToken(token string) (*customjwt.CustomClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customjwt.CustomClaims), args.Error(1)
}

func (m *JwtMakerMock) Verify(token, expectedSubject string) bool {
	args := m.Called(token, expectedSubject)
	return args.Bool(0)
}

func (m *JwtMakerMock) ExtractSubject(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}


func TestService_Register(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantToken  string
		wantErr    error
	}{
		{
			name: "successful registration",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "test@example.com").
					Return(nil, repository.ErrNotFound).Once()
				r.On("GetUserByPhone", mock.Anything, "+79001234567").
					Return(nil, repository.ErrNotFound).Once()
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Username == "testuser" &&
						user.PasswordHash != "" &&
						user.PasswordHash != "password123" &&
						user.Role == models.RoleClient &&
						user.Status == models.StatusActive
				})).Return(1, nil).Once()
				j.On("GenerateToken", "testuser", models.RoleClient).
					Return("signed-token", nil).Once()
			},
			wantToken: "signed-token",
		},
		{
			name: "email belongs to banned user",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "test@example.com").
					Return(&models.User{Status: models.StatusBanned}, nil).Once()
			},
			wantErr: auth.ErrBanned,
		},
		{
			name: "phone belongs to banned user",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "test@example.com").
					Return(nil, repository.ErrNotFound).Once()
				r.On("GetUserByPhone", mock.Anything, "+79001234567").
					Return(&models.User{Status: models.StatusBanned}, nil).Once()
			},
			wantErr: auth.ErrBanned,
		},
		{
			name: "duplicate username",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "test@example.com").
					Return(nil, repository.ErrNotFound).Once()
				r.On("GetUserByPhone", mock.Anything, "+79001234567").
					Return(nil, repository.ErrNotFound).Once()
				r.On("CreateUser", mock.Anything, mock.Anything).
					Return(0, repository.ErrConflict).Once()
			},
			wantErr: repository.ErrConflict,
		},
		{
			// активный пользователь с той же почтой не блокирует регистрацию
			// сам по себе: конфликт поймает уникальный индекс
			name: "email belongs to active user, conflict from storage",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "test@example.com").
					Return(&models.User{Status: models.StatusActive}, nil).Once()
				r.On("GetUserByPhone", mock.Anything, "+79001234567").
					Return(nil, repository.ErrNotFound).Once()
				r.On("CreateUser", mock.Anything, mock.Anything).
					Return(0, repository.ErrConflict).Once()
			},
			wantErr: repository.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoMock := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			tt.setupMocks(repoMock, jwtMock)

			service := auth.New(repoMock, jwtMock)
			token, err := service.Register(context.Background(),
				"testuser", "password123", "test@example.com", "+79001234567")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
			repoMock.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestService_Login(t *testing.T) {
	hash, err := password.GetHash("correct-password")
	if err != nil {
		t.Fatalf("не удалось захэшировать пароль: %v", err)
	}
	activeUser := &models.User{
		ID:           1,
		Username:     "testuser",
		PasswordHash: hash,
		Role:         models.RoleClient,
		Status:       models.StatusActive,
	}

	tests := []struct {
		name       string
		username   string
		password   string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantToken  string
		wantErr    error
	}{
		{
			name:     "successful login",
			username: "testuser",
			password: "correct-password",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "testuser").
					Return(activeUser, nil).Once()
				j.On("GenerateToken", "testuser", models.RoleClient).
					Return("signed-token", nil).Once()
			},
			wantToken: "signed-token",
		},
		{
			name:     "wrong password",
			username: "testuser",
			password: "wrong-password",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "testuser").
					Return(activeUser, nil).Once()
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name:     "unknown user yields the same error",
			username: "ghost",
			password: "correct-password",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "ghost").
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name:     "banned user cannot login",
			username: "testuser",
			password: "correct-password",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				banned := *activeUser
				banned.Status = models.StatusBanned
				r.On("GetUserByUsername", mock.Anything, "testuser").
					Return(&banned, nil).Once()
			},
			wantErr: auth.ErrBanned,
		},
		{
			name:     "storage error is passed through",
			username: "testuser",
			password: "correct-password",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "testuser").
					Return(nil, errors.New("connection refused")).Once()
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoMock := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			tt.setupMocks(repoMock, jwtMock)

			service := auth.New(repoMock, jwtMock)
			token, err := service.Login(context.Background(), tt.username, tt.password)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantToken != "":
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			default:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
			}
			repoMock.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestService_ResolvePrincipal(t *testing.T) {
	repoMock := new(UserRepoMock)
	jwtMock := new(JwtMakerMock)
	user := &models.User{ID: 1, Username: "testuser", Status: models.StatusActive}
	repoMock.On("GetUserByUsername", mock.Anything, "testuser").Return(user, nil).Once()
	repoMock.On("GetUserByUsername", mock.Anything, "ghost").
		Return(nil, repository.ErrNotFound).Once()

	service := auth.New(repoMock, jwtMock)

	got, err := service.ResolvePrincipal(context.Background(), "testuser")
	assert.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = service.ResolvePrincipal(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	repoMock.AssertExpectations(t)
}
