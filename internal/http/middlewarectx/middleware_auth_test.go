package middlewarectx_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	customjwt "github.com/magabrotheeeer/telecom-provider/internal/lib/jwt"
	"github.com/magabrotheeeer/telecom-provider/internal/http/middlewarectx"
	"github.com/magabrotheeeer/telecom-provider/internal/models"
)

// Мок для jwt.Maker
type MakerMock struct {
	mock.Mock
}

func (m *MakerMock) GenerateToken(username, role string) (string, error) {
	args := m.Called(username, role)
	return args.String(0), args.Error(1)
}

func (m *MakerMock) ParseToken(token string) (*customjwt.CustomClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customjwt.CustomClaims), args.Error(1)
}

func (m *MakerMock) Verify(token, expectedSubject string) bool {
	args := m.Called(token, expectedSubject)
	return args.Bool(0)
}

func (m *MakerMock) ExtractSubject(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// Мок для blacklist.Blacklist
type BlacklistMock struct {
	mock.Mock
}

func (m *BlacklistMock) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *BlacklistMock) IsRevoked(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

// Мок для PrincipalResolver
type ResolverMock struct {
	mock.Mock
}

func (m *ResolverMock) ResolvePrincipal(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// captureHandler запоминает, дошёл ли запрос до обработчика, и с какой
// аутентификацией.
type captureHandler struct {
	called   bool
	username string
	role     string
}

func (p *captureHandler) ServeHTTP(_ http.ResponseWriter, r *http.Request) {
	p.called = true
	p.username, _ = middlewarectx.UsernameFromContext(r.Context())
	p.role, _ = middlewarectx.RoleFromContext(r.Context())
}

func serveAuth(t *testing.T, maker *MakerMock, registry *BlacklistMock, resolver *ResolverMock, authHeader string) (*httptest.ResponseRecorder, *captureHandler) {
	t.Helper()

	probe := &captureHandler{}
	handler := middlewarectx.AuthMiddleware(maker, registry, resolver, discardLogger())(probe)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr, probe
}

func TestAuthMiddleware_NoHeaderPassesThroughUnauthenticated(t *testing.T) {
	maker := new(MakerMock)
	registry := new(BlacklistMock)
	resolver := new(ResolverMock)

	rr, probe := serveAuth(t, maker, registry, resolver, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, probe.called)
	assert.Empty(t, probe.username)
	registry.AssertNotCalled(t, "IsRevoked", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_RevokedTokenRejectedBeforeVerify(t *testing.T) {
	maker := new(MakerMock)
	registry := new(BlacklistMock)
	resolver := new(ResolverMock)
	registry.On("IsRevoked", mock.Anything, "revoked-token").Return(true, nil).Once()

	rr, probe := serveAuth(t, maker, registry, resolver, "Bearer revoked-token")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, probe.called)
	// отозванный токен отклоняется до любой криптографии
	maker.AssertNotCalled(t, "ExtractSubject", mock.Anything)
	maker.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	registry.AssertExpectations(t)
}

func TestAuthMiddleware_RegistryErrorFailsClosed(t *testing.T) {
	maker := new(MakerMock)
	registry := new(BlacklistMock)
	resolver := new(ResolverMock)
	registry.On("IsRevoked", mock.Anything, "token").
		Return(false, errors.New("redis down")).Once()

	rr, probe := serveAuth(t, maker, registry, resolver, "Bearer token")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, probe.called)
	registry.AssertExpectations(t)
}

func TestAuthMiddleware_BannedUserForbiddenEvenWithValidToken(t *testing.T) {
	maker := new(MakerMock)
	registry := new(BlacklistMock)
	resolver := new(ResolverMock)
	registry.On("IsRevoked", mock.Anything, "token").Return(false, nil).Once()
	maker.On("ExtractSubject", "token").Return("testuser", nil).Once()
	resolver.On("ResolvePrincipal", mock.Anything, "testuser").
		Return(&models.User{
			Username: "testuser",
			Role:     models.RoleClient,
			Status:   models.StatusBanned,
		}, nil).Once()

	rr, probe := serveAuth(t, maker, registry, resolver, "Bearer token")

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, probe.called)
	maker.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	resolver.AssertExpectations(t)
}

func TestAuthMiddleware_InactiveUserForbidden(t *testing.T) {
	maker := new(MakerMock)
	registry := new(BlacklistMock)
	resolver := new(ResolverMock)
	registry.On("IsRevoked", mock.Anything, "token").Return(false, nil).Once()
	maker.On("ExtractSubject", "token").Return("testuser", nil).Once()
	resolver.On("ResolvePrincipal", mock.Anything, "testuser").
		Return(&models.User{
			Username: "testuser",
			Role:     models.RoleClient,
			Status:   models.StatusInactive,
		}, nil).Once()

	rr, probe := serveAuth(t, maker, registry, resolver, "Bearer token")

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, probe.called)
}

func TestAuthMiddleware_UnparsableTokenPassesThroughUnauthenticated(t *testing.T) {
	maker := new(MakerMock)
	registry := new(BlacklistMock)
	resolver := new(ResolverMock)
	registry.On("IsRevoked", mock.Anything, "garbage").Return(false, nil).Once()
	maker.On("ExtractSubject", "garbage").
		Return("", errors.New("token is malformed")).Once()

	rr, probe := serveAuth(t, maker, registry, resolver, "Bearer garbage")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, probe.called)
	assert.Empty(t, probe.username)
	resolver.AssertNotCalled(t, "ResolvePrincipal", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_VerifyFailurePassesThroughUnauthenticated(t *testing.T) {
	maker := new(MakerMock)
	registry := new(BlacklistMock)
	resolver := new(ResolverMock)
	registry.On("IsRevoked", mock.Anything, "expired-token").Return(false, nil).Once()
	maker.On("ExtractSubject", "expired-token").Return("testuser", nil).Once()
	resolver.On("ResolvePrincipal", mock.Anything, "testuser").
		Return(&models.User{
			Username: "testuser",
			Role:     models.RoleClient,
			Status:   models.StatusActive,
		}, nil).Once()
	maker.On("Verify", "expired-token", "testuser").Return(false).Once()

	rr, probe := serveAuth(t, maker, registry, resolver, "Bearer expired-token")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, probe.called)
	assert.Empty(t, probe.username)
}

func TestAuthMiddleware_ValidTokenAuthenticates(t *testing.T) {
	maker := new(MakerMock)
	registry := new(BlacklistMock)
	resolver := new(ResolverMock)
	registry.On("IsRevoked", mock.Anything, "token").Return(false, nil).Once()
	maker.On("ExtractSubject", "token").Return("testuser", nil).Once()
	resolver.On("ResolvePrincipal", mock.Anything, "testuser").
		Return(&models.User{
			Username: "testuser",
			Role:     models.RoleAdmin,
			Status:   models.StatusActive,
		}, nil).Once()
	maker.On("Verify", "token", "testuser").Return(true).Once()

	rr, probe := serveAuth(t, maker, registry, resolver, "Bearer token")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, probe.called)
	assert.Equal(t, "testuser", probe.username)
	assert.Equal(t, models.RoleAdmin, probe.role)
}

func TestRequireAuth(t *testing.T) {
	probe := &captureHandler{}
	handler := middlewarectx.RequireAuth(discardLogger())(probe)

	// без аутентификации — 401
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, probe.called)

	// с аутентификацией — пропускает
	ctx := context.WithValue(req.Context(), middlewarectx.User, "testuser")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req.WithContext(ctx))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, probe.called)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{name: "admin allowed", role: models.RoleAdmin, wantCode: http.StatusOK},
		{name: "client forbidden", role: models.RoleClient, wantCode: http.StatusForbidden},
		{name: "no role forbidden", role: "", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &captureHandler{}
			handler := middlewarectx.RequireAdmin(discardLogger())(probe)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.role != "" {
				req = req.WithContext(
					context.WithValue(req.Context(), middlewarectx.Role, tt.role))
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantCode == http.StatusOK, probe.called)
		})
	}
}
