package jwt

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSecret() string {
	return base64.StdEncoding.EncodeToString([]byte("test_secret_key_1234567890"))
}

func TestMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	tokenTTL := 15 * time.Minute
	maker, err := NewMaker(testSecret(), tokenTTL)
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		role     string
	}{
		{
			name:     "admin user",
			username: "admin_user",
			role:     "admin",
		},
		{
			name:     "client user",
			username: "regular_user",
			role:     "client",
		},
		{
			name:     "user with numbers in username",
			username: "user123",
			role:     "client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.username, tt.role)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.username, claims.Subject)
			assert.Equal(t, tt.role, claims.Role)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestMaker_NewMaker_InvalidSecret(t *testing.T) {
	maker, err := NewMaker("%%%not-base64%%%", time.Minute)
	assert.Error(t, err)
	assert.Nil(t, maker)
}

func TestMaker_ParseToken_InvalidTokens(t *testing.T) {
	maker, err := NewMaker(testSecret(), 15*time.Minute)
	require.NoError(t, err)

	validToken, err := maker.GenerateToken("testuser", "client")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "malformed token",
			token: "invalid.token.here",
		},
		{
			name:  "expired token",
			token: createExpiredToken(t),
		},
		{
			name:  "wrong secret key",
			token: createTokenWithWrongSecret(t),
		},
		{
			name:  "tampered token",
			token: validToken + "tampered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestMaker_Verify(t *testing.T) {
	maker, err := NewMaker(testSecret(), 15*time.Minute)
	require.NoError(t, err)

	token, err := maker.GenerateToken("alice", "client")
	require.NoError(t, err)

	assert.True(t, maker.Verify(token, "alice"))
	assert.False(t, maker.Verify(token, "bob"))
	assert.False(t, maker.Verify("garbage", "alice"))
	assert.False(t, maker.Verify(createExpiredToken(t), "testuser"))
}

func TestMaker_ExtractSubject(t *testing.T) {
	maker, err := NewMaker(testSecret(), 15*time.Minute)
	require.NoError(t, err)

	token, err := maker.GenerateToken("alice", "client")
	require.NoError(t, err)

	subject, err := maker.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	// Истёкший токен всё ещё отдаёт subject: шлюзу нужно знать,
	// чей статус перепроверять.
	subject, err = maker.ExtractSubject(createExpiredToken(t))
	require.NoError(t, err)
	assert.Equal(t, "testuser", subject)

	// Чужая подпись — отказ даже без проверки срока действия.
	_, err = maker.ExtractSubject(createTokenWithWrongSecret(t))
	assert.Error(t, err)
}

func createExpiredToken(t *testing.T) string {
	maker, err := NewMaker(testSecret(), -time.Hour)
	require.NoError(t, err)
	token, err := maker.GenerateToken("testuser", "client")
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongSecret := base64.StdEncoding.EncodeToString([]byte("wrong_secret_key"))
	wrongMaker, err := NewMaker(wrongSecret, 15*time.Minute)
	require.NoError(t, err)
	token, err := wrongMaker.GenerateToken("testuser", "client")
	require.NoError(t, err)
	return token
}

func TestMaker_TokenExpiration(t *testing.T) {
	shortTTL := 100 * time.Millisecond
	maker, err := NewMaker(testSecret(), shortTTL)
	require.NoError(t, err)

	token, err := maker.GenerateToken("testuser", "client")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.NotNil(t, claims)

	time.Sleep(150 * time.Millisecond)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}
