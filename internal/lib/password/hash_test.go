package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashAndCompareHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{
			name:     "simple password",
			password: "password123",
		},
		{
			name:     "password with symbols",
			password: "p@$$w0rd!#",
		},
		{
			name:     "long password",
			password: "a-quite-long-password-with-many-characters-inside",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := GetHash(tt.password)
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)

			assert.NoError(t, CompareHash(hash, tt.password))
			assert.Error(t, CompareHash(hash, tt.password+"wrong"))
		})
	}
}

func TestCompareHash_InvalidHash(t *testing.T) {
	err := CompareHash("not-a-bcrypt-hash", "password")
	assert.Error(t, err)
}

func TestGetHash_DifferentSalts(t *testing.T) {
	first, err := GetHash("same-password")
	require.NoError(t, err)
	second, err := GetHash("same-password")
	require.NoError(t, err)

	// bcrypt генерирует соль на каждый вызов.
	assert.NotEqual(t, first, second)
}
