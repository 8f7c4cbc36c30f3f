package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewService(t *testing.T) {
	secretKey := "test-secret-key"
	service := NewService(secretKey)

	assert.NotNil(t, service)
	assert.Equal(t, []byte(secretKey), service.secretKey)
}

func TestGenerateToken(t *testing.T) {
	service := NewService("test-secret-key")

	token, err := service.GenerateToken("user-123", "innovator42")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken(t *testing.T) {
	service := NewService("test-secret-key")
	userID := "user-123"
	identityName := "innovator42"

	token, err := service.GenerateToken(userID, identityName)
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, identityName, claims.IdentityName)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := NewService("test-secret-key")

	_, err := service.ValidateToken("invalid-token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-key-1")
	service2 := NewService("secret-key-2")

	token, err := service1.GenerateToken("user-123", "innovator42")
	assert.NoError(t, err)

	_, err = service2.ValidateToken(token)
	assert.Error(t, err)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	service := NewService("test-secret-key")
	userID := "user-123"

	refresh, err := service.GenerateRefreshToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, refresh)

	gotID, err := service.ValidateRefreshToken(refresh)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestValidateRefreshToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-key-1")
	service2 := NewService("secret-key-2")

	refresh, err := service1.GenerateRefreshToken("user-123")
	assert.NoError(t, err)

	_, err = service2.ValidateRefreshToken(refresh)
	assert.Error(t, err)
}
