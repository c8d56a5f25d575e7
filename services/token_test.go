package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserId: 42}, 60)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := GetUserIDFromToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestGetUserIDFromToken_RejectsTampered(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserId: 42}, 60)
	assert.NoError(t, err)

	_, err = GetUserIDFromToken(token + "x")
	assert.Error(t, err)
}

func TestGetUserIDFromToken_RejectsWrongSecret(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")
	token, err := GenerateToken(UserInfo{UserId: 7}, 60)
	assert.NoError(t, err)

	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "other-secret")
	_, err = GetUserIDFromToken(token)
	assert.Error(t, err)
}

func TestGetUserIDFromToken_RejectsGarbage(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	_, err := GetUserIDFromToken("not-a-token")
	assert.Error(t, err)
}
