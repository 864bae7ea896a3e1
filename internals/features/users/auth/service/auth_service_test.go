package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perpustakaanku_backend/internals/configs"
	authModel "perpustakaanku_backend/internals/features/users/auth/model"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("biblioteca123")
	require.NoError(t, err)
	assert.NotEqual(t, "biblioteca123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "biblioteca123"))
	assert.Error(t, CheckPasswordHash(hash, "wrong-password"))
	assert.Error(t, CheckPasswordHash(hash, ""))
}

func TestPasswordHashIsSalted(t *testing.T) {
	h1, err := HashPassword("biblioteca123")
	require.NoError(t, err)
	h2, err := HashPassword("biblioteca123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestIssueAccessToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	user := authModel.UserModel{
		UserID:       uuid.New(),
		UserUsername: "bibliotecario",
	}

	tokenStr, expiresAt, err := issueAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	// sessions last a full day
	assert.WithinDuration(t, time.Now().Add(configs.SessionTTL), expiresAt, 5*time.Second)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(tok *jwt.Token) (interface{}, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, tok.Method)
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, user.UserID.String(), claims["sub"])
	assert.Equal(t, "bibliotecario", claims["username"])
	assert.EqualValues(t, expiresAt.Unix(), claims["exp"])
}

func TestIssueAccessTokenRequiresSecret(t *testing.T) {
	configs.JWTSecret = "   "
	t.Cleanup(func() { configs.JWTSecret = "" })

	_, _, err := issueAccessToken(authModel.UserModel{UserID: uuid.New()})
	assert.Error(t, err)
}
