package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := tm.GenerateToken("user-1", "jane@example.com", domain.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", time.Hour).GenerateToken("user-1", "jane@example.com", domain.RoleUser)
	assert.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	claims := &Claims{
		UserID: "user-1",
		Email:  "jane@example.com",
		Role:   domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = NewTokenManager("test-secret", time.Hour).ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsUnexpectedMethod(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = NewTokenManager("test-secret", time.Hour).ParseToken(signed)
	assert.Error(t, err)
}

func TestTokenManagerDefaultTTL(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	_, expiresAt, err := tm.GenerateToken("user-1", "jane@example.com", domain.RoleUser)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), expiresAt, 5*time.Second)
}
