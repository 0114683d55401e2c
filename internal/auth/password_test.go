package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("secret123", bcrypt.MinCost)
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)

	assert.NoError(t, ComparePassword(hashed, "secret123"))
	assert.Error(t, ComparePassword(hashed, "wrongpass"))
}

func TestHashPasswordClampsInvalidCost(t *testing.T) {
	hashed, err := HashPassword("secret123", 99)
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
