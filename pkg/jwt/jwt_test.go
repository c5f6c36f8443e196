package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken("garcom-1", "waiter", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "garcom-1", claims.UserID)
	assert.Equal(t, "waiter", claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken("garcom-1", "", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "um")
	token, err := GenerateToken("garcom-1", "", time.Hour)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "outro")
	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken("garcom-1", "", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = ValidateToken("qualquer")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
