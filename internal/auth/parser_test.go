package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseValidToken(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, jwt.MapClaims{
		"sub":      userID.String(),
		"role":     "SUPERVISOR",
		"projects": []string{"FAC", "FES"},
		"exp":      time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	claims, err := NewParser(testSecret).Parse(token)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "SUPERVISOR", claims.Role)
	assert.Equal(t, []string{"FAC", "FES"}, claims.Projects)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": uuid.NewString()}, "other-secret")

	_, err := NewParser(testSecret).Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	_, err := NewParser(testSecret).Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsMissingSubject(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"role": "VIEWER"}, testSecret)

	_, err := NewParser(testSecret).Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}
