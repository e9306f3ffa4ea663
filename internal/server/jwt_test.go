package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-validator/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := testJWTService()
	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.ValidateToken(token))
}

func TestJWTService_EmptyToken(t *testing.T) {
	assert.Error(t, testJWTService().ValidateToken(""))
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 1})
	assert.Error(t, other.ValidateToken(token))
}

func TestJWTService_Tampered(t *testing.T) {
	svc := testJWTService()
	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	assert.Error(t, svc.ValidateToken(token+"x"))
}
