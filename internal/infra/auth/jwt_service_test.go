package auth

import (
	"testing"

	"packline/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t)
	orgID := uuid.New()

	tokenString, err := svc.GenerateToken(orgID, []string{"supervisor"})
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.ValidateToken(tokenString, "test-access-secret")
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, orgID.String(), claims["org"])

	roles, ok := claims["roles"].([]any)
	require.True(t, ok)
	assert.Contains(t, roles, "supervisor")
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	tokenString, err := svc.GenerateToken(uuid.New(), nil)
	require.NoError(t, err)

	token, err := svc.ValidateToken(tokenString, "some-other-secret")
	require.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}

func TestJWTService_ValidateToken_RejectsUnexpectedAlgorithm(t *testing.T) {
	svc := newTestJWTService(t)

	// Token signed with "none" must never validate.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"org": uuid.New().String()})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	token, err := svc.ValidateToken(tokenString, "test-access-secret")
	require.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}
