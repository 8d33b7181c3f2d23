package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/punam06/chatbot-inovatex/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() JWTService {
	return &jwtService{secretKey: "test-secret", issuer: "FOODWISE"}
}

func TestGenerateAndParseUserToken(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.NewString()

	token := svc.GenerateTokenUser(userID, domain.RoleUser)
	require.NotEmpty(t, token)

	parsedID, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
	assert.Equal(t, domain.RoleUser, role)
}

func TestGetUserIDByTokenRejectsGarbage(t *testing.T) {
	svc := newTestJWTService()

	_, _, err := svc.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByTokenRejectsForeignSignature(t *testing.T) {
	svc := newTestJWTService()
	other := &jwtService{secretKey: "another-secret", issuer: "FOODWISE"}

	token := other.GenerateTokenUser(uuid.NewString(), domain.RoleUser)

	_, _, err := svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyEmailTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateTokenVerifyEmail("user@example.com", time.Hour)
	require.NoError(t, err)

	email, err := svc.ValidateTokenVerifyEmail(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestVerifyEmailTokenExpires(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateTokenVerifyEmail("user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateTokenVerifyEmail(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
