package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenTestSecret = "test-secret-key-for-jwt"

func mintToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerify_ValidToken(t *testing.T) {
	svc := NewJWTTokenService(tokenTestSecret, "")
	userID := uuid.New()

	signed := mintToken(t, tokenTestSecret, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestVerify_WrongSecret(t *testing.T) {
	svc := NewJWTTokenService(tokenTestSecret, "")

	signed := mintToken(t, "someone-elses-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.Verify(signed)
	assert.Error(t, err)
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := NewJWTTokenService(tokenTestSecret, "")

	signed := mintToken(t, tokenTestSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := svc.Verify(signed)
	assert.Error(t, err)
}

func TestVerify_IssuerEnforced(t *testing.T) {
	svc := NewJWTTokenService(tokenTestSecret, "orders-app")
	userID := uuid.New()

	good := mintToken(t, tokenTestSecret, jwt.MapClaims{
		"sub": userID.String(),
		"iss": "orders-app",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	claims, err := svc.Verify(good)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	bad := mintToken(t, tokenTestSecret, jwt.MapClaims{
		"sub": userID.String(),
		"iss": "other-app",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err = svc.Verify(bad)
	assert.ErrorContains(t, err, "issuer")
}

func TestVerify_MissingSubject(t *testing.T) {
	svc := NewJWTTokenService(tokenTestSecret, "")

	signed := mintToken(t, tokenTestSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.Verify(signed)
	assert.ErrorContains(t, err, "subject")
}

func TestVerify_SubjectNotUUID(t *testing.T) {
	svc := NewJWTTokenService(tokenTestSecret, "")

	signed := mintToken(t, tokenTestSecret, jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.Verify(signed)
	assert.ErrorContains(t, err, "user ID")
}

func TestVerify_Garbage(t *testing.T) {
	svc := NewJWTTokenService(tokenTestSecret, "")

	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}
