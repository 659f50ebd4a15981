package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func runAuth(token string) (*httptest.ResponseRecorder, string, string) {
	var userID, userType string
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID = GetUserID(r.Context())
		userType = GetUserType(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/profile/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, userID, userType
}

func TestAuthInjectsClaims(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":      "user-1",
		"userType": "athlete",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	rec, userID, userType := runAuth(token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "athlete", userType)
}

func TestAuthMissingToken(t *testing.T) {
	rec, _, _ := runAuth("")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMalformedToken(t *testing.T) {
	rec, _, _ := runAuth("not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthWrongSecret(t *testing.T) {
	token := signToken(t, []byte("other-secret"), jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, _, _ := runAuth(token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	rec, _, _ := runAuth(token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthTokenWithoutSubject(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, _, _ := runAuth(token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
