package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/photodrop-app/photodrop-backend/pkg/token"
)

func TestAuthGuard_RejectsBadCredentials(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	get := func(authHeader string) *http.Response {
		req, err := http.NewRequest(http.MethodGet, "/upload", nil)
		if err != nil {
			t.Fatalf("failed to build request: %v", err)
		}
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		resp, err := env.app.Test(req, -1)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		return resp
	}

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signWithSecret(t, "other-secret", time.Hour)},
		{"expired", "Bearer " + signWithSecret(t, "test-secret", -time.Hour)},
	}

	for _, tc := range cases {
		resp := get(tc.header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, tc.name)
	}
}

func TestAuthGuard_RejectsUnknownUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	// Valid signature but no such user row.
	tok, err := env.tokens.Generate(12345, "ghost@x.com")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	resp := env.doJSON(t, http.MethodGet, "/upload", nil, tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthGuard_AllowsValidToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	tok := env.signup(t, "Ann", "ann@x.com", "secret1")

	resp := env.doJSON(t, http.MethodGet, "/upload", nil, tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// signWithSecret builds a token for user 1 under an arbitrary secret and
// remaining lifetime.
func signWithSecret(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()

	claims := token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: 1,
		Email:  "ann@x.com",
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}
	return signed
}
