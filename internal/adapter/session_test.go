package adapter

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": "acc-1",
		"exp": time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestSession_TokenRoundTrip(t *testing.T) {
	s := NewSession("  abc  ")
	assert.Equal(t, "abc", s.Token())

	s.SetToken("def")
	assert.Equal(t, "def", s.Token())
}

func TestSessionValid_EmptyToken(t *testing.T) {
	assert.False(t, NewSession("").Valid())
}

func TestSessionValid_NotAJWT(t *testing.T) {
	assert.False(t, NewSession("not-a-jwt").Valid())
}

func TestSessionValid_Expired(t *testing.T) {
	s := NewSession(signedToken(t, -time.Hour))
	assert.False(t, s.Valid())
}

func TestSessionValid_Live(t *testing.T) {
	s := NewSession(signedToken(t, time.Hour))
	assert.True(t, s.Valid())
}

func TestSessionValid_NoExpiryClaim(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "acc-1"}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	assert.False(t, NewSession(token).Valid())
}
