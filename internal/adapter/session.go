package adapter

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the bearer token shared by all entity gateways. It is safe for
// concurrent use: workers may refresh the token while a sync cycle is reading
// it.
type Session struct {
	mu    sync.RWMutex
	token string
}

// NewSession constructs a Session pre-loaded with token. An empty token is
// allowed; the session is simply not Valid until SetToken is called.
func NewSession(token string) *Session {
	s := &Session{}
	s.SetToken(token)
	return s
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent authenticated requests.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the session, or an empty
// string if none has been set.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Valid reports whether the session holds a token that has not yet expired.
// The token signature is not verified here; only the backend can do that. The
// expiry claim is checked locally so that sync cycles can fail fast instead of
// issuing requests that are guaranteed to get HTTP 401.
//
// A token that cannot be parsed as a JWT, or that carries no exp claim, is
// treated as invalid.
func (s *Session) Valid() bool {
	token := s.Token()
	if token == "" {
		return false
	}

	exp, err := parseExpiryFromJWT(token)
	if err != nil {
		return false
	}

	return exp.After(time.Now())
}

func parseExpiryFromJWT(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return time.Time{}, errors.New("invalid token claims")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}

	return exp.Time, nil
}
