package session

import (
	"errors"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwt"
)

var ErrNoToken = errors.New("session: no token")

// Claims is the subset of token claims the client cares about for display
// and UX guards.
type Claims struct {
	Subject   string
	Name      string
	IsAdmin   bool
	ExpiresAt time.Time
}

// Claims parses the bearer token without verifying its signature.
// Verification is the server's job; the client only reads claims to drive
// display (whoami) and proactive expiry detection.
func (s *Session) Claims() (*Claims, error) {
	raw := s.Token()
	if raw == "" {
		return nil, ErrNoToken
	}

	token, err := jwt.ParseInsecure([]byte(raw))
	if err != nil {
		return nil, err
	}

	claims := new(Claims)

	if sub, ok := token.Subject(); ok {
		claims.Subject = sub
	}

	if exp, ok := token.Expiration(); ok {
		claims.ExpiresAt = exp
	}

	// name and isAdmin are private claims; both are optional.
	var name string
	if err := token.Get("name", &name); err == nil {
		claims.Name = name
	}

	var isAdmin bool
	if err := token.Get("isAdmin", &isAdmin); err == nil {
		claims.IsAdmin = isAdmin
	}

	return claims, nil
}
