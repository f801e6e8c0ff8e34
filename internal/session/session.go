// Package session owns the authenticated session token for the lifetime of
// the app. The data-fetch layer reads the token through the Session and may
// invalidate it on a 401, but never mutates it otherwise.
package session

import (
	"sync"
	"time"
)

// Session wraps the bearer token issued by the platform's auth service. It is
// created once at app start and torn down by Invalidate (sign-out).
type Session struct {
	mu        sync.RWMutex
	token     string
	onSignOut func()
	signedOut bool
}

type Option func(*Session)

// WithSignOutHook registers a callback fired exactly once when the session is
// invalidated, e.g. by the API layer observing a 401.
func WithSignOutHook(fn func()) Option {
	return func(s *Session) {
		s.onSignOut = fn
	}
}

func New(token string, opts ...Option) *Session {
	s := &Session{token: token}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token returns the current bearer token, empty once signed out or when the
// session was anonymous to begin with.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Invalidate clears the token and fires the sign-out hook. Safe to call more
// than once; the hook runs only on the first call.
func (s *Session) Invalidate() {
	s.mu.Lock()
	alreadyOut := s.signedOut
	s.token = ""
	s.signedOut = true
	hook := s.onSignOut
	s.mu.Unlock()

	if !alreadyOut && hook != nil {
		hook()
	}
}

// Expired reports whether the token carries an exp claim in the past. An
// unparseable or claim-less token is not considered expired; the server is
// the judge of those.
func (s *Session) Expired(now time.Time) bool {
	claims, err := s.Claims()
	if err != nil || claims.ExpiresAt.IsZero() {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
