package api

import (
	"errors"
	"fmt"
)

// Kind buckets request failures by how callers should react: network errors
// are retryable (the chat poller backs off on them), auth errors force a
// sign-out, server errors are surfaced verbatim and never retried.
type Kind string

const (
	KindNetwork Kind = "network"
	KindAuth    Kind = "auth"
	KindServer  Kind = "server"
)

// Error is the typed failure returned by every client operation.
type Error struct {
	Kind          Kind
	StatusCode    int
	ServerMessage string

	err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("api: network failure: %v", e.err)
	case KindAuth:
		return fmt.Sprintf("api: unauthorized (status %d)", e.StatusCode)
	default:
		if e.ServerMessage != "" {
			return fmt.Sprintf("api: server rejected request (status %d): %s", e.StatusCode, e.ServerMessage)
		}
		return fmt.Sprintf("api: server rejected request (status %d)", e.StatusCode)
	}
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf classifies any error produced by this package; "" for foreign errors.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

func IsNetwork(err error) bool { return KindOf(err) == KindNetwork }
func IsAuth(err error) bool    { return KindOf(err) == KindAuth }
func IsServer(err error) bool  { return KindOf(err) == KindServer }
