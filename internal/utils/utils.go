package utils

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NanoID returns a 21-character URL-safe identifier, used for idempotency
// keys and local message keys.
func NanoID() string {
	return NanoIDSize(21)
}

func NanoIDSize(size int) string {
	return gonanoid.MustGenerate(nanoidAlphabet, size)
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

func StringPtr(s string) *string {
	return &s
}

func PtrTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
