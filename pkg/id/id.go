package id

import "github.com/google/uuid"

// New returns a time-ordered UUIDv7 string. It falls back to a random v4
// when the clock source fails.
func New() string {
	u, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return u.String()
}
