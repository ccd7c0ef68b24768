package auth

import "time"

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
}

type VendorCount struct {
	Count int64 `json:"count"`
	Max   int   `json:"max"`
}

// TokenIssuer signs session tokens; *session.Signer satisfies it.
type TokenIssuer interface {
	Issue(userID uint64, username, role string) (string, error)
	TTL() time.Duration
}
