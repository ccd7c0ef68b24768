package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt cost used outside tests.
const DefaultCost = 12

// Hash hashes a password with bcrypt at the given cost (DefaultCost when cost <= 0).
func Hash(plain string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches hash.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
