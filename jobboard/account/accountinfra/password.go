package accountinfra

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher hashes passwords with bcrypt
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a hasher with the given cost.
// A cost of 0 falls back to bcrypt.DefaultCost.
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of the given plaintext password
func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare checks a plaintext password against a stored hash
func (h *BcryptPasswordHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
