package auth

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the longest password bcrypt accepts, in bytes.
const MaxPasswordLength = 72

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// HashPassword derives a bcrypt digest of password using cost.
func HashPassword(password string, cost int) (string, error) {
	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Hasher hashes and checks passwords at a fixed bcrypt cost.
type Hasher struct {
	cost int

	once  sync.Once
	dummy string
}

// NewHasher creates a Hasher using cost.
func NewHasher(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash derives a digest of password.
func (h *Hasher) Hash(password string) (string, error) {
	return HashPassword(password, h.cost)
}

// Check reports whether password matches hash.
func (h *Hasher) Check(password, hash string) bool {
	return CheckPassword(password, hash)
}

// CheckMissing runs a comparison against a throwaway digest and always
// reports false. Used when the account does not exist so the caller spends
// the same time as for a wrong password.
func (h *Hasher) CheckMissing(password string) bool {
	h.once.Do(func() {
		hash, _ := bcrypt.GenerateFromPassword([]byte("unused"), h.cost)
		h.dummy = string(hash)
	})
	CheckPassword(password, h.dummy)
	return false
}
