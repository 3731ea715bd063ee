package auth

import (
	"golang.org/x/crypto/bcrypt"

	"backoffice/config"
	"backoffice/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher. The work factor comes
// from configuration so deployments can raise it without a code change.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}
