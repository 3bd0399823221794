// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"storefront/config"
	"storefront/internal/domain/service"
)

// defaultCost matches the work factor the legacy system ran with.
const defaultCost = 10

// bcryptHasher is a concrete implementation of the CredentialHasher
// interface using bcrypt.
type bcryptHasher struct {
	cost   int
	logger *slog.Logger
}

// NewBcryptHasher is the constructor for bcryptHasher. The cost can be tuned
// through config; zero falls back to the default work factor.
func NewBcryptHasher(cfg *config.Config, logger *slog.Logger) service.CredentialHasher {
	cost := defaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost, logger: logger}
}

// NewBcryptHasherWithCost builds a hasher with an explicit work factor.
// Intended for tests that need a cheap or deliberately invalid cost.
func NewBcryptHasherWithCost(cost int, logger *slog.Logger) service.CredentialHasher {
	return &bcryptHasher{cost: cost, logger: logger}
}

// Hash generates a salted hash from a plaintext password. A failure of the
// underlying primitive is logged and swallowed; callers receive "".
func (h *bcryptHasher) Hash(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		h.logger.Error("Failed to hash password", slog.Any("error", err))

		return ""
	}

	return string(bytes)
}

// Compare reports whether the plaintext matches the hash. A mismatch is not
// an error; anything else from the primitive propagates.
func (h *bcryptHasher) Compare(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}

	return false, err
}
