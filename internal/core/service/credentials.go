package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

// Credentials hashes and verifies passwords with bcrypt.
type Credentials struct {
	cost int
}

// NewCredentials returns a Credentials using cost, or bcrypt.DefaultCost when
// cost is outside bcrypt's accepted range.
func NewCredentials(cost int) Credentials {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Credentials{cost: cost}
}

// Hash returns a salted bcrypt hash of password.
func (c Credentials) Hash(password string) (string, error) {
	cost := c.cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password longer than 72 bytes", domain.ErrValidation)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. A malformed hash never matches.
func (c Credentials) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
