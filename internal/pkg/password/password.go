// Package password hashes account credentials with bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

// bcrypt ignores everything past 72 bytes, so longer secrets are refused
// instead of being silently truncated.
const maxBytes = 72

var cost = bcrypt.DefaultCost

func HashPassword(plain string) (string, error) {
	if plain == "" || len(plain) > maxBytes {
		return "", ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return string(hashed), nil
}

// ComparePassword reports ErrComparisonFailed for a wrong password and
// ErrInvalidPassword when either side is empty.
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return errors.Join(ErrInvalidPassword, err)
	}
}
