package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword checks a candidate against its hashed value. A mismatch
// returns (false, nil); a non-nil error means the primitive itself failed,
// e.g. the stored value is not a bcrypt hash.
func VerifyPassword(hashed, candidate string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(candidate))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
