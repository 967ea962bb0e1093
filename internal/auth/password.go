package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt only considers the first 72 bytes of input. Passwords are truncated
// to that bound before hashing and before verification so the two operations
// always agree, and so GenerateFromPassword never rejects long inputs.
const maxPasswordBytes = 72

func truncatePassword(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword returns a bcrypt hash of the (truncated) password using the
// given cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword(truncatePassword(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares a bcrypt hash and a plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(plain)) == nil
}
