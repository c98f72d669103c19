// Package hash wraps bcrypt password hashing so services never touch the
// raw primitive directly.
package hash

import "golang.org/x/crypto/bcrypt"

// Cost mirrors the 10 rounds the portal has always used for stored hashes.
const Cost = 10

// Password hashes a plaintext password with a fresh random salt.
func Password(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored bcrypt hash. A malformed
// stored hash is indistinguishable from a wrong password.
func Verify(plain, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
