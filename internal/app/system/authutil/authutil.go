// internal/app/system/authutil/authutil.go

// Package authutil handles credential hashing and verification.
package authutil

import "golang.org/x/crypto/bcrypt"

// BcryptCost is the work factor for password hashes.
const BcryptCost = 12

// HashPassword hashes a raw password with bcrypt. The raw password is
// never persisted.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
