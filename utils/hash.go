package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes p with the given bcrypt cost.
func HashPassword(p string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(p), cost)
	return string(bytes), err
}

func CheckPassword(hash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
	return err == nil
}
