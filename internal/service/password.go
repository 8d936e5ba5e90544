// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	return hashWithCost(password, bcrypt.DefaultCost)
}

func hashWithCost(password string, cost int) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

// CredentialVerifier owns the hashing scheme; the core only stores and
// hands back the opaque digest.
type CredentialVerifier interface {
	Digest(secret string) (string, error)
	Verify(digest, secret string) bool
}

// BcryptVerifier is the default CredentialVerifier. Cost 0 means bcrypt.DefaultCost.
type BcryptVerifier struct {
	Cost int
}

func (b BcryptVerifier) Digest(secret string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return hashWithCost(secret, cost)
}

func (b BcryptVerifier) Verify(digest, secret string) bool {
	return ComparePassword(digest, secret) == nil
}
