// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串。
// 每次呼叫產生獨立的鹽，相同明文不會得到相同哈希。
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// VerifyPassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func VerifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
