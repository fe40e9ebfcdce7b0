package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// HashAuthKey сворачивает auth key в hex(SHA256).
// В таком виде ключ уходит в таблицу users и сравнивается при логине;
// сам ключ уже продукт Argon2id на клиенте, сервер пароль не видит.
func HashAuthKey(authKey []byte) (string, error) {
	if len(authKey) == 0 {
		return "", fmt.Errorf("auth key cannot be empty")
	}

	hash := sha256.Sum256(authKey)

	return hex.EncodeToString(hash[:]), nil
}

// VerifyAuthKey сверяет предъявленный auth key с хешем из users.
// Сравнение за константное время, чтобы логин не подтекал таймингом.
func VerifyAuthKey(authKey []byte, hashedAuthKey string) error {
	if len(authKey) == 0 {
		return fmt.Errorf("auth key cannot be empty")
	}
	if hashedAuthKey == "" {
		return fmt.Errorf("hashed auth key cannot be empty")
	}

	computedHash, err := HashAuthKey(authKey)
	if err != nil {
		return fmt.Errorf("failed to compute auth key hash: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(computedHash), []byte(hashedAuthKey)) != 1 {
		return fmt.Errorf("invalid auth key")
	}

	return nil
}
