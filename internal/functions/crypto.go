package functions

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
)

// aesKey приводит секрет произвольной длины к 256-битному ключу.
func aesKey(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

// Encrypt шифрует текст AES-GCM и возвращает base64(nonce + шифртекст).
func Encrypt(plaintext, secret string) (string, error) {
	block, err := aes.NewCipher(aesKey(secret))
	if err != nil {
		return "", fmt.Errorf("ошибка при создании шифра: %v", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("ошибка при создании GCM: %v", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("ошибка при генерации nonce: %v", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt разбирает base64(nonce + шифртекст) обратно в открытый текст.
func Decrypt(encoded, secret string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("ошибка при декодировании base64: %v", err)
	}

	block, err := aes.NewCipher(aesKey(secret))
	if err != nil {
		return "", fmt.Errorf("ошибка при создании шифра: %v", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("ошибка при создании GCM: %v", err)
	}
	if len(raw) < gcm.NonceSize() {
		return "", fmt.Errorf("шифртекст короче nonce")
	}

	nonce, ciphertext := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("ошибка при расшифровке: %v", err)
	}
	return string(plaintext), nil
}

// SignPayload подписывает строку запроса HMAC-SHA256, hex в нижнем регистре.
func SignPayload(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
