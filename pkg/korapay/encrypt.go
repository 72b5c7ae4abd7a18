package korapay

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

const (
	ivSize  = 16
	tagSize = 16
)

// EncryptPayload encrypts a card charge payload the way Korapay expects:
// AES-256-GCM with a random 16 byte IV, rendered as hex "iv:ciphertext:tag".
// The encryption key is used as raw bytes and must be 32 bytes long.
func EncryptPayload(encryptionKey string, payload []byte) (string, error) {
	return encryptPayload(rand.Reader, encryptionKey, payload)
}

func encryptPayload(random io.Reader, encryptionKey string, payload []byte) (string, error) {
	gcm, err := newGCM(encryptionKey)
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(random, iv); err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	sealed := gcm.Seal(nil, iv, payload, nil)
	ciphertext, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext) + ":" + hex.EncodeToString(tag), nil
}

// DecryptPayload reverses EncryptPayload.
func DecryptPayload(encryptionKey, encrypted string) ([]byte, error) {
	parts := strings.Split(encrypted, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("encrypted payload must have 3 parts, got %d", len(parts))
	}

	decoded := make([][]byte, 3)
	for i, part := range parts {
		b, err := hex.DecodeString(part)
		if err != nil {
			return nil, fmt.Errorf("encrypted payload part %d: %w", i, err)
		}
		decoded[i] = b
	}

	gcm, err := newGCM(encryptionKey)
	if err != nil {
		return nil, err
	}
	if len(decoded[0]) != ivSize {
		return nil, fmt.Errorf("IV must be %d bytes, got %d", ivSize, len(decoded[0]))
	}

	return gcm.Open(nil, decoded[0], append(decoded[1], decoded[2]...), nil)
}

func newGCM(encryptionKey string) (cipher.AEAD, error) {
	if len(encryptionKey) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(encryptionKey))
	}

	block, err := aes.NewCipher([]byte(encryptionKey))
	if err != nil {
		return nil, err
	}

	return cipher.NewGCMWithNonceSize(block, ivSize)
}
