package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// Generate Random String (for session identifiers)
func GenerateRandomToken(length int) (string, error) {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func GenerateSessionID() (string, error) {
	return GenerateRandomToken(32)
}
