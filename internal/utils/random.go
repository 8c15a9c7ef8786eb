package utils

import (
	"crypto/rand"     // Entropy source for placeholder secrets
	"encoding/base64" // Secret encoding
	"strings"         // Username normalization

	"github.com/google/uuid" // Random username suffix
)

// GeneratePassword returns a high-entropy placeholder secret for accounts
// created through OAuth, so they still carry a usable credential.
func GeneratePassword() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GenerateUsername derives a username from an OAuth display name: lowercased
// with spaces removed, plus a random suffix to keep it unique.
func GenerateUsername(name string) string {
	if name == "" {
		name = "user" // Default base when the provider sends no name
	}
	base := strings.ToLower(strings.Join(strings.Fields(name), ""))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return base + suffix
}
