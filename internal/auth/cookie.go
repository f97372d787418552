package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Signer signs and verifies cookie values with HMAC-SHA256.
type Signer struct {
	key []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{key: []byte(secret)}
}

// Sign creates a signed cookie value in the format "value|signature"
func (s *Signer) Sign(value string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(value))
	signature := mac.Sum(nil)
	return fmt.Sprintf("%s|%s", base64.URLEncoding.EncodeToString([]byte(value)), base64.URLEncoding.EncodeToString(signature))
}

// Verify verifies the signed cookie and returns the original value
func (s *Signer) Verify(signedValue string) (string, error) {
	parts := strings.Split(signedValue, "|")
	if len(parts) != 2 {
		return "", errors.New("invalid cookie format")
	}

	valueBytes, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", errors.New("invalid value encoding")
	}
	value := string(valueBytes)

	signature, err := base64.URLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", errors.New("invalid signature encoding")
	}

	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(value))
	expectedSignature := mac.Sum(nil)

	if !hmac.Equal(signature, expectedSignature) {
		return "", errors.New("invalid signature")
	}

	return value, nil
}
