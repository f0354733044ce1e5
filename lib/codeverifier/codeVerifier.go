package codeverifier

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
)

const challengeMethod = "S256"

// Verifier is the PKCE code verifier kept by the client while the user authenticates at the provider.
type Verifier struct {
	Value string
}

func NewVerifierFrom(value string) *Verifier {
	return &Verifier{
		Value: value,
	}
}

func NewVerifier() (*Verifier, error) {
	value, err := randomBytesInHex(32)
	if err != nil {
		return nil, err
	}

	return NewVerifierFrom(value), nil
}

func (v *Verifier) CreateChallenge() (string, string, error) {
	sha2 := sha256.New()

	_, err := io.WriteString(sha2, v.Value)
	if err != nil {
		return "", "", fmt.Errorf("could not write challenge: %v", err)
	}

	return challengeMethod, base64.RawURLEncoding.EncodeToString(sha2.Sum(nil)), nil
}

func randomBytesInHex(count int) (string, error) {
	buf := make([]byte, count)

	_, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		return "", fmt.Errorf("could not generate %d random bytes: %v", count, err)
	}

	return hex.EncodeToString(buf), nil
}
