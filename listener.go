package trackhaus

import (
	"crypto/rand"

	"github.com/jxskiss/base62"
)

// APIKeyLength is the amount of random bytes in an api key
const APIKeyLength = 32

// NewAPIKey returns a new random api key
func NewAPIKey() (string, error) {
	b := make([]byte, APIKeyLength)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base62.EncodeToString(b), nil
}
