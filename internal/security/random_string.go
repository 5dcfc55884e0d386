package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const digitAlphabet = "0123456789"

var errEmptyAlphabet = errors.New("alphabet must not be empty")

// RandomString returns a cryptographically secure, unbiased string of the
// requested length drawn from the alphabet.
func RandomString(length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

// RandomPIN returns a numeric PIN of the requested length.
func RandomPIN(length int) (string, error) {
	return RandomString(length, digitAlphabet)
}
