package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Alphabet without lookalike characters, so generated passwords survive
// being read aloud or retyped.
const tokenAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

var errNonPositiveLength = errors.New("length must be positive")

// GenerateToken returns a cryptographically secure random token of the
// requested length, unbiased over the alphabet.
func GenerateToken(length int) (string, error) {
	if length <= 0 {
		return "", errNonPositiveLength
	}

	limit := big.NewInt(int64(len(tokenAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = tokenAlphabet[position.Int64()]
	}

	return string(value), nil
}
