package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	TokenMin = 100000
	TokenMax = 999999
)

var tokenSpan = big.NewInt(TokenMax - TokenMin + 1)

// GenerateToken returns a random six-digit token in [TokenMin, TokenMax].
// Uniqueness across lots is not checked.
func GenerateToken() (int, error) {
	n, err := rand.Int(rand.Reader, tokenSpan)
	if err != nil {
		return 0, err
	}
	return TokenMin + int(n.Int64()), nil
}
