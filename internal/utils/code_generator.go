package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// codeAlphabet deliberately omits O/0 and I/1 so codes read unambiguously
// when shouted across a living room.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeLength is the length of a game join code
const CodeLength = 5

// GenerateGameCode creates a random join code like "K7XQ2"
func GenerateGameCode() (string, error) {
	code := make([]byte, CodeLength)

	for i := range code {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random code character: %w", err)
		}
		code[i] = codeAlphabet[idx.Int64()]
	}

	return string(code), nil
}
