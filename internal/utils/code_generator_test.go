package utils

import (
	"strings"
	"testing"
)

func TestGenerateGameCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		code, err := GenerateGameCode()
		if err != nil {
			t.Fatalf("GenerateGameCode failed: %v", err)
		}
		if len(code) != CodeLength {
			t.Fatalf("code %q has length %d, want %d", code, len(code), CodeLength)
		}
		for _, ch := range code {
			if !strings.ContainsRune(codeAlphabet, ch) {
				t.Fatalf("code %q contains %c, not in alphabet", code, ch)
			}
		}
		seen[code] = true
	}

	// 200 draws from a 32^5 space colliding down to a handful would mean
	// the generator is broken
	if len(seen) < 190 {
		t.Errorf("only %d distinct codes out of 200", len(seen))
	}
}
