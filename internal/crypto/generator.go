package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*()_+"
)

var (
	ErrEmptyCharacterPool = errors.New("at least one character class must be selected")
	ErrInvalidLength      = errors.New("password length must be positive")
	ErrIndexOutOfRange    = errors.New("random source returned an index outside the pool")
)

// Selection holds the enabled character classes.
type Selection struct {
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Digits    bool `json:"digits"`
	Symbols   bool `json:"symbols"`
}

// DefaultSelection is the state a fresh or reset form starts in: lowercase only.
func DefaultSelection() Selection {
	return Selection{Lowercase: true}
}

// Empty reports whether no class is enabled.
func (s Selection) Empty() bool {
	return !s.Lowercase && !s.Uppercase && !s.Digits && !s.Symbols
}

// Pool concatenates the literal sets of the enabled classes in the fixed order
// lowercase, uppercase, digits, symbols.
func Pool(sel Selection) string {
	var b strings.Builder
	if sel.Lowercase {
		b.WriteString(LowercaseChars)
	}
	if sel.Uppercase {
		b.WriteString(UppercaseChars)
	}
	if sel.Digits {
		b.WriteString(DigitChars)
	}
	if sel.Symbols {
		b.WriteString(SymbolChars)
	}
	return b.String()
}

// Synthesize builds a password of exactly length characters, each drawn
// independently and uniformly from the selection's pool.
// Range checks beyond length > 0 are the caller's job.
func Synthesize(sel Selection, length int, src RandomSource) (string, error) {
	pool := Pool(sel)
	if pool == "" {
		return "", ErrEmptyCharacterPool
	}
	if length <= 0 {
		return "", ErrInvalidLength
	}
	if src == nil {
		src = CryptoSource{}
	}

	result := make([]byte, length)
	for i := range result {
		idx, err := src.Intn(len(pool))
		if err != nil {
			return "", fmt.Errorf("sampling position %d: %w", i, err)
		}
		if idx < 0 || idx >= len(pool) {
			return "", ErrIndexOutOfRange
		}
		result[i] = pool[idx]
	}

	return string(result), nil
}
