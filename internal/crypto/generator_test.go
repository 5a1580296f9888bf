package crypto

import (
	"errors"
	"strings"
	"testing"
)

// sequenceSource replays fixed indices, wrapping around.
type sequenceSource struct {
	indices []int
	pos     int
}

func (s *sequenceSource) Intn(n int) (int, error) {
	v := s.indices[s.pos%len(s.indices)]
	s.pos++
	return v, nil
}

type failingSource struct{ err error }

func (f failingSource) Intn(int) (int, error) { return 0, f.err }

// roundingSource mimics round(random()*n), which can return n itself.
type roundingSource struct{}

func (roundingSource) Intn(n int) (int, error) { return n, nil }

var allClasses = Selection{Lowercase: true, Uppercase: true, Digits: true, Symbols: true}

func TestPool(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want string
	}{
		{name: "none", sel: Selection{}, want: ""},
		{name: "lowercase only", sel: Selection{Lowercase: true}, want: LowercaseChars},
		{name: "uppercase only", sel: Selection{Uppercase: true}, want: UppercaseChars},
		{name: "digits only", sel: Selection{Digits: true}, want: DigitChars},
		{name: "symbols only", sel: Selection{Symbols: true}, want: SymbolChars},
		{name: "upper and digits", sel: Selection{Uppercase: true, Digits: true}, want: UppercaseChars + DigitChars},
		{name: "all", sel: allClasses, want: LowercaseChars + UppercaseChars + DigitChars + SymbolChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pool(tt.sel); got != tt.want {
				t.Errorf("Pool() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSynthesize(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selection
		length  int
		wantErr error
	}{
		{name: "lowercase minimum", sel: Selection{Lowercase: true}, length: 4},
		{name: "all classes maximum", sel: allClasses, length: 16},
		{name: "digits only", sel: Selection{Digits: true}, length: 10},
		{name: "symbols only", sel: Selection{Symbols: true}, length: 8},
		{name: "below form range accepted", sel: Selection{Uppercase: true}, length: 1},
		{name: "above form range accepted", sel: allClasses, length: 64},
		{name: "empty selection", sel: Selection{}, length: 8, wantErr: ErrEmptyCharacterPool},
		{name: "zero length", sel: Selection{Lowercase: true}, length: 0, wantErr: ErrInvalidLength},
		{name: "negative length", sel: Selection{Lowercase: true}, length: -3, wantErr: ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Synthesize(tt.sel, tt.length, CryptoSource{})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Synthesize() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Synthesize() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Synthesize() unexpected error: %v", err)
			}
			if len(result) != tt.length {
				t.Errorf("Synthesize() length = %d, want %d", len(result), tt.length)
			}
			pool := Pool(tt.sel)
			for _, ch := range result {
				if !strings.ContainsRune(pool, ch) {
					t.Errorf("character %q not in pool %q", string(ch), pool)
				}
			}
		})
	}
}

func TestSynthesizeEveryValidLength(t *testing.T) {
	for length := 4; length <= 16; length++ {
		password, err := Synthesize(allClasses, length, CryptoSource{})
		if err != nil {
			t.Fatalf("length %d: unexpected error: %v", length, err)
		}
		if len(password) != length {
			t.Errorf("length %d: got %d characters", length, len(password))
		}
	}
}

func TestSynthesizeExcludesDisabledClasses(t *testing.T) {
	tests := []struct {
		name     string
		sel      Selection
		excluded string
	}{
		{name: "no lowercase", sel: Selection{Uppercase: true, Digits: true, Symbols: true}, excluded: LowercaseChars},
		{name: "no uppercase", sel: Selection{Lowercase: true, Digits: true, Symbols: true}, excluded: UppercaseChars},
		{name: "no digits", sel: Selection{Lowercase: true, Uppercase: true, Symbols: true}, excluded: DigitChars},
		{name: "no symbols", sel: Selection{Lowercase: true, Uppercase: true, Digits: true}, excluded: SymbolChars},
	}

	src := NewSeededSource(42)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Run multiple times so every pool position has a fair chance to appear.
			for i := 0; i < 50; i++ {
				password, err := Synthesize(tt.sel, 16, src)
				if err != nil {
					t.Fatalf("Synthesize() unexpected error: %v", err)
				}
				if strings.ContainsAny(password, tt.excluded) {
					t.Fatalf("password %q contains a character from %q", password, tt.excluded)
				}
			}
		})
	}
}

func TestSynthesizeIndexesPoolInOrder(t *testing.T) {
	src := &sequenceSource{indices: []int{0, 25, 26, 51, 52, 61, 62, 73}}

	password, err := Synthesize(allClasses, 8, src)
	if err != nil {
		t.Fatalf("Synthesize() unexpected error: %v", err)
	}
	if password != "azAZ09!+" {
		t.Errorf("Synthesize() = %q, want %q", password, "azAZ09!+")
	}
}

func TestSynthesizeDeterministicWithSeed(t *testing.T) {
	a, err := Synthesize(allClasses, 16, NewSeededSource(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Synthesize(allClasses, 16, NewSeededSource(7))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}

	c, err := Synthesize(allClasses, 16, NewSeededSource(8))
	if err != nil {
		t.Fatal(err)
	}
	if a == c {
		t.Errorf("different seeds produced the same password %q", a)
	}
}

func TestSynthesizeSourceError(t *testing.T) {
	boom := errors.New("entropy exhausted")

	_, err := Synthesize(Selection{Lowercase: true}, 8, failingSource{err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("Synthesize() error = %v, want wrapped %v", err, boom)
	}
}

func TestSynthesizeRejectsOutOfRangeIndex(t *testing.T) {
	_, err := Synthesize(Selection{Digits: true}, 4, roundingSource{})
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Synthesize() error = %v, want %v", err, ErrIndexOutOfRange)
	}
}

func TestSynthesizeNilSourceFallsBackToCrypto(t *testing.T) {
	password, err := Synthesize(Selection{Lowercase: true}, 4, nil)
	if err != nil {
		t.Fatalf("Synthesize() unexpected error: %v", err)
	}
	if len(password) != 4 {
		t.Errorf("Synthesize() length = %d, want 4", len(password))
	}
}

func TestSynthesizeProducesUniquePasswords(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Synthesize(allClasses, 16, CryptoSource{})
		if err != nil {
			t.Fatalf("Synthesize() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection()
	if sel != (Selection{Lowercase: true}) {
		t.Errorf("DefaultSelection() = %+v, want lowercase only", sel)
	}
	if sel.Empty() {
		t.Error("default selection should not be empty")
	}
	if !(Selection{}).Empty() {
		t.Error("zero selection should be empty")
	}
}
