package service

import (
	"errors"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
	"github.com/vaultpass/passgen-go/internal/model"
)

const MaxCount = 50

var ErrTooMany = errors.New("count must be between 1 and 50")

// GeneratorService handles one-shot password generation.
type GeneratorService struct {
	source crypto.RandomSource
}

// NewGeneratorService creates a new GeneratorService drawing from src.
func NewGeneratorService(src crypto.RandomSource) *GeneratorService {
	if src == nil {
		src = crypto.CryptoSource{}
	}
	return &GeneratorService{source: src}
}

// Generate validates the request like the form does and produces Count passwords.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if req.Length == nil {
		return model.GenerateResponse{}, form.ValidationError{Field: form.FieldPasswordLength, Message: "Length is required"}
	}
	if err := form.ValidateLength(*req.Length); err != nil {
		return model.GenerateResponse{}, err
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxCount {
		return model.GenerateResponse{}, ErrTooMany
	}

	defaults := crypto.DefaultSelection()
	sel := crypto.Selection{
		Lowercase: boolOrDefault(req.Lowercase, defaults.Lowercase),
		Uppercase: boolOrDefault(req.Uppercase, defaults.Uppercase),
		Digits:    boolOrDefault(req.Digits, defaults.Digits),
		Symbols:   boolOrDefault(req.Symbols, defaults.Symbols),
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		password, err := crypto.Synthesize(sel, *req.Length, s.source)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		passwords = append(passwords, password)
	}

	resp := model.GenerateResponse{
		Password: passwords[0],
		Length:   *req.Length,
		PoolSize: len(crypto.Pool(sel)),
	}
	if count > 1 {
		resp.Passwords = passwords
	}
	return resp, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
