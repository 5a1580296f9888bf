package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/repository"
)

var (
	ErrUnknownClass    = errors.New("class must be one of lowercase, uppercase, digits, symbols")
	ErrSessionNotFound = errors.New("form session not found")
)

// Character class names accepted by Toggle.
const (
	ClassLowercase = "lowercase"
	ClassUppercase = "uppercase"
	ClassDigits    = "digits"
	ClassSymbols   = "symbols"
)

// SessionService drives the form state machine: toggle classes, submit a
// length to generate, reset back to defaults.
type SessionService struct {
	repo   *repository.SessionRepository
	source crypto.RandomSource
}

// NewSessionService creates a new SessionService.
func NewSessionService(repo *repository.SessionRepository, src crypto.RandomSource) *SessionService {
	if src == nil {
		src = crypto.CryptoSource{}
	}
	return &SessionService{repo: repo, source: src}
}

// Create starts a new form in the not-generated state with the default selection.
func (s *SessionService) Create(ctx context.Context) (model.FormState, error) {
	state := model.FormState{
		ID:        uuid.NewString(),
		Selection: crypto.DefaultSelection(),
	}
	if err := s.repo.Save(ctx, &state); err != nil {
		return model.FormState{}, err
	}
	return state, nil
}

// Get returns the current state of a form.
func (s *SessionService) Get(ctx context.Context, id string) (model.FormState, error) {
	state, err := s.load(ctx, id)
	if err != nil {
		return model.FormState{}, err
	}
	return *state, nil
}

// Toggle flips one character class. A generated password stays visible.
func (s *SessionService) Toggle(ctx context.Context, id, class string) (model.FormState, error) {
	state, err := s.load(ctx, id)
	if err != nil {
		return model.FormState{}, err
	}

	switch class {
	case ClassLowercase:
		state.Selection.Lowercase = !state.Selection.Lowercase
	case ClassUppercase:
		state.Selection.Uppercase = !state.Selection.Uppercase
	case ClassDigits:
		state.Selection.Digits = !state.Selection.Digits
	case ClassSymbols:
		state.Selection.Symbols = !state.Selection.Symbols
	default:
		return model.FormState{}, ErrUnknownClass
	}

	if err := s.repo.Save(ctx, state); err != nil {
		return model.FormState{}, err
	}
	return *state, nil
}

// Submit validates the raw length text and generates a password from the
// stored selection. On any error the stored state is left untouched.
func (s *SessionService) Submit(ctx context.Context, id, rawLength string) (model.FormState, error) {
	state, err := s.load(ctx, id)
	if err != nil {
		return model.FormState{}, err
	}

	length, err := form.ParseLength(rawLength)
	if err != nil {
		return model.FormState{}, err
	}

	password, err := crypto.Synthesize(state.Selection, length, s.source)
	if err != nil {
		return model.FormState{}, err
	}

	state.Password = password
	state.Generated = true
	if err := s.repo.Save(ctx, state); err != nil {
		return model.FormState{}, err
	}

	slog.Debug("password generated", "session_id", id, "length", length)
	return *state, nil
}

// Reset clears the result and restores the default selection.
func (s *SessionService) Reset(ctx context.Context, id string) (model.FormState, error) {
	state, err := s.load(ctx, id)
	if err != nil {
		return model.FormState{}, err
	}

	state.Password = ""
	state.Generated = false
	state.Selection = crypto.DefaultSelection()
	if err := s.repo.Save(ctx, state); err != nil {
		return model.FormState{}, err
	}
	return *state, nil
}

// Delete discards a form.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	return err
}

func (s *SessionService) load(ctx context.Context, id string) (*model.FormState, error) {
	state, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return state, nil
}

// ToResponse converts a FormState to its API view.
func ToResponse(state model.FormState) model.FormStateResponse {
	resp := model.FormStateResponse{
		ID:        state.ID,
		Selection: state.Selection,
		Generated: state.Generated,
		UpdatedAt: state.UpdatedAt,
	}
	if state.Generated {
		resp.Password = state.Password
	}
	return resp
}
