package model

import (
	"time"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

// FormState is the server-held state of one password form.
type FormState struct {
	ID        string
	Selection crypto.Selection
	Password  string
	Generated bool
	UpdatedAt time.Time
}

// ToggleRequest flips one character class on a form.
type ToggleRequest struct {
	Class string `json:"class"`
}

// SubmitRequest carries the raw text of the length field.
type SubmitRequest struct {
	PasswordLength string `json:"password_length"`
}

// FormStateResponse is the API view of a form. Password is omitted until generated.
type FormStateResponse struct {
	ID        string           `json:"id"`
	Selection crypto.Selection `json:"selection"`
	Generated bool             `json:"generated"`
	Password  string           `json:"password,omitempty"`
	UpdatedAt time.Time        `json:"updated_at"`
}
