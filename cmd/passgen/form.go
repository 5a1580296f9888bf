package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
	"github.com/vaultpass/passgen-go/internal/service"
)

const (
	actionAgain = "Generate again"
	actionReset = "Reset"
	actionQuit  = "Quit"
)

// prompter is the terminal surface of the form.
type prompter interface {
	Text(label string) (string, error)
	Confirm(label string, def bool) (bool, error)
	Select(label string, options []string) (string, error)
	ShowPassword(password string)
	ShowError(msg string)
}

type classPrompt struct {
	label   string
	class   string
	enabled func(crypto.Selection) bool
}

var classPrompts = []classPrompt{
	{label: "Include lowercase", class: service.ClassLowercase, enabled: func(s crypto.Selection) bool { return s.Lowercase }},
	{label: "Include uppercase", class: service.ClassUppercase, enabled: func(s crypto.Selection) bool { return s.Uppercase }},
	{label: "Include numbers", class: service.ClassDigits, enabled: func(s crypto.Selection) bool { return s.Digits }},
	{label: "Include special characters", class: service.ClassSymbols, enabled: func(s crypto.Selection) bool { return s.Symbols }},
}

// RunForm walks the user through the password form until they quit.
func RunForm(ctx context.Context, sessions *service.SessionService, p prompter) error {
	state, err := sessions.Create(ctx)
	if err != nil {
		return err
	}
	defer sessions.Delete(ctx, state.ID)

	for {
		raw, err := p.Text(fmt.Sprintf("Password length (%d-%d)", form.MinLength, form.MaxLength))
		if err != nil {
			return err
		}

		for _, cp := range classPrompts {
			want, err := p.Confirm(cp.label, cp.enabled(state.Selection))
			if err != nil {
				return err
			}
			if want != cp.enabled(state.Selection) {
				if state, err = sessions.Toggle(ctx, state.ID, cp.class); err != nil {
					return err
				}
			}
		}

		next, err := sessions.Submit(ctx, state.ID, raw)
		var verr form.ValidationError
		switch {
		case errors.As(err, &verr):
			p.ShowError(verr.Message)
			continue
		case errors.Is(err, crypto.ErrEmptyCharacterPool):
			p.ShowError("Select at least one character type")
			continue
		case err != nil:
			return err
		}
		state = next
		p.ShowPassword(state.Password)

		action, err := p.Select("What next?", []string{actionAgain, actionReset, actionQuit})
		if err != nil {
			return err
		}
		switch action {
		case actionReset:
			if state, err = sessions.Reset(ctx, state.ID); err != nil {
				return err
			}
		case actionQuit:
			return nil
		}
	}
}

type ptermPrompter struct{}

func (ptermPrompter) Text(label string) (string, error) {
	return pterm.DefaultInteractiveTextInput.Show(label)
}

func (ptermPrompter) Confirm(label string, def bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultValue(def).Show(label)
}

func (ptermPrompter) Select(label string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.WithOptions(options).Show(label)
}

func (ptermPrompter) ShowPassword(password string) {
	pterm.DefaultBox.WithTitle("Password").Println(password)
	pterm.Info.Println("Select and copy the password above")
}

func (ptermPrompter) ShowError(msg string) {
	pterm.Error.Println(msg)
}
