// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package prompt asks for the master password before the TUI takes over the
// terminal. Every failure is returned as an *apperr.Error of kind Prompt;
// ctrl+c and ctrl+d satisfy apperr.IsAbort.
package prompt

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/manifoldco/promptui"
)

// MinPasswordLength is the shortest accepted master password.
const MinPasswordLength = 8

var (
	ErrInputEmpty       = errors.New("input is empty")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Prompter asks the interactive startup questions.
type Prompter interface {
	// MasterPassword asks for the master password. When confirm is set the
	// password is asked twice and both entries must match.
	MasterPassword(confirm bool) (string, error)
	// Confirm asks a yes/no question.
	Confirm(label string) (bool, error)
}

type terminalPrompter struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

// NewTerminalPrompter returns a Prompter on the given streams. Nil streams
// fall back to the process stdin and stdout.
func NewTerminalPrompter(stdin io.ReadCloser, stdout io.WriteCloser) Prompter {
	return &terminalPrompter{stdin: stdin, stdout: stdout}
}

func (p *terminalPrompter) MasterPassword(confirm bool) (string, error) {
	password, err := p.run(promptui.Prompt{
		Label:    "Master password",
		Mask:     '*',
		Validate: ValidatePassword,
	})
	if err != nil {
		return "", err
	}
	if !confirm {
		return password, nil
	}

	repeated, err := p.run(promptui.Prompt{
		Label:    "Repeat master password",
		Mask:     '*',
		Validate: ValidateNotEmpty,
	})
	if err != nil {
		return "", err
	}
	if err = CheckConfirmation(password, repeated); err != nil {
		return "", apperr.FromPrompt(err)
	}

	return password, nil
}

func (p *terminalPrompter) Confirm(label string) (bool, error) {
	_, err := p.run(promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	})
	if errors.Is(err, promptui.ErrAbort) {
		// "n" answers the question.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *terminalPrompter) run(prompt promptui.Prompt) (string, error) {
	prompt.Stdin = p.stdin
	prompt.Stdout = p.stdout

	out, err := prompt.Run()
	if err != nil {
		return "", apperr.FromPrompt(err)
	}
	return strings.TrimSpace(out), nil
}

// ValidateNotEmpty rejects blank input.
func ValidateNotEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return ErrInputEmpty
	}
	return nil
}

// ValidatePassword rejects passwords shorter than MinPasswordLength runes.
func ValidatePassword(input string) error {
	if err := ValidateNotEmpty(input); err != nil {
		return err
	}
	if utf8.RuneCountInString(strings.TrimSpace(input)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// CheckConfirmation reports whether the repeated entry matches.
func CheckConfirmation(password, repeated string) error {
	if password != repeated {
		return ErrPasswordMismatch
	}
	return nil
}
