package prompt

import (
	"testing"

	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrInputEmpty},
		{"blank", "   ", ErrInputEmpty},
		{"too short", "1234567", ErrPasswordTooShort},
		{"multibyte counted as runes", "пароль12", nil},
		{"ok", "correct horse", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckConfirmation(t *testing.T) {
	assert.NoError(t, CheckConfirmation("same-pass", "same-pass"))
	assert.ErrorIs(t, CheckConfirmation("same-pass", "other-pass"), ErrPasswordMismatch)
}

func TestPromptErrorsAreAborts(t *testing.T) {
	for _, err := range []error{promptui.ErrInterrupt, promptui.ErrEOF} {
		wrapped := apperr.FromPrompt(err)
		assert.Equal(t, apperr.KindPrompt, wrapped.Kind())
		assert.True(t, apperr.IsAbort(wrapped), err.Error())
	}

	mismatch := apperr.FromPrompt(ErrPasswordMismatch)
	assert.False(t, apperr.IsAbort(mismatch))
}
