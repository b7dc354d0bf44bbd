package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/models"
)

const (
	FieldLabel   = "label"
	FieldAddress = "address"
	FieldNote    = "note"

	MaxLabelLength = 64
	MaxNoteLength  = 256
)

type AddressBookValidator struct {
}

func NewAddressBookValidator() Validator {
	return &AddressBookValidator{}
}

func (v *AddressBookValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AddressBookEntry:
		return v.validateEntry(ctx, value, fields...)
	case *models.AddressBookEntry:
		return v.validateEntry(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AddressBookValidator) validateEntry(_ context.Context, entry models.AddressBookEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLabel, FieldAddress, FieldNote}
	}

	for _, f := range fields {
		switch f {
		case FieldLabel:
			if err := validateLabel(entry.Label); err != nil {
				return err
			}
		case FieldAddress:
			if _, err := crypto.ParseAddress(entry.Address); err != nil {
				return fmt.Errorf("%w %q: %w", ErrInvalidAddress, entry.Address, err)
			}
		case FieldNote:
			if utf8.RuneCountInString(entry.Note) > MaxNoteLength {
				return ErrNoteTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// Labels are typed as the first word of "label address [note]" in the
// UI, so they cannot hold whitespace.
func validateLabel(label string) error {
	switch {
	case strings.TrimSpace(label) == "":
		return ErrEmptyLabel
	case utf8.RuneCountInString(label) > MaxLabelLength:
		return ErrLabelTooLong
	case strings.IndexFunc(label, unicode.IsSpace) >= 0:
		return ErrLabelHasSpaces
	}
	return nil
}
