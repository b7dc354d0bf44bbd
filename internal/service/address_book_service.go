package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
	"github.com/MKhiriev/go-chain-keeper/models"
)

type addressBookService struct {
	entries   store.AddressBookRepository
	validator validators.Validator
}

func NewAddressBookService(entries store.AddressBookRepository, validator validators.Validator) AddressBookService {
	return &addressBookService{entries: entries, validator: validator}
}

func (a *addressBookService) Lookup(ctx context.Context, label string) (models.AddressBookEntry, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return models.AddressBookEntry{}, apperr.AddressBookNotFound(label)
	}

	entry, err := a.entries.GetEntry(ctx, label)
	if err != nil {
		return models.AddressBookEntry{}, mapStoreError(err, label)
	}
	return entry, nil
}

func (a *addressBookService) Save(ctx context.Context, label, address, note string) (models.AddressBookEntry, error) {
	entry := models.AddressBookEntry{
		Label:   strings.TrimSpace(label),
		Address: strings.TrimSpace(address),
		Note:    strings.TrimSpace(note),
	}
	if err := a.validator.Validate(ctx, entry); err != nil {
		if errors.Is(err, validators.ErrInvalidAddress) {
			return models.AddressBookEntry{}, apperr.FromHex(err)
		}
		return models.AddressBookEntry{}, apperr.Internal(err.Error())
	}

	checksummed, err := crypto.ParseAddress(entry.Address)
	if err != nil {
		return models.AddressBookEntry{}, apperr.FromHex(err)
	}
	entry.Address = checksummed

	if err = a.entries.SaveEntry(ctx, entry); err != nil {
		return models.AddressBookEntry{}, mapStoreError(err, entry.Label)
	}
	return entry, nil
}

func (a *addressBookService) List(ctx context.Context) ([]models.AddressBookEntry, error) {
	entries, err := a.entries.ListEntries(ctx)
	if err != nil {
		return nil, mapStoreError(err, "")
	}
	return entries, nil
}

func (a *addressBookService) Delete(ctx context.Context, label string) error {
	return mapStoreError(a.entries.DeleteEntry(ctx, strings.TrimSpace(label)), label)
}
