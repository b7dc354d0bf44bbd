// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists accounts (with their sealed private keys) and the
// address book in a local sqlite database.
//
// Repositories return the sentinels from errors.go for well-known misses so
// the service layer can map them onto the application error taxonomy.
package store

import (
	"context"

	"github.com/MKhiriev/go-chain-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository stores accounts and their sealed keys.
type AccountRepository interface {
	// SaveAccount inserts a new account. Returns ErrAccountExists when the
	// address is already stored.
	SaveAccount(ctx context.Context, account models.Account, encryptedKey string) error
	// ListAccounts returns all accounts ordered by creation time.
	ListAccounts(ctx context.Context) ([]models.Account, error)
	// GetSecret returns the sealed key of address or ErrAccountNotFound.
	GetSecret(ctx context.Context, address string) (models.StoredSecret, error)
}

// AddressBookRepository stores label -> address mappings.
type AddressBookRepository interface {
	// SaveEntry inserts entry or replaces the address/note of an existing
	// entry with the same label.
	SaveEntry(ctx context.Context, entry models.AddressBookEntry) error
	// GetEntry returns the entry with label or ErrAddressBookEntryNotFound.
	GetEntry(ctx context.Context, label string) (models.AddressBookEntry, error)
	// ListEntries returns all entries ordered by label.
	ListEntries(ctx context.Context) ([]models.AddressBookEntry, error)
	// DeleteEntry removes the entry with label or returns
	// ErrAddressBookEntryNotFound.
	DeleteEntry(ctx context.Context, label string) error
}
