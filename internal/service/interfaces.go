// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the wallet use cases behind the TUI. Every method
// that fails returns an *apperr.Error (as error); collaborator errors are
// converted here and nowhere else.
package service

import (
	"context"

	"github.com/MKhiriev/go-chain-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService manages local accounts, the active account and signing.
type AccountService interface {
	// Unlock remembers masterPassword for the session. When accounts exist
	// the password is checked against the first stored secret.
	Unlock(ctx context.Context, masterPassword string) error

	// HasAccounts reports whether at least one account is stored.
	HasAccounts(ctx context.Context) (bool, error)

	// Accounts lists stored accounts.
	Accounts(ctx context.Context) ([]models.Account, error)

	// ImportMnemonic derives the key at index 0 of mnemonic, seals it with
	// the master password and stores the account.
	ImportMnemonic(ctx context.Context, label, mnemonic string) (models.Account, error)

	// NewMnemonic returns a fresh 12-word mnemonic for the user to back up.
	NewMnemonic() (string, error)

	// SetActiveAccount makes address the account used for signing and the
	// default balance lookup.
	SetActiveAccount(ctx context.Context, address string) (models.Account, error)

	// ActiveAccount returns the active account or NoActiveAccount.
	ActiveAccount() (models.Account, error)

	// SignMessage signs message with the active account (EIP-191) and
	// returns the 0x-hex signature.
	SignMessage(ctx context.Context, message string) (string, error)
}

// ChainService talks to the selected network.
type ChainService interface {
	// Networks lists configured networks.
	Networks() []models.Network

	// ActiveNetwork returns the selected network.
	ActiveNetwork() models.Network

	// SelectNetwork switches to the network called name.
	SelectNetwork(ctx context.Context, name string) (models.Network, error)

	// Balance returns the native balance of address. An empty address means
	// the active account.
	Balance(ctx context.Context, address string) (models.Balance, error)

	// TxStatus polls the receipt of txHash once.
	TxStatus(ctx context.Context, txHash string) (models.TxStatus, error)
}

// PriceService quotes the native currency of the selected network.
type PriceService interface {
	// NativePrice returns the USD price of the active network's currency.
	NativePrice(ctx context.Context) (models.PriceUpdate, error)
}

// AddressBookService manages label -> address entries.
type AddressBookService interface {
	Lookup(ctx context.Context, label string) (models.AddressBookEntry, error)
	Save(ctx context.Context, label, address, note string) (models.AddressBookEntry, error)
	List(ctx context.Context) ([]models.AddressBookEntry, error)
	Delete(ctx context.Context, label string) error
}
