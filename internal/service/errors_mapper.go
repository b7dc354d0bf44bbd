// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"errors"

	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
)

// mapChainError translates a ChainAdapter failure into the taxonomy.
func mapChainError(err error) error {
	if err == nil {
		return nil
	}

	var decodeErr *adapter.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		return apperr.FromJSON(err, json.RawMessage(decodeErr.Body))
	case errors.Is(err, adapter.ErrBadQuantity):
		return apperr.FromHex(err)
	}

	return apperr.FromRPC(err)
}

// mapPriceError translates a PriceAdapter failure into the taxonomy.
func mapPriceError(err error) error {
	if err == nil {
		return nil
	}

	var decodeErr *adapter.DecodeError
	switch {
	case errors.Is(err, adapter.ErrAPIKeyMissing):
		return apperr.APIKeyMissing("price")
	case errors.As(err, &decodeErr):
		return apperr.FromJSON(err, json.RawMessage(decodeErr.Body))
	}

	return apperr.FromHTTP(err)
}

// mapStoreError translates a repository failure. key is the address or
// label the call was about.
func mapStoreError(err error, key string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return apperr.SecretNotFound(key)
	case errors.Is(err, store.ErrAddressBookEntryNotFound):
		return apperr.AddressBookNotFound(key)
	case errors.Is(err, store.ErrAccountExists):
		return apperr.FromKeystore(ErrAccountExists)
	}

	return apperr.FromIO(err)
}
