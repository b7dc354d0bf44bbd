// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is a locally stored signing account. The private key itself lives
// encrypted in the store and never appears on this type.
type Account struct {
	// Address is the EIP-55 checksummed 0x address.
	Address string `json:"address"`
	// Label is a user-chosen display name.
	Label string `json:"label"`
	// Index is the BIP-44 address index the key was derived at.
	Index uint32 `json:"index"`
	// CreatedAt is the import time.
	CreatedAt time.Time `json:"created_at"`
}

// StoredSecret is the encrypted key material of one account as persisted.
type StoredSecret struct {
	Address      string
	EncryptedKey string
}
