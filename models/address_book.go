// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// AddressBookEntry maps a human label to an address.
type AddressBookEntry struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Address   string    `json:"address"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
