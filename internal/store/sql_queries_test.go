package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAccountQuery_DefaultsCreatedAt(t *testing.T) {
	query, args, err := insertAccountQuery(models.Account{Address: "0xa", Label: "l", Index: 2}, "k")
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO accounts (address,label,derivation_index,encrypted_key,created_at) VALUES (?,?,?,?,?)", query)
	require.Len(t, args, 5)
	created, ok := args[4].(time.Time)
	require.True(t, ok)
	assert.False(t, created.IsZero())
}

func TestUpsertAddressBookQuery(t *testing.T) {
	query, _, err := upsertAddressBookQuery(models.AddressBookEntry{Label: "alice"})
	require.NoError(t, err)
	assert.Contains(t, query, "ON CONFLICT(label) DO UPDATE SET address = excluded.address, note = excluded.note")
}

func TestDeleteAddressBookEntryQuery(t *testing.T) {
	query, args, err := deleteAddressBookEntryQuery("alice")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM address_book WHERE label = ?", query)
	assert.Equal(t, []any{"alice"}, args)
}
