package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-chain-keeper/models"
)

const (
	accountsTable    = "accounts"
	addressBookTable = "address_book"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	accountColumns     = []string{"address", "label", "derivation_index", "created_at"}
	addressBookColumns = []string{"id", "label", "address", "note", "created_at"}
)

func insertAccountQuery(account models.Account, encryptedKey string) (string, []any, error) {
	createdAt := account.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return psql.Insert(accountsTable).
		Columns("address", "label", "derivation_index", "encrypted_key", "created_at").
		Values(account.Address, account.Label, account.Index, encryptedKey, createdAt).
		ToSql()
}

func listAccountsQuery() (string, []any, error) {
	return psql.Select(accountColumns...).
		From(accountsTable).
		OrderBy("created_at", "address").
		ToSql()
}

func getSecretQuery(address string) (string, []any, error) {
	return psql.Select("address", "encrypted_key").
		From(accountsTable).
		Where(sq.Eq{"address": address}).
		ToSql()
}

// upsertAddressBookQuery inserts entry or, when the label is taken, rewrites
// its address and note while keeping the original id and created_at.
func upsertAddressBookQuery(entry models.AddressBookEntry) (string, []any, error) {
	return psql.Insert(addressBookTable).
		Columns(addressBookColumns...).
		Values(entry.ID, entry.Label, entry.Address, entry.Note, entry.CreatedAt).
		Suffix("ON CONFLICT(label) DO UPDATE SET address = excluded.address, note = excluded.note").
		ToSql()
}

func getAddressBookEntryQuery(label string) (string, []any, error) {
	return psql.Select(addressBookColumns...).
		From(addressBookTable).
		Where(sq.Eq{"label": label}).
		ToSql()
}

func listAddressBookQuery() (string, []any, error) {
	return psql.Select(addressBookColumns...).
		From(addressBookTable).
		OrderBy("label").
		ToSql()
}

func deleteAddressBookEntryQuery(label string) (string, []any, error) {
	return psql.Delete(addressBookTable).
		Where(sq.Eq{"label": label}).
		ToSql()
}
