package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

// ClientStorages groups the repositories backed by the local sqlite file.
type ClientStorages struct {
	Accounts    AccountRepository
	AddressBook AddressBookRepository

	db *DB
}

// NewClientStorages opens (creating if needed) the sqlite file at
// cfg.DB.DSN, applies pending migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Accounts:    NewAccountRepository(db, logger),
		AddressBook: NewAddressBookRepository(db, logger),
		db:          db,
	}
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
