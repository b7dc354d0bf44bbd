package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/google/uuid"
)

type addressBookRepository struct {
	*DB
	logger *logger.Logger
}

func NewAddressBookRepository(db *DB, logger *logger.Logger) AddressBookRepository {
	return &addressBookRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *addressBookRepository) SaveEntry(ctx context.Context, entry models.AddressBookEntry) error {
	log := logger.FromContext(ctx)

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query, args, err := upsertAddressBookQuery(entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "addressBookRepository.SaveEntry").
			Str("label", entry.Label).
			Msg("failed to upsert address book entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *addressBookRepository) GetEntry(ctx context.Context, label string) (models.AddressBookEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := getAddressBookEntryQuery(label)
	if err != nil {
		return models.AddressBookEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.AddressBookEntry
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&entry.ID, &entry.Label, &entry.Address, &entry.Note, &entry.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AddressBookEntry{}, ErrAddressBookEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "addressBookRepository.GetEntry").
			Str("label", label).
			Msg("failed to query address book entry")
		return models.AddressBookEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

func (r *addressBookRepository) ListEntries(ctx context.Context) ([]models.AddressBookEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := listAddressBookQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "addressBookRepository.ListEntries").Msg("failed to query address book")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.AddressBookEntry, 0)
	for rows.Next() {
		var entry models.AddressBookEntry
		if err = rows.Scan(&entry.ID, &entry.Label, &entry.Address, &entry.Note, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *addressBookRepository) DeleteEntry(ctx context.Context, label string) error {
	query, args, err := deleteAddressBookEntryQuery(label)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAddressBookEntryNotFound
	}

	return nil
}
