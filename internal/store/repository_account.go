package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
)

type accountRepository struct {
	*DB
	logger *logger.Logger
}

func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *accountRepository) SaveAccount(ctx context.Context, account models.Account, encryptedKey string) error {
	log := logger.FromContext(ctx)

	query, args, err := insertAccountQuery(account, encryptedKey)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.SaveAccount").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrAccountExists
		}
		log.Err(err).
			Str("func", "accountRepository.SaveAccount").
			Str("address", account.Address).
			Msg("failed to insert account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (a *accountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := listAccountsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("failed to query accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var acc models.Account
		if err = rows.Scan(&acc.Address, &acc.Label, &acc.Index, &acc.CreatedAt); err != nil {
			log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, acc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

func (a *accountRepository) GetSecret(ctx context.Context, address string) (models.StoredSecret, error) {
	log := logger.FromContext(ctx)

	query, args, err := getSecretQuery(address)
	if err != nil {
		return models.StoredSecret{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var secret models.StoredSecret
	err = a.DB.QueryRowContext(ctx, query, args...).Scan(&secret.Address, &secret.EncryptedKey)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredSecret{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.GetSecret").
			Str("address", address).
			Msg("failed to query sealed key")
		return models.StoredSecret{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return secret, nil
}
