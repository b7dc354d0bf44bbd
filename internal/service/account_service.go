package service

import (
	"context"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/btcsuite/btcd/btcec/v2"
)

type accountService struct {
	accounts store.AccountRepository
	keychain crypto.KeyChainService
	wallet   crypto.Wallet
	logger   *logger.Logger

	mu             sync.RWMutex
	masterPassword string
	active         *models.Account
}

func NewAccountService(
	accounts store.AccountRepository,
	keychain crypto.KeyChainService,
	wallet crypto.Wallet,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		accounts: accounts,
		keychain: keychain,
		wallet:   wallet,
		logger:   logger,
	}
}

func (a *accountService) Unlock(ctx context.Context, masterPassword string) error {
	list, err := a.accounts.ListAccounts(ctx)
	if err != nil {
		return mapStoreError(err, "")
	}

	if len(list) > 0 {
		secret, err := a.accounts.GetSecret(ctx, list[0].Address)
		if err != nil {
			return mapStoreError(err, list[0].Address)
		}
		if _, err = a.keychain.Open(secret.EncryptedKey, masterPassword); err != nil {
			return apperr.FromKeystore(err)
		}
	}

	a.mu.Lock()
	a.masterPassword = masterPassword
	a.mu.Unlock()

	a.logger.Info().Int("accounts", len(list)).Msg("keychain unlocked")
	return nil
}

func (a *accountService) HasAccounts(ctx context.Context) (bool, error) {
	list, err := a.accounts.ListAccounts(ctx)
	if err != nil {
		return false, mapStoreError(err, "")
	}
	return len(list) > 0, nil
}

func (a *accountService) Accounts(ctx context.Context) ([]models.Account, error) {
	list, err := a.accounts.ListAccounts(ctx)
	if err != nil {
		return nil, mapStoreError(err, "")
	}
	return list, nil
}

func (a *accountService) ImportMnemonic(ctx context.Context, label, mnemonic string) (models.Account, error) {
	password, err := a.password()
	if err != nil {
		return models.Account{}, err
	}

	key, err := a.wallet.DeriveKey(mnemonic, "", 0)
	if err != nil {
		return models.Account{}, apperr.FromMnemonic(err)
	}

	account := models.Account{
		Address:   crypto.PubKeyToAddress(key.PubKey()),
		Label:     strings.TrimSpace(label),
		Index:     0,
		CreatedAt: time.Now().UTC(),
	}
	if account.Label == "" {
		account.Label = shortAddress(account.Address)
	}

	sealed, err := a.keychain.Seal(key.Serialize(), password)
	if err != nil {
		return models.Account{}, apperr.FromKeystore(err)
	}

	if err = a.accounts.SaveAccount(ctx, account, sealed); err != nil {
		return models.Account{}, mapStoreError(err, account.Address)
	}

	logger.FromContext(ctx).Info().
		Str("func", "accountService.ImportMnemonic").
		Str("address", account.Address).
		Msg("account imported")
	return account, nil
}

func (a *accountService) NewMnemonic() (string, error) {
	mnemonic, err := a.wallet.NewMnemonic()
	if err != nil {
		return "", apperr.FromMnemonic(err)
	}
	return mnemonic, nil
}

func (a *accountService) SetActiveAccount(ctx context.Context, address string) (models.Account, error) {
	list, err := a.accounts.ListAccounts(ctx)
	if err != nil {
		return models.Account{}, mapStoreError(err, address)
	}

	for _, acc := range list {
		if strings.EqualFold(acc.Address, address) {
			a.mu.Lock()
			a.active = &acc
			a.mu.Unlock()
			return acc, nil
		}
	}

	return models.Account{}, apperr.SecretNotFound(address)
}

func (a *accountService) ActiveAccount() (models.Account, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.active == nil {
		return models.Account{}, apperr.NoActiveAccount()
	}
	return *a.active, nil
}

func (a *accountService) SignMessage(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", apperr.FromSigning(ErrEmptyMessage)
	}

	account, err := a.ActiveAccount()
	if err != nil {
		return "", err
	}
	password, err := a.password()
	if err != nil {
		return "", err
	}

	secret, err := a.accounts.GetSecret(ctx, account.Address)
	if err != nil {
		return "", mapStoreError(err, account.Address)
	}

	raw, err := a.keychain.Open(secret.EncryptedKey, password)
	if err != nil {
		return "", apperr.FromKeystore(err)
	}
	key, _ := btcec.PrivKeyFromBytes(raw)

	sig, err := a.wallet.SignMessage(key, []byte(message))
	if err != nil {
		return "", apperr.FromSigning(err)
	}

	return "0x" + hex.EncodeToString(sig), nil
}

func (a *accountService) password() (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.masterPassword == "" {
		return "", apperr.FromKeystore(ErrLocked)
	}
	return a.masterPassword, nil
}

// shortAddress renders 0x1234…abcd style labels.
func shortAddress(address string) string {
	if len(address) < 12 {
		return address
	}
	return address[:6] + "…" + address[len(address)-4:]
}
