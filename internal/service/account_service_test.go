package service

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/mock"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const devMnemonic = "test test test test test test test test test test test junk"

func newTestAccountSvc(t *testing.T) (*accountService, *mock.MockAccountRepository, *mock.MockKeyChainService, *mock.MockWallet) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockAccountRepository(ctrl)
	keychain := mock.NewMockKeyChainService(ctrl)
	wallet := mock.NewMockWallet(ctrl)

	svc := NewAccountService(repo, keychain, wallet, logger.Nop()).(*accountService)
	return svc, repo, keychain, wallet
}

func testKey(t *testing.T) *btcec.PrivateKey {
	t.Helper()
	raw, err := hex.DecodeString("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.NoError(t, err)
	key, _ := btcec.PrivKeyFromBytes(raw)
	return key
}

func TestAccountService_Unlock_NoAccounts(t *testing.T) {
	svc, repo, _, _ := newTestAccountSvc(t)
	ctx := context.Background()

	repo.EXPECT().ListAccounts(ctx).Return([]models.Account{}, nil)

	require.NoError(t, svc.Unlock(ctx, "correct horse"))
	pw, err := svc.password()
	require.NoError(t, err)
	assert.Equal(t, "correct horse", pw)
}

func TestAccountService_Unlock_WrongPassword(t *testing.T) {
	svc, repo, keychain, _ := newTestAccountSvc(t)
	ctx := context.Background()

	repo.EXPECT().ListAccounts(ctx).Return([]models.Account{{Address: "0xa"}}, nil)
	repo.EXPECT().GetSecret(ctx, "0xa").Return(models.StoredSecret{Address: "0xa", EncryptedKey: "blob"}, nil)
	keychain.EXPECT().Open("blob", "wrong").Return(nil, crypto.ErrWrongPassword)

	err := svc.Unlock(ctx, "wrong")
	requireKind(t, err, apperr.KindKeystore)
	assert.ErrorIs(t, err, crypto.ErrWrongPassword)

	_, err = svc.password()
	assert.ErrorIs(t, err, ErrLocked)
}

func TestAccountService_ImportMnemonic_Locked(t *testing.T) {
	svc, _, _, _ := newTestAccountSvc(t)

	_, err := svc.ImportMnemonic(context.Background(), "main", devMnemonic)
	requireKind(t, err, apperr.KindKeystore)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestAccountService_ImportMnemonic_InvalidMnemonic(t *testing.T) {
	svc, _, _, wallet := newTestAccountSvc(t)
	svc.masterPassword = "pw"

	wallet.EXPECT().DeriveKey("not a mnemonic", "", uint32(0)).Return(nil, errors.New("Invalid mnenomic"))

	_, err := svc.ImportMnemonic(context.Background(), "main", "not a mnemonic")
	requireKind(t, err, apperr.KindMnemonic)
}

func TestAccountService_ImportMnemonic_Success(t *testing.T) {
	svc, repo, keychain, wallet := newTestAccountSvc(t)
	svc.masterPassword = "pw"
	ctx := context.Background()
	key := testKey(t)

	gomock.InOrder(
		wallet.EXPECT().DeriveKey(devMnemonic, "", uint32(0)).Return(key, nil),
		keychain.EXPECT().Seal(key.Serialize(), "pw").Return("sealed", nil),
		repo.EXPECT().SaveAccount(ctx, gomock.Any(), "sealed").DoAndReturn(
			func(_ context.Context, acc models.Account, _ string) error {
				assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", acc.Address)
				assert.Equal(t, "main", acc.Label)
				assert.False(t, acc.CreatedAt.IsZero())
				return nil
			}),
	)

	acc, err := svc.ImportMnemonic(ctx, " main ", devMnemonic)
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", acc.Address)
}

func TestAccountService_ImportMnemonic_DefaultLabel(t *testing.T) {
	svc, repo, keychain, wallet := newTestAccountSvc(t)
	svc.masterPassword = "pw"
	key := testKey(t)

	wallet.EXPECT().DeriveKey(gomock.Any(), "", uint32(0)).Return(key, nil)
	keychain.EXPECT().Seal(gomock.Any(), "pw").Return("sealed", nil)
	repo.EXPECT().SaveAccount(gomock.Any(), gomock.Any(), "sealed").Return(nil)

	acc, err := svc.ImportMnemonic(context.Background(), "", devMnemonic)
	require.NoError(t, err)
	assert.Equal(t, "0xf39F…2266", acc.Label)
}

func TestAccountService_ImportMnemonic_Duplicate(t *testing.T) {
	svc, repo, keychain, wallet := newTestAccountSvc(t)
	svc.masterPassword = "pw"

	wallet.EXPECT().DeriveKey(gomock.Any(), gomock.Any(), gomock.Any()).Return(testKey(t), nil)
	keychain.EXPECT().Seal(gomock.Any(), gomock.Any()).Return("sealed", nil)
	repo.EXPECT().SaveAccount(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrAccountExists)

	_, err := svc.ImportMnemonic(context.Background(), "main", devMnemonic)
	requireKind(t, err, apperr.KindKeystore)
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestAccountService_ActiveAccount_None(t *testing.T) {
	svc, _, _, _ := newTestAccountSvc(t)

	_, err := svc.ActiveAccount()
	assert.ErrorIs(t, err, apperr.ErrNoActiveAccount)
}

func TestAccountService_SetActiveAccount(t *testing.T) {
	svc, repo, _, _ := newTestAccountSvc(t)
	ctx := context.Background()
	accounts := []models.Account{{Address: "0xAbC", Label: "main"}}

	repo.EXPECT().ListAccounts(ctx).Return(accounts, nil).Times(2)

	acc, err := svc.SetActiveAccount(ctx, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "main", acc.Label)

	active, err := svc.ActiveAccount()
	require.NoError(t, err)
	assert.Equal(t, "0xAbC", active.Address)

	_, err = svc.SetActiveAccount(ctx, "0xdef")
	assert.ErrorIs(t, err, apperr.ErrSecretNotFound)
}

func TestAccountService_SignMessage_NoActiveAccount(t *testing.T) {
	svc, _, _, _ := newTestAccountSvc(t)

	_, err := svc.SignMessage(context.Background(), "hello")
	assert.ErrorIs(t, err, apperr.ErrNoActiveAccount)
}

func TestAccountService_SignMessage_SecretNotFound(t *testing.T) {
	svc, repo, _, _ := newTestAccountSvc(t)
	svc.masterPassword = "pw"
	svc.active = &models.Account{Address: "0xabc"}

	repo.EXPECT().GetSecret(gomock.Any(), "0xabc").Return(models.StoredSecret{}, store.ErrAccountNotFound)

	_, err := svc.SignMessage(context.Background(), "hello")
	appErr := requireKind(t, err, apperr.KindSecretNotFound)
	assert.Equal(t, `sign: SecretNotFound("0xabc")`, appErr.FormatFor("sign"))
}

func TestAccountService_SignMessage_Success(t *testing.T) {
	svc, repo, keychain, _ := newTestAccountSvc(t)
	svc.wallet = crypto.NewWallet()
	svc.masterPassword = "pw"
	key := testKey(t)
	address := crypto.PubKeyToAddress(key.PubKey())
	svc.active = &models.Account{Address: address}

	repo.EXPECT().GetSecret(gomock.Any(), address).Return(models.StoredSecret{Address: address, EncryptedKey: "blob"}, nil)
	keychain.EXPECT().Open("blob", "pw").Return(key.Serialize(), nil)

	sigHex, err := svc.SignMessage(context.Background(), "hello")
	require.NoError(t, err)

	sig, err := hex.DecodeString(sigHex[2:])
	require.NoError(t, err)
	recovered, err := crypto.RecoverAddress([]byte("hello"), sig)
	require.NoError(t, err)
	assert.Equal(t, address, recovered)
}

func TestAccountService_SignMessage_Empty(t *testing.T) {
	svc, _, _, _ := newTestAccountSvc(t)

	_, err := svc.SignMessage(context.Background(), "")
	requireKind(t, err, apperr.KindSigning)
}

func TestAccountService_Accounts_StoreFailure(t *testing.T) {
	svc, repo, _, _ := newTestAccountSvc(t)

	repo.EXPECT().ListAccounts(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := svc.Accounts(context.Background())
	requireKind(t, err, apperr.KindIO)
}
