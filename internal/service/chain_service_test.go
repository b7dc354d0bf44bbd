package service

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/mock"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNetworks = []models.Network{
	{Name: "mainnet", RPCURL: "http://mainnet.local", ChainID: 1, Symbol: "ETH", PriceID: "ethereum"},
	{Name: "sepolia", RPCURL: "http://sepolia.local", ChainID: 11155111, Symbol: "SepoliaETH"},
}

const testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

func newTestChainSvc(t *testing.T, defaultNetwork string) (ChainService, *mock.MockChainAdapter, *mock.MockAccountService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	chain := mock.NewMockChainAdapter(ctrl)
	accounts := mock.NewMockAccountService(ctrl)
	chain.EXPECT().SetEndpoint(gomock.Any())

	return NewChainService(chain, accounts, testNetworks, defaultNetwork, logger.Nop()), chain, accounts
}

func TestChainService_DefaultNetwork(t *testing.T) {
	svc, _, _ := newTestChainSvc(t, "sepolia")
	assert.Equal(t, "sepolia", svc.ActiveNetwork().Name)

	svc, _, _ = newTestChainSvc(t, "unknown")
	assert.Equal(t, "mainnet", svc.ActiveNetwork().Name)
}

func TestChainService_SelectNetwork(t *testing.T) {
	svc, chain, _ := newTestChainSvc(t, "mainnet")

	chain.EXPECT().SetEndpoint("http://sepolia.local")
	n, err := svc.SelectNetwork(context.Background(), "sepolia")
	require.NoError(t, err)
	assert.Equal(t, "sepolia", n.Name)
	assert.Equal(t, "sepolia", svc.ActiveNetwork().Name)

	_, err = svc.SelectNetwork(context.Background(), "goerli")
	assert.ErrorIs(t, err, apperr.ErrNetworkNotFound)
	assert.Equal(t, "sepolia", svc.ActiveNetwork().Name)
}

func TestChainService_Networks_ReturnsCopy(t *testing.T) {
	svc, _, _ := newTestChainSvc(t, "mainnet")

	list := svc.Networks()
	list[0].Name = "changed"
	assert.Equal(t, "mainnet", svc.Networks()[0].Name)
}

func TestChainService_Balance_Success(t *testing.T) {
	svc, chain, _ := newTestChainSvc(t, "mainnet")

	wei, _ := new(big.Int).SetString("1500000000000000000", 10)
	chain.EXPECT().GetBalance(gomock.Any(), testAddress).Return(wei, nil)

	bal, err := svc.Balance(context.Background(), strings.ToLower(testAddress))
	require.NoError(t, err)
	assert.Equal(t, "1.5", bal.Formatted)
	assert.Equal(t, "ETH", bal.Symbol)
	assert.Equal(t, "mainnet", bal.Network)
	assert.Equal(t, testAddress, bal.Address)
}

func TestChainService_Balance_DefaultsToActiveAccount(t *testing.T) {
	svc, chain, accounts := newTestChainSvc(t, "mainnet")

	accounts.EXPECT().ActiveAccount().Return(models.Account{Address: testAddress}, nil)
	chain.EXPECT().GetBalance(gomock.Any(), testAddress).Return(big.NewInt(0), nil)

	bal, err := svc.Balance(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "0", bal.Formatted)
}

func TestChainService_Balance_NoActiveAccount(t *testing.T) {
	svc, _, accounts := newTestChainSvc(t, "mainnet")

	accounts.EXPECT().ActiveAccount().Return(models.Account{}, apperr.NoActiveAccount())

	_, err := svc.Balance(context.Background(), "  ")
	assert.ErrorIs(t, err, apperr.ErrNoActiveAccount)
}

func TestChainService_Balance_BadAddress(t *testing.T) {
	svc, _, _ := newTestChainSvc(t, "mainnet")

	_, err := svc.Balance(context.Background(), "0xnothex")
	requireKind(t, err, apperr.KindHex)
}

func TestChainService_Balance_DNSFailure(t *testing.T) {
	svc, chain, _ := newTestChainSvc(t, "mainnet")

	dnsErr := &url.Error{
		Op:  "Post",
		URL: "http://mainnet.local",
		Err: &net.OpError{Op: "dial", Net: "tcp", Err: &net.DNSError{Err: "no such host", Name: "mainnet.local", IsNotFound: true}},
	}
	chain.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Return(nil, dnsErr)

	_, err := svc.Balance(context.Background(), testAddress)
	appErr := requireKind(t, err, apperr.KindRPC)
	assert.True(t, appErr.IsConnectError())
	assert.True(t, strings.HasPrefix(appErr.FormatFor("balance"), "balance: check your internet connection\n"))
}

func TestChainService_Balance_UndecodableBodyKeepsRaw(t *testing.T) {
	svc, chain, _ := newTestChainSvc(t, "mainnet")

	body := []byte(`{"jsonrpc":"2.0","result":`)
	chain.EXPECT().GetBalance(gomock.Any(), gomock.Any()).
		Return(nil, &adapter.DecodeError{Body: body, Err: errors.New("unexpected end of JSON input")})

	_, err := svc.Balance(context.Background(), testAddress)
	appErr := requireKind(t, err, apperr.KindJSON)

	raw, ok := appErr.Raw()
	require.True(t, ok)
	assert.Equal(t, json.RawMessage(body), raw)
	assert.False(t, appErr.IsConnectError())
}

func TestChainService_Balance_BadQuantity(t *testing.T) {
	svc, chain, _ := newTestChainSvc(t, "mainnet")

	chain.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrBadQuantity)

	_, err := svc.Balance(context.Background(), testAddress)
	requireKind(t, err, apperr.KindHex)
}

func TestChainService_TxStatus(t *testing.T) {
	hash := "0x" + strings.Repeat("ab", 32)

	tests := []struct {
		name    string
		receipt *models.Receipt
		want    models.TxStatus
	}{
		{"pending", nil, models.TxStatus{Hash: hash, State: models.TxPending}},
		{"confirmed", &models.Receipt{BlockNumber: "0x10", Status: "0x1"}, models.TxStatus{Hash: hash, State: models.TxConfirmed, Block: 16}},
		{"failed", &models.Receipt{BlockNumber: "0x11", Status: "0x0"}, models.TxStatus{Hash: hash, State: models.TxFailed, Block: 17}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, chain, _ := newTestChainSvc(t, "mainnet")
			chain.EXPECT().TransactionReceipt(gomock.Any(), hash).Return(tt.receipt, nil)

			got, err := svc.TxStatus(context.Background(), strings.ToUpper(hash[:2])+hash[2:])
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChainService_TxStatus_RPCError(t *testing.T) {
	svc, chain, _ := newTestChainSvc(t, "mainnet")
	hash := "0x" + strings.Repeat("01", 32)

	chain.EXPECT().TransactionReceipt(gomock.Any(), hash).Return(nil, &adapter.RPCError{Code: -32000, Message: "boom"})

	_, err := svc.TxStatus(context.Background(), hash)
	requireKind(t, err, apperr.KindRPC)
}

func TestParseTxHash(t *testing.T) {
	_, err := ParseTxHash("0x1234")
	requireKind(t, err, apperr.KindHex)
	assert.ErrorIs(t, err, ErrInvalidTxHash)

	_, err = ParseTxHash("0x" + strings.Repeat("zz", 32))
	requireKind(t, err, apperr.KindHex)

	got, err := ParseTxHash(" 0x" + strings.Repeat("AB", 32) + " ")
	require.NoError(t, err)
	assert.Equal(t, "0x"+strings.Repeat("ab", 32), got)
}
