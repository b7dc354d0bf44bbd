package service

import (
	"context"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
)

type chainService struct {
	chain    adapter.ChainAdapter
	accounts AccountService
	networks []models.Network
	logger   *logger.Logger

	mu     sync.RWMutex
	active models.Network
}

// NewChainService selects the network called defaultNetwork (or the first
// one when it is not listed) and points chain at it.
func NewChainService(
	chain adapter.ChainAdapter,
	accounts AccountService,
	networks []models.Network,
	defaultNetwork string,
	logger *logger.Logger,
) ChainService {
	c := &chainService{
		chain:    chain,
		accounts: accounts,
		networks: networks,
		logger:   logger,
	}

	if len(networks) > 0 {
		c.active = networks[0]
	}
	if n, ok := c.find(defaultNetwork); ok {
		c.active = n
	}
	chain.SetEndpoint(c.active.RPCURL)

	return c
}

func (c *chainService) Networks() []models.Network {
	out := make([]models.Network, len(c.networks))
	copy(out, c.networks)
	return out
}

func (c *chainService) ActiveNetwork() models.Network {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

func (c *chainService) SelectNetwork(ctx context.Context, name string) (models.Network, error) {
	network, ok := c.find(name)
	if !ok {
		return models.Network{}, apperr.NetworkNotFound(name)
	}

	c.mu.Lock()
	c.active = network
	c.chain.SetEndpoint(network.RPCURL)
	c.mu.Unlock()

	logger.FromContext(ctx).Info().
		Str("func", "chainService.SelectNetwork").
		Str("network", network.Name).
		Msg("network selected")
	return network, nil
}

func (c *chainService) Balance(ctx context.Context, address string) (models.Balance, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		account, err := c.accounts.ActiveAccount()
		if err != nil {
			return models.Balance{}, err
		}
		address = account.Address
	}

	checksummed, err := crypto.ParseAddress(address)
	if err != nil {
		return models.Balance{}, apperr.FromHex(err)
	}

	network := c.ActiveNetwork()
	wei, err := c.chain.GetBalance(ctx, checksummed)
	if err != nil {
		return models.Balance{}, mapChainError(err)
	}

	formatted, err := FormatUnits(wei, EtherDecimals)
	if err != nil {
		return models.Balance{}, err
	}

	return models.Balance{
		Address:   checksummed,
		Network:   network.Name,
		Wei:       wei,
		Formatted: formatted,
		Symbol:    network.Symbol,
	}, nil
}

func (c *chainService) TxStatus(ctx context.Context, txHash string) (models.TxStatus, error) {
	txHash, err := ParseTxHash(txHash)
	if err != nil {
		return models.TxStatus{}, err
	}

	receipt, err := c.chain.TransactionReceipt(ctx, txHash)
	if err != nil {
		return models.TxStatus{}, mapChainError(err)
	}
	if receipt == nil {
		return models.TxStatus{Hash: txHash, State: models.TxPending}, nil
	}

	block, err := adapter.ParseBigQuantity(receipt.BlockNumber)
	if err != nil {
		return models.TxStatus{}, apperr.FromHex(err)
	}

	state := models.TxConfirmed
	if receipt.Status == "0x0" {
		state = models.TxFailed
	}

	return models.TxStatus{Hash: txHash, State: state, Block: block.Uint64()}, nil
}

func (c *chainService) find(name string) (models.Network, bool) {
	for _, n := range c.networks {
		if n.Name == name {
			return n, true
		}
	}
	return models.Network{}, false
}

// ParseTxHash validates a 0x-prefixed 32-byte hex hash and returns it
// lower-cased.
func ParseTxHash(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "0x") || len(s) != 66 {
		return "", apperr.FromHex(ErrInvalidTxHash)
	}
	if _, err := hex.DecodeString(s[2:]); err != nil {
		return "", apperr.FromHex(err)
	}
	return s, nil
}
