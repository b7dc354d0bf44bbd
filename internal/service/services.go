package service

import (
	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
)

// ClientServices groups the use cases consumed by the TUI and the workers.
type ClientServices struct {
	Accounts    AccountService
	Chain       ChainService
	Prices      PriceService
	AddressBook AddressBookService
}

func NewClientServices(
	storages *store.ClientStorages,
	chain adapter.ChainAdapter,
	prices adapter.PriceAdapter,
	cfg config.ClientChain,
	logger *logger.Logger,
) *ClientServices {
	accounts := NewAccountService(storages.Accounts, crypto.NewKeyChainService(), crypto.NewWallet(), logger)
	chainSvc := NewChainService(chain, accounts, cfg.Networks, cfg.DefaultNetwork, logger)

	return &ClientServices{
		Accounts:    accounts,
		Chain:       chainSvc,
		Prices:      NewPriceService(prices, chainSvc),
		AddressBook: NewAddressBookService(storages.AddressBook, validators.NewAddressBookValidator()),
	}
}
