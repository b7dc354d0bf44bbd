// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport of go-chain-keeper: an
// Ethereum JSON-RPC client ([ChainAdapter]) and a price API client
// ([PriceAdapter]), both built on resty.
//
// Adapters return plain Go errors: transport failures as returned by the
// HTTP client, the sentinels from errors.go, [*RPCError] for JSON-RPC level
// errors and [*DecodeError] (carrying the raw body) for undecodable
// responses. The service layer maps them into the application error
// taxonomy.
package adapter

import (
	"context"
	"math/big"

	"github.com/MKhiriev/go-chain-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ChainAdapter talks to one EVM JSON-RPC endpoint at a time.
type ChainAdapter interface {
	// SetEndpoint switches all subsequent calls to rpcURL.
	SetEndpoint(rpcURL string)

	// Endpoint returns the URL currently in use.
	Endpoint() string

	// ChainID calls eth_chainId.
	ChainID(ctx context.Context) (uint64, error)

	// BlockNumber calls eth_blockNumber.
	BlockNumber(ctx context.Context) (uint64, error)

	// GetBalance calls eth_getBalance for address at the latest block and
	// returns the balance in wei.
	GetBalance(ctx context.Context, address string) (*big.Int, error)

	// TransactionReceipt calls eth_getTransactionReceipt. A nil receipt with
	// a nil error means the transaction is still pending.
	TransactionReceipt(ctx context.Context, txHash string) (*models.Receipt, error)
}

// PriceAdapter fetches spot prices of native currencies.
type PriceAdapter interface {
	// USDPrice returns the USD price of the asset with the given price API
	// identifier (e.g. "ethereum").
	USDPrice(ctx context.Context, priceID string) (float64, error)
}
