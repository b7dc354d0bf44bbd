// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Network describes an EVM-compatible chain the tool can talk to.
type Network struct {
	Name    string `json:"name" toml:"name" yaml:"name"`
	RPCURL  string `json:"rpc_url" toml:"rpc_url" yaml:"rpc_url"`
	ChainID uint64 `json:"chain_id" toml:"chain_id" yaml:"chain_id"`
	// Symbol is the native currency ticker, e.g. "ETH".
	Symbol string `json:"symbol" toml:"symbol" yaml:"symbol"`
	// PriceID is the price API identifier of the native currency,
	// e.g. "ethereum". Empty disables the price ticker for this network.
	PriceID string `json:"price_id" toml:"price_id" yaml:"price_id"`
}

// DefaultNetworks is used when the configuration lists none.
var DefaultNetworks = []Network{
	{Name: "mainnet", RPCURL: "https://ethereum-rpc.publicnode.com", ChainID: 1, Symbol: "ETH", PriceID: "ethereum"},
	{Name: "sepolia", RPCURL: "https://ethereum-sepolia-rpc.publicnode.com", ChainID: 11155111, Symbol: "SepoliaETH"},
}
