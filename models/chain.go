// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math/big"
	"time"
)

// Balance is the native-currency balance of an address on a network.
type Balance struct {
	Address string
	Network string
	Wei     *big.Int
	// Formatted is Wei rendered in whole units with trailing zeros removed.
	Formatted string
	Symbol    string
}

// Receipt is the subset of a transaction receipt the tool cares about.
type Receipt struct {
	TxHash      string `json:"transactionHash"`
	BlockNumber string `json:"blockNumber"`
	Status      string `json:"status"`
}

// TxState is the lifecycle state of a tracked transaction.
type TxState string

const (
	TxPending   TxState = "pending"
	TxConfirmed TxState = "confirmed"
	TxFailed    TxState = "failed"
)

// TxStatus is delivered by the transaction watcher.
type TxStatus struct {
	Hash  string
	State TxState
	Block uint64
	Err   error
}

// PriceUpdate is delivered by the price worker.
type PriceUpdate struct {
	Symbol string
	// USD is the formatted price, e.g. "$3251.07".
	USD string
	Err error
	At  time.Time
}
