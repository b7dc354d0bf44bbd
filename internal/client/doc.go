// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the process lifecycle of go-chain-keeper.
//
// It opens the local store, builds the chain and price adapters and the
// services on top of them, unlocks the keystore, starts the background
// workers and hands the terminal over to the UI until the user quits.
package client
