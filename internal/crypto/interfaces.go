// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the client-side cryptography of go-chain-keeper:
// BIP-39/BIP-32 key derivation, secp256k1 message signing and the keychain
// that seals private keys at rest under the master password.
//
// Nothing here knows about the store, the network or the terminal UI.
// Functions return the underlying library errors; the service layer converts
// them into the application error taxonomy.
package crypto

import "github.com/btcsuite/btcd/btcec/v2"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyChainService seals secrets with a key derived from the master password.
//
// Scheme:
//
//	salt          = random 16 bytes
//	KEK           = Argon2id(masterPassword, salt)
//	blob          = salt || nonce || AES-256-GCM(KEK, nonce, secret)
//	stored value  = base64(blob)
type KeyChainService interface {
	// Seal encrypts secret under masterPassword and returns the base64 blob.
	Seal(secret []byte, masterPassword string) (string, error)

	// Open reverses Seal. A wrong password fails with ErrWrongPassword.
	Open(blob string, masterPassword string) ([]byte, error)
}

// Wallet derives keys from mnemonics and signs with them.
type Wallet interface {
	// NewMnemonic returns a fresh 12-word English mnemonic.
	NewMnemonic() (string, error)

	// DeriveKey derives the private key at m/44'/60'/0'/0/index.
	DeriveKey(mnemonic, passphrase string, index uint32) (*btcec.PrivateKey, error)

	// SignMessage returns the 65-byte EIP-191 personal_sign signature
	// (r || s || v, v in {27, 28}).
	SignMessage(key *btcec.PrivateKey, message []byte) ([]byte, error)
}
