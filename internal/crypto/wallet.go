// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/sha3"
)

// coinTypeETH is the SLIP-44 coin type of Ether.
const coinTypeETH = 60

var (
	ErrInvalidSignature = errors.New("signature must be 65 bytes")
	ErrInvalidAddress   = errors.New("address must be 20 bytes of hex")
)

type wallet struct {
	entropyBits int
}

// NewWallet returns a [Wallet] producing 12-word mnemonics.
func NewWallet() Wallet {
	return &wallet{entropyBits: 128}
}

func (w *wallet) NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(w.entropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	return bip39.NewMnemonic(entropy)
}

func (w *wallet) DeriveKey(mnemonic, passphrase string, index uint32) (*btcec.PrivateKey, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}

	// The network params only affect the serialized xprv version bytes,
	// which are never used here.
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("master key: %w", err)
	}

	path := []uint32{
		hdkeychain.HardenedKeyStart + 44,
		hdkeychain.HardenedKeyStart + coinTypeETH,
		hdkeychain.HardenedKeyStart + 0,
		0,
		index,
	}
	for _, i := range path {
		key, err = key.Derive(i)
		if err != nil {
			return nil, fmt.Errorf("derive child %d: %w", i, err)
		}
	}

	return key.ECPrivKey()
}

func (w *wallet) SignMessage(key *btcec.PrivateKey, message []byte) ([]byte, error) {
	if key == nil {
		return nil, errors.New("nil private key")
	}

	compact := ecdsa.SignCompact(key, PersonalMessageHash(message), false)

	// compact is v || r || s with v = 27 + recovery id.
	sig := make([]byte, 0, 65)
	sig = append(sig, compact[1:]...)
	sig = append(sig, compact[0])
	return sig, nil
}

// RecoverAddress returns the checksummed address that produced sig over
// message with [Wallet.SignMessage].
func RecoverAddress(message, sig []byte) (string, error) {
	if len(sig) != 65 {
		return "", ErrInvalidSignature
	}

	compact := make([]byte, 0, 65)
	compact = append(compact, sig[64])
	compact = append(compact, sig[:64]...)

	pub, _, err := ecdsa.RecoverCompact(compact, PersonalMessageHash(message))
	if err != nil {
		return "", err
	}
	return PubKeyToAddress(pub), nil
}

// Keccak256 is the legacy Keccak hash used by Ethereum.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// PersonalMessageHash is the EIP-191 version 0x45 digest of message.
func PersonalMessageHash(message []byte) []byte {
	prefix := "\x19Ethereum Signed Message:\n" + strconv.Itoa(len(message))
	return Keccak256([]byte(prefix), message)
}

// PubKeyToAddress derives the EIP-55 address of pub.
func PubKeyToAddress(pub *btcec.PublicKey) string {
	uncompressed := pub.SerializeUncompressed()
	return ChecksumAddress(Keccak256(uncompressed[1:])[12:])
}

// ChecksumAddress renders 20 address bytes in EIP-55 mixed case.
func ChecksumAddress(addr []byte) string {
	lower := hex.EncodeToString(addr)
	hash := hex.EncodeToString(Keccak256([]byte(lower)))

	out := []byte(lower)
	for i, c := range out {
		if c >= 'a' && c <= 'f' && hash[i] >= '8' {
			out[i] = c - 'a' + 'A'
		}
	}
	return "0x" + string(out)
}

// ParseAddress validates a 0x-prefixed (or bare) 40-char hex address and
// returns it in checksummed form. The returned error wraps the hex decoding
// error when the input is not hex.
func ParseAddress(s string) (string, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if len(s) != 40 {
		return "", ErrInvalidAddress
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return ChecksumAddress(raw), nil
}
