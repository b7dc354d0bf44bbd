package crypto

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
)

// Well-known development mnemonic; account 0 is a public test vector.
const devMnemonic = "test test test test test test test test test test test junk"

func TestKeccak256_Empty(t *testing.T) {
	got := hex.EncodeToString(Keccak256())
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", got)
}

func TestChecksumAddress(t *testing.T) {
	vectors := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}

	for _, want := range vectors {
		raw, err := hex.DecodeString(strings.ToLower(want[2:]))
		require.NoError(t, err)
		assert.Equal(t, want, ChecksumAddress(raw))
	}
}

func TestParseAddress(t *testing.T) {
	got, err := ParseAddress("  0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed ")
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", got)

	_, err = ParseAddress("0x1234")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = ParseAddress("0x" + strings.Repeat("zz", 20))
	assert.ErrorIs(t, err, ErrInvalidAddress)
	var hexErr hex.InvalidByteError
	assert.ErrorAs(t, err, &hexErr)
}

func TestDeriveKey_KnownVector(t *testing.T) {
	w := NewWallet()

	key, err := w.DeriveKey(devMnemonic, "", 0)
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", PubKeyToAddress(key.PubKey()))

	key1, err := w.DeriveKey(devMnemonic, "", 1)
	require.NoError(t, err)
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", PubKeyToAddress(key1.PubKey()))
}

func TestDeriveKey_NormalizesWhitespace(t *testing.T) {
	w := NewWallet()

	key, err := w.DeriveKey("  "+strings.ReplaceAll(devMnemonic, " ", "   ")+"\n", "", 0)
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", PubKeyToAddress(key.PubKey()))
}

func TestDeriveKey_InvalidMnemonic(t *testing.T) {
	w := NewWallet()

	_, err := w.DeriveKey("test test test", "", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, bip39.ErrInvalidMnemonic)
}

func TestNewMnemonic_IsValidAndDerivable(t *testing.T) {
	w := NewWallet()

	m1, err := w.NewMnemonic()
	require.NoError(t, err)
	m2, err := w.NewMnemonic()
	require.NoError(t, err)

	assert.Len(t, strings.Fields(m1), 12)
	assert.True(t, bip39.IsMnemonicValid(m1))
	assert.NotEqual(t, m1, m2)

	_, err = w.DeriveKey(m1, "", 0)
	assert.NoError(t, err)
}

func TestSignMessage_RecoversSigner(t *testing.T) {
	w := NewWallet()
	key, err := w.DeriveKey(devMnemonic, "", 0)
	require.NoError(t, err)

	msg := []byte("hello from go-chain-keeper")
	sig, err := w.SignMessage(key, msg)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	assert.Contains(t, []byte{27, 28}, sig[64])

	addr, err := RecoverAddress(msg, sig)
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", addr)

	other, err := RecoverAddress([]byte("tampered"), sig)
	require.NoError(t, err)
	assert.NotEqual(t, addr, other)
}

func TestSignMessage_Deterministic(t *testing.T) {
	w := NewWallet()
	key, err := w.DeriveKey(devMnemonic, "", 0)
	require.NoError(t, err)

	first, err := w.SignMessage(key, []byte("same message"))
	require.NoError(t, err)
	second, err := w.SignMessage(key, []byte("same message"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSignMessage_NilKey(t *testing.T) {
	_, err := NewWallet().SignMessage(nil, []byte("x"))
	assert.Error(t, err)
}

func TestRecoverAddress_BadLength(t *testing.T) {
	_, err := RecoverAddress([]byte("x"), make([]byte, 64))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}
