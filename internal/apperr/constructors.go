// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"net"
	"net/url"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/manifoldco/promptui"
	"github.com/tyler-smith/go-bip39"
	"gopkg.in/yaml.v3"
)

// Internal wraps a plain string context, typically an invariant violation.
func Internal(msg string) *Error {
	return newError(KindInternal, msg, nil, nil)
}

// FromParseNumber wraps a strconv parse failure.
func FromParseNumber(err *strconv.NumError) *Error {
	if err == nil {
		return newError(KindParseNumber, "", nil, nil)
	}
	return newError(KindParseNumber, "", err, nil)
}

// FromKeystore wraps a failure of the local secret keychain.
func FromKeystore(err error) *Error {
	return newError(KindKeystore, "", err, nil)
}

// FromPrompt wraps a failure or cancellation of an interactive prompt.
func FromPrompt(err error) *Error {
	return newError(KindPrompt, "", err, nil)
}

// FromSigning wraps an elliptic-curve signing failure.
func FromSigning(err error) *Error {
	return newError(KindSigning, "", err, nil)
}

// FromTOMLDecode wraps a TOML parse failure. raw is the document (or the
// fragment) that failed to parse and may be nil.
func FromTOMLDecode(err error, raw any) *Error {
	return newError(KindTOMLDecode, "", err, raw)
}

// FromTOMLEncode wraps a TOML encoding failure.
func FromTOMLEncode(err error) *Error {
	return newError(KindTOMLEncode, "", err, nil)
}

// FromYAML wraps a YAML (de)serialization failure with an optional payload.
func FromYAML(err error, raw any) *Error {
	return newError(KindYAML, "", err, raw)
}

// FromJSON wraps a JSON (de)serialization failure with an optional payload.
// Pass a json.RawMessage to keep the offending value inspectable.
func FromJSON(err error, raw any) *Error {
	return newError(KindJSON, "", err, raw)
}

// FromIO wraps a file system or stream failure.
func FromIO(err error) *Error {
	return newError(KindIO, "", err, nil)
}

// FromHex wraps a hex decoding failure.
func FromHex(err error) *Error {
	return newError(KindHex, "", err, nil)
}

// FromHTTP wraps a failure of a plain HTTP request (price API).
func FromHTTP(err error) *Error {
	return newError(KindHTTP, "", err, nil)
}

// FromMnemonic wraps a BIP-39 / BIP-32 derivation failure.
func FromMnemonic(err error) *Error {
	return newError(KindMnemonic, "", err, nil)
}

// FromRPC wraps a failure of the chain JSON-RPC transport.
func FromRPC(err error) *Error {
	return newError(KindRPC, "", err, nil)
}

// FromUnits wraps a failure converting between wei and display units.
func FromUnits(err error) *Error {
	return newError(KindUnits, "", err, nil)
}

// FromPendingTx wraps a failure while waiting for a transaction receipt.
func FromPendingTx(err error) *Error {
	return newError(KindPendingTx, "", err, nil)
}

// FromURL wraps a URL parse failure.
func FromURL(err error) *Error {
	return newError(KindURL, "", err, nil)
}

// ChannelSend reports that a value could not be delivered on the named
// channel.
func ChannelSend(channel string) *Error {
	return newError(KindChannelSend, channel, nil, nil)
}

// ChannelRecv reports that the named channel was closed while a value was
// expected.
func ChannelRecv(channel string) *Error {
	return newError(KindChannelRecv, channel, nil, nil)
}

func NoActiveAccount() *Error {
	return newError(KindNoActiveAccount, "", nil, nil)
}

// APIKeyMissing reports that the named API key is required but not set.
func APIKeyMissing(name string) *Error {
	return newError(KindAPIKeyMissing, name, nil, nil)
}

func NetworkNotFound(name string) *Error {
	return newError(KindNetworkNotFound, name, nil, nil)
}

func AddressBookNotFound(label string) *Error {
	return newError(KindAddressBookNotFound, label, nil, nil)
}

func SecretNotFound(address string) *Error {
	return newError(KindSecretNotFound, address, nil, nil)
}

// Abort is the explicit user-abort signal. reason should be a short static
// string such as "esc pressed".
func Abort(reason string) *Error {
	return newError(KindAbort, reason, nil, nil)
}

// From converts any error into an *Error. An *Error anywhere in the chain is
// returned unchanged; known collaborator error types are mapped to their
// kind; everything else becomes KindInternal with the cause kept. Returns nil
// for a nil err.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, promptui.ErrInterrupt) ||
		errors.Is(err, promptui.ErrEOF) ||
		errors.Is(err, promptui.ErrAbort) {
		return FromPrompt(err)
	}

	if errors.Is(err, bip39.ErrInvalidMnemonic) || errors.Is(err, bip39.ErrChecksumIncorrect) {
		return FromMnemonic(err)
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return FromParseNumber(numErr)
	}

	var hexErr hex.InvalidByteError
	if errors.As(err, &hexErr) || errors.Is(err, hex.ErrLength) {
		return FromHex(err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return FromJSON(err, nil)
	}

	var tomlErr toml.ParseError
	if errors.As(err, &tomlErr) {
		return FromTOMLDecode(err, nil)
	}

	var yamlErr *yaml.TypeError
	if errors.As(err, &yamlErr) {
		return FromYAML(err, nil)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Op == "parse" {
			return FromURL(err)
		}
		return FromHTTP(err)
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return FromHTTP(err)
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return FromIO(err)
	}

	return newError(KindInternal, "", err, nil)
}

// IsAbort reports whether err asks to leave the current operation: an
// explicit [Abort], or a prompt the user interrupted.
func IsAbort(err error) bool {
	e := From(err)
	if e == nil {
		return false
	}
	switch e.kind {
	case KindAbort:
		return true
	case KindPrompt:
		return errors.Is(e.cause, promptui.ErrInterrupt) ||
			errors.Is(e.cause, promptui.ErrEOF) ||
			errors.Is(e.cause, promptui.ErrAbort)
	default:
		return false
	}
}
