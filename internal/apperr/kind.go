// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

// Kind identifies the failure source of an [Error].
type Kind int

const (
	KindInternal Kind = iota
	KindParseNumber
	KindKeystore
	KindPrompt
	KindSigning
	KindTOMLDecode
	KindTOMLEncode
	KindYAML
	KindJSON
	KindIO
	KindHex
	KindHTTP
	KindMnemonic
	KindRPC
	KindUnits
	KindPendingTx
	KindURL
	KindChannelSend
	KindChannelRecv
	KindNoActiveAccount
	KindAPIKeyMissing
	KindNetworkNotFound
	KindAddressBookNotFound
	KindSecretNotFound
	KindAbort
)

var kindNames = [...]string{
	KindInternal:            "Internal",
	KindParseNumber:         "ParseNumber",
	KindKeystore:            "Keystore",
	KindPrompt:              "Prompt",
	KindSigning:             "Signing",
	KindTOMLDecode:          "TOMLDecode",
	KindTOMLEncode:          "TOMLEncode",
	KindYAML:                "YAML",
	KindJSON:                "JSON",
	KindIO:                  "IO",
	KindHex:                 "Hex",
	KindHTTP:                "HTTP",
	KindMnemonic:            "Mnemonic",
	KindRPC:                 "RPC",
	KindUnits:               "Units",
	KindPendingTx:           "PendingTx",
	KindURL:                 "URL",
	KindChannelSend:         "ChannelSend",
	KindChannelRecv:         "ChannelRecv",
	KindNoActiveAccount:     "NoActiveAccount",
	KindAPIKeyMissing:       "APIKeyMissing",
	KindNetworkNotFound:     "NetworkNotFound",
	KindAddressBookNotFound: "AddressBookNotFound",
	KindSecretNotFound:      "SecretNotFound",
	KindAbort:               "Abort",
}

// kindMessages holds the human-readable prefix used by [Error.Error].
var kindMessages = [...]string{
	KindInternal:            "internal error",
	KindParseNumber:         "invalid number",
	KindKeystore:            "keystore failure",
	KindPrompt:              "prompt failed",
	KindSigning:             "signing failed",
	KindTOMLDecode:          "invalid TOML",
	KindTOMLEncode:          "cannot encode TOML",
	KindYAML:                "invalid YAML",
	KindJSON:                "invalid JSON",
	KindIO:                  "i/o failure",
	KindHex:                 "invalid hex",
	KindHTTP:                "http request failed",
	KindMnemonic:            "mnemonic derivation failed",
	KindRPC:                 "rpc request failed",
	KindUnits:               "unit conversion failed",
	KindPendingTx:           "pending transaction failed",
	KindURL:                 "invalid url",
	KindChannelSend:         "channel send failed",
	KindChannelRecv:         "channel receive failed",
	KindNoActiveAccount:     "no active account selected",
	KindAPIKeyMissing:       "api key missing",
	KindNetworkNotFound:     "network not found",
	KindAddressBookNotFound: "address book entry not found",
	KindSecretNotFound:      "secret not found for address",
	KindAbort:               "aborted",
}

// String returns the variant name, e.g. "RPC".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

func (k Kind) message() string {
	if k < 0 || int(k) >= len(kindMessages) {
		return "unknown error"
	}
	return kindMessages[k]
}

// IsTransport reports whether k is one of the network transport kinds.
func (k Kind) IsTransport() bool {
	return k == KindHTTP || k == KindRPC
}

// IsSerialization reports whether k is a config (de)serialization kind.
func (k Kind) IsSerialization() bool {
	switch k {
	case KindTOMLDecode, KindTOMLEncode, KindYAML, KindJSON:
		return true
	default:
		return false
	}
}
