// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrBadQuantity is returned when a JSON-RPC quantity is not 0x-hex.
	ErrBadQuantity = errors.New("invalid hex quantity")
	// ErrNoEndpoint is returned when no RPC endpoint was configured.
	ErrNoEndpoint = errors.New("rpc endpoint not set")
	// ErrAPIKeyMissing is returned by the price adapter when the API requires
	// a key and none was configured.
	ErrAPIKeyMissing = errors.New("price api key missing")
	// ErrPriceNotFound is returned when the price API does not know the id.
	ErrPriceNotFound = errors.New("price not found")
)

// RPCError is a JSON-RPC 2.0 error object returned by the node.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// DecodeError reports a response body that could not be decoded. Body is
// kept verbatim for diagnostics.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return "decode response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
