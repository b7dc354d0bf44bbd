// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperr defines the single closed error type that every subsystem of
// go-chain-keeper reports through.
//
// An [Error] is created at the point of failure by one of the per-source
// constructors ([FromRPC], [FromJSON], [SecretNotFound], ...) or by the
// dispatching [From], and is never mutated afterwards. The [Kind] of an error
// is the only thing callers branch on; the wrapped cause and the optional raw
// payload exist for diagnostics.
//
// Transport failures ([KindHTTP], [KindRPC]) are additionally classified by
// [Error.IsConnectError] so that the UI can ask the user to check the
// network instead of dumping a stack of dial errors.
package apperr
