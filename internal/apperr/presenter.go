// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import (
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

// ConnectHint is put in front of the details of connect errors.
const ConnectHint = "check your internet connection"

// FormatFor renders e for the operation identified by id as
// "{id}: {details}". Details are the structural dump of e, preceded by
// [ConnectHint] when e is a connect error.
func (e *Error) FormatFor(id string) string {
	if e.IsConnectError() {
		return id + ": " + ConnectHint + "\n" + e.GoString()
	}
	return id + ": " + e.GoString()
}

// Presenter turns errors into display text and records each of them in the
// log, so an error shown to the user is never lost from the log either.
type Presenter struct {
	logger *logger.Logger
}

func NewPresenter(log *logger.Logger) *Presenter {
	return &Presenter{logger: log}
}

// Present converts err with [From], logs it and returns the FormatFor text.
// Returns "" for a nil err.
func (p *Presenter) Present(id string, err error) string {
	appErr := From(err)
	if appErr == nil {
		return ""
	}

	p.logger.Error().
		Str("op", id).
		Str("kind", appErr.Kind().String()).
		Bool("connect", appErr.IsConnectError()).
		Err(appErr).
		Msg("operation failed")

	return appErr.FormatFor(id)
}
