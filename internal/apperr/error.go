// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Error is the unified error value of the application. The zero value is not
// meaningful; build errors through the constructors in this package.
type Error struct {
	kind   Kind
	detail string
	cause  error
	raw    any
}

func newError(kind Kind, detail string, cause error, raw any) *Error {
	return &Error{kind: kind, detail: detail, cause: cause, raw: raw}
}

// Kind returns the failure source of e.
func (e *Error) Kind() Kind {
	return e.kind
}

// Detail returns the caller-supplied context string (network name, address,
// abort reason, ...). Empty for kinds that only wrap a cause.
func (e *Error) Detail() string {
	return e.detail
}

// Raw returns the payload that failed to (de)serialize, exactly as it was
// attached on construction. ok is false when nothing was attached.
func (e *Error) Raw() (raw any, ok bool) {
	return e.raw, e.raw != nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.kind.message()
	if e.detail != "" {
		msg += ": " + e.detail
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap exposes the wrapped collaborator error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches another *Error of the same kind. A target with an empty detail
// matches any detail, so the package-level sentinels work with [errors.Is].
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	if t.kind != e.kind {
		return false
	}
	return t.detail == "" || t.detail == e.detail
}

// GoString returns the structural representation of e, used by FormatFor.
// Example: RPC(cause=*url.Error "Post \"http://x\": dial tcp: ...").
func (e *Error) GoString() string {
	parts := make([]string, 0, 3)
	if e.detail != "" {
		parts = append(parts, strconv.Quote(e.detail))
	}
	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%T %q", e.cause, e.cause.Error()))
	}
	if e.raw != nil {
		parts = append(parts, "raw="+formatRaw(e.raw))
	}
	return e.kind.String() + "(" + strings.Join(parts, ", ") + ")"
}

// maxRawDump bounds the raw payload shown by GoString. Raw itself keeps
// the full value.
const maxRawDump = 512

func formatRaw(raw any) string {
	switch v := raw.(type) {
	case string:
		return strconv.Quote(truncateRaw(v))
	case []byte:
		return strconv.Quote(truncateRaw(string(v)))
	case json.RawMessage:
		return truncateRaw(string(v))
	default:
		return truncateRaw(fmt.Sprintf("%#v", v))
	}
}

func truncateRaw(s string) string {
	if len(s) <= maxRawDump {
		return s
	}
	cut := maxRawDump
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return fmt.Sprintf("%s...(%d bytes)", s[:cut], len(s))
}

// Sentinels for errors.Is checks against the domain kinds.
var (
	ErrNoActiveAccount     = newError(KindNoActiveAccount, "", nil, nil)
	ErrAPIKeyMissing       = newError(KindAPIKeyMissing, "", nil, nil)
	ErrNetworkNotFound     = newError(KindNetworkNotFound, "", nil, nil)
	ErrAddressBookNotFound = newError(KindAddressBookNotFound, "", nil, nil)
	ErrSecretNotFound      = newError(KindSecretNotFound, "", nil, nil)
	ErrAbort               = newError(KindAbort, "", nil, nil)
)
