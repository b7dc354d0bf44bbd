// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user supplied records before they reach the
// store.
//
// A Validator validates a whole value, or only the named fields of it when
// field names are passed. Errors are plain sentinels; callers map them onto
// the application error taxonomy.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
