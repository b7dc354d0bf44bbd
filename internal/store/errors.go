package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountExists is returned when an account with the same address is
	// already stored.
	ErrAccountExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when no account (and so no sealed key)
	// is stored for the requested address.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAddressBookEntryNotFound is returned when no address book entry has
	// the requested label.
	ErrAddressBookEntryNotFound = errors.New("address book entry not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
