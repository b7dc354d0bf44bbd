package service

import "errors"

var (
	// ErrLocked is returned when an operation needs the master password
	// before Unlock was called.
	ErrLocked = errors.New("keychain is locked")
	// ErrAccountExists is returned when importing an already stored key.
	ErrAccountExists = errors.New("account already imported")
	// ErrInvalidTxHash is returned for hashes that are not 32 bytes of hex.
	ErrInvalidTxHash = errors.New("transaction hash must be 0x followed by 64 hex characters")
	// ErrEmptyMessage is returned when asked to sign nothing.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrNegativeAmount is returned when formatting a negative wei value.
	ErrNegativeAmount = errors.New("amount is negative")
	// ErrNilAmount is returned when the node returned no balance.
	ErrNilAmount = errors.New("amount is nil")
)
