package service

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/stretchr/testify/require"
)

// requireKind asserts err is an *apperr.Error of the given kind.
func requireKind(t *testing.T, err error, kind apperr.Kind) *apperr.Error {
	t.Helper()

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr), "expected *apperr.Error, got %T: %v", err, err)
	require.Equal(t, kind, appErr.Kind(), "unexpected kind for %#v", appErr)
	return appErr
}
