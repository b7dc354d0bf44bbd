package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/MKhiriev/go-chain-keeper/internal/mock"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPriceSvc(t *testing.T, network models.Network) (PriceService, *mock.MockPriceAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)

	prices := mock.NewMockPriceAdapter(ctrl)
	chain := mock.NewMockChainService(ctrl)
	chain.EXPECT().ActiveNetwork().Return(network).AnyTimes()

	return NewPriceService(prices, chain), prices
}

func TestPriceService_NativePrice(t *testing.T) {
	svc, prices := newTestPriceSvc(t, testNetworks[0])

	prices.EXPECT().USDPrice(gomock.Any(), "ethereum").Return(3251.0712, nil)

	update, err := svc.NativePrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "$3251.07", update.USD)
	assert.Equal(t, "ETH", update.Symbol)
	assert.False(t, update.At.IsZero())
}

func TestPriceService_NoPriceID(t *testing.T) {
	svc, _ := newTestPriceSvc(t, testNetworks[1])

	update, err := svc.NativePrice(context.Background())
	require.NoError(t, err)
	assert.Empty(t, update.USD)
}

func TestPriceService_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind apperr.Kind
	}{
		{"missing key", adapter.ErrAPIKeyMissing, apperr.KindAPIKeyMissing},
		{"rate limited", adapter.ErrTooManyRequests, apperr.KindHTTP},
		{"decode", &adapter.DecodeError{Body: []byte("<html>"), Err: errors.New("invalid character")}, apperr.KindJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, prices := newTestPriceSvc(t, testNetworks[0])
			prices.EXPECT().USDPrice(gomock.Any(), gomock.Any()).Return(0.0, tt.err)

			_, err := svc.NativePrice(context.Background())
			requireKind(t, err, tt.kind)
		})
	}
}
