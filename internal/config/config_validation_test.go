package config

import (
	"testing"

	"github.com/MKhiriev/go-chain-keeper/internal/apperr"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"defaults are valid", func(*StructuredConfig) {}, nil},
		{"empty dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"memory dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = ":memory:" }, ErrInvalidStorageConfigs},
		{"zero timeout", func(c *StructuredConfig) { c.App.RequestTimeout = 0 }, ErrInvalidAppConfigs},
		{"bad price url", func(c *StructuredConfig) { c.App.PriceURL = "not a url" }, ErrInvalidAppConfigs},
		{"zero price interval", func(c *StructuredConfig) { c.Workers.PriceInterval = 0 }, ErrInvalidWorkerConfigs},
		{"no networks", func(c *StructuredConfig) { c.Chain.Networks = nil }, ErrInvalidNetworkConfigs},
		{"network without rpc", func(c *StructuredConfig) {
			c.Chain.Networks = []models.Network{{Name: "x"}}
			c.Chain.DefaultNetwork = "x"
		}, ErrInvalidNetworkConfigs},
		{"duplicate network", func(c *StructuredConfig) {
			c.Chain.Networks = append(c.Chain.Networks, c.Chain.Networks[0])
		}, ErrInvalidNetworkConfigs},
		{"unknown default network", func(c *StructuredConfig) { c.Chain.DefaultNetwork = "goerli" }, apperr.ErrNetworkNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientView(t *testing.T) {
	cfg := defaultConfig()
	client := cfg.Client()

	assert.Equal(t, cfg.Storage.DB.DSN, client.Storage.DB.DSN)
	assert.Equal(t, cfg.App.RequestTimeout.Std(), client.App.RequestTimeout)
	assert.Equal(t, cfg.Workers.PriceInterval.Std(), client.Workers.PriceInterval)

	n, ok := client.Chain.Network("sepolia")
	require.True(t, ok)
	assert.Equal(t, uint64(11155111), n.ChainID)

	_, ok = client.Chain.Network("goerli")
	assert.False(t, ok)

	client.Chain.Networks[0].Name = "mutated"
	assert.NotEqual(t, "mutated", cfg.Chain.Networks[0].Name)
}
