package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-chain-keeper/models"
)

// ClientApp holds price API settings.
type ClientApp struct {
	PriceAPIKey     string
	PriceURL        string
	RequirePriceKey bool
	RequestTimeout  time.Duration
}

// ClientChain holds the selectable networks.
type ClientChain struct {
	Networks       []models.Network
	DefaultNetwork string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientLog configures the client file logger.
type ClientLog struct {
	Dir string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	PriceInterval  time.Duration
	TxPollInterval time.Duration
}

// ClientConfig is the runtime view of [StructuredConfig] consumed by the
// client packages.
type ClientConfig struct {
	App     ClientApp
	Chain   ClientChain
	Storage ClientStorage
	Log     ClientLog
	Workers ClientWorkers
}

// Client maps the fields relevant to the client runtime.
func (cfg *StructuredConfig) Client() *ClientConfig {
	networks := make([]models.Network, len(cfg.Chain.Networks))
	copy(networks, cfg.Chain.Networks)

	return &ClientConfig{
		App: ClientApp{
			PriceAPIKey:     cfg.App.PriceAPIKey,
			PriceURL:        cfg.App.PriceURL,
			RequirePriceKey: cfg.App.RequirePriceKey,
			RequestTimeout:  cfg.App.RequestTimeout.Std(),
		},
		Chain: ClientChain{
			Networks:       networks,
			DefaultNetwork: cfg.Chain.DefaultNetwork,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
		Log:     ClientLog{Dir: cfg.Log.Dir},
		Workers: ClientWorkers{
			PriceInterval:  cfg.Workers.PriceInterval.Std(),
			TxPollInterval: cfg.Workers.TxPollInterval.Std(),
		},
	}
}

// GetClientConfig loads the merged configuration via [GetStructuredConfig]
// and returns its client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.Client(), nil
}

// Network returns the configured network called name.
func (c ClientChain) Network(name string) (models.Network, bool) {
	for _, n := range c.Networks {
		if n.Name == name {
			return n, true
		}
	}
	return models.Network{}, false
}
